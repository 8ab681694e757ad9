package commands

import (
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"github.com/malacalypse/syxpack"
	"gopkg.in/yaml.v3"
)

var dumpFormats = []string{"text", "json", "yaml", "cbor"}

func validDumpFormat(format string) bool {
	for _, f := range dumpFormats {
		if f == format {
			return true
		}
	}
	return false
}

// dumpRecord is the structured form of one message.
type dumpRecord struct {
	Index        int    `json:"index" yaml:"index" cbor:"index"`
	Manufacturer string `json:"manufacturer" yaml:"manufacturer" cbor:"manufacturer"`
	Name         string `json:"name" yaml:"name" cbor:"name"`
	Kind         string `json:"kind" yaml:"kind" cbor:"kind"`
	Length       int    `json:"length" yaml:"length" cbor:"length"`
	Payload      string `json:"payload" yaml:"payload" cbor:"payload"`
	MD5          string `json:"md5" yaml:"md5" cbor:"md5"`
}

func newDumpRecord(index int, m syxpack.Message) dumpRecord {
	digest := m.Digest()
	return dumpRecord{
		Index:        index,
		Manufacturer: m.Manufacturer().String(),
		Name:         syxpack.ManufacturerName(m.Manufacturer()),
		Kind:         m.Manufacturer().Kind().String(),
		Length:       m.Len(),
		Payload:      hex.EncodeToString(m.Payload()),
		MD5:          hex.EncodeToString(digest[:]),
	}
}

// RunDump lists every well-formed message in a file. Malformed messages are
// skipped with a warning.
func RunDump(env *Env, args []string) int {
	fs := flag.NewFlagSet("dump", flag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	format := fs.String("format", env.Config.DumpFormat, "output format: "+strings.Join(dumpFormats, ", "))
	if err := fs.Parse(args); err != nil {
		return ExitCommandError
	}
	if fs.NArg() != 1 {
		env.errorf("usage: syxtool dump [-format f] <file>")
		return ExitCommandError
	}
	*format = strings.ToLower(*format)
	if !validDumpFormat(*format) {
		env.errorf("unsupported format %q", *format)
		return ExitCommandError
	}

	path := fs.Arg(0)
	var c syxpack.Collection
	numValid, numInvalid, err := c.LoadFile(path)
	if err != nil {
		env.errorf("%s: %v", path, err)
		return ExitInvalidData
	}
	if numInvalid > 0 {
		env.Log.Warn().Str("file", path).Int("invalid", numInvalid).Msg("skipped malformed messages")
	}
	env.Log.Info().Str("file", path).Int("valid", numValid).Msg("loaded messages")

	if err := writeDump(env.Stdout, &c, *format); err != nil {
		env.errorf("%v", err)
		return ExitCommandError
	}
	return ExitSuccess
}

func writeDump(w io.Writer, c *syxpack.Collection, format string) error {
	if format == "text" {
		if c.Len() == 0 {
			return nil
		}
		_, err := fmt.Fprintln(w, c.Summary())
		return err
	}

	records := make([]dumpRecord, 0, c.Len())
	for i, m := range c.Messages() {
		records = append(records, newDumpRecord(i+1, m))
	}
	return encodeRecords(w, records, format)
}

// encodeRecords writes v as json, yaml or cbor.
func encodeRecords(w io.Writer, v any, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case "cbor":
		data, err := cbor.Marshal(v)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}
	return fmt.Errorf("unsupported format %q", format)
}
