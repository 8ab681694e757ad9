package commands

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/malacalypse/syxpack"
)

// RunReceive reads the text output of the ReceiveMIDI tool from stdin and
// saves every System Exclusive line as a .syx file named by timestamp.
func RunReceive(env *Env, args []string) int {
	fs := flag.NewFlagSet("receive", flag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	outDir := fs.String("o", env.Config.OutputDir, "output directory")
	if err := fs.Parse(args); err != nil {
		return ExitCommandError
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		env.errorf("%v", err)
		return ExitCommandError
	}

	scanner := bufio.NewScanner(env.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), syxpack.MaxMessageSize)

	seq := 0
	for scanner.Scan() {
		raw, ok := parseReceiveLine(scanner.Text())
		if !ok {
			continue
		}
		if _, err := syxpack.ParseMessage(raw); err != nil {
			env.Log.Warn().Err(err).Msg("skipping malformed message")
			continue
		}

		seq++
		name := fmt.Sprintf("%d-%03d.syx", env.Now().Unix(), seq)
		target := filepath.Join(*outDir, name)
		if err := os.WriteFile(target, raw, 0o644); err != nil {
			env.errorf("%v", err)
			return ExitCommandError
		}
		fmt.Fprintf(env.Stdout, "Received %d bytes of System Exclusive data: %s\n", len(raw), target)
	}
	if err := scanner.Err(); err != nil {
		env.errorf("%v", err)
		return ExitCommandError
	}
	return ExitSuccess
}

// parseReceiveLine turns a line such as "system-exclusive hex 43 10 4C dec"
// into a framed message. Tokens that are not bytes in the announced base are
// ignored.
func parseReceiveLine(line string) ([]byte, bool) {
	parts := strings.Fields(line)
	if len(parts) < 3 || parts[0] != "system-exclusive" {
		return nil, false
	}

	base := 10
	if parts[1] == "hex" {
		base = 16
	}

	data := []byte{syxpack.SysexStart}
	for _, part := range parts[2:] {
		b, err := strconv.ParseUint(part, base, 8)
		if err != nil {
			continue
		}
		data = append(data, byte(b))
	}
	return append(data, syxpack.SysexEnd), true
}
