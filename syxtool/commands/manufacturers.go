package commands

import (
	"flag"
	"fmt"
	"strings"

	"github.com/malacalypse/syxpack"
)

type manufacturerRecord struct {
	ID        string `json:"id" yaml:"id" cbor:"id"`
	Name      string `json:"name" yaml:"name" cbor:"name"`
	Canonical string `json:"canonical" yaml:"canonical" cbor:"canonical"`
	Group     string `json:"group" yaml:"group" cbor:"group"`
}

// RunManufacturers prints the built-in manufacturer table, optionally
// restricted to one group.
func RunManufacturers(env *Env, args []string) int {
	fs := flag.NewFlagSet("manufacturers", flag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	group := fs.String("group", "", "only list one group: american, european, japanese or other")
	format := fs.String("format", "text", "output format: "+strings.Join(dumpFormats, ", "))
	if err := fs.Parse(args); err != nil {
		return ExitCommandError
	}
	*format = strings.ToLower(*format)
	if !validDumpFormat(*format) {
		env.errorf("unsupported format %q", *format)
		return ExitCommandError
	}

	var (
		filter    syxpack.Group
		useFilter bool
	)
	if *group != "" {
		g, err := syxpack.ParseGroup(*group)
		if err != nil {
			env.errorf("%v", err)
			return ExitCommandError
		}
		filter, useFilter = g, true
	}

	var records []manufacturerRecord
	for _, m := range syxpack.Manufacturers() {
		if useFilter && m.Group != filter {
			continue
		}
		records = append(records, manufacturerRecord{
			ID:        m.ID.String(),
			Name:      m.DisplayName,
			Canonical: m.CanonicalName,
			Group:     m.Group.String(),
		})
	}

	if *format == "text" {
		for _, r := range records {
			fmt.Fprintf(env.Stdout, "%-9s %-40s %s\n", r.ID, r.Name, r.Group)
		}
		return ExitSuccess
	}
	if err := encodeRecords(env.Stdout, records, *format); err != nil {
		env.errorf("%v", err)
		return ExitCommandError
	}
	return ExitSuccess
}
