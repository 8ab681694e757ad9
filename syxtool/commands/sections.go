package commands

import (
	"flag"
	"fmt"
)

// RunSections lists the byte sections of a single-message file.
func RunSections(env *Env, args []string) int {
	fs := flag.NewFlagSet("sections", flag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	if err := fs.Parse(args); err != nil {
		return ExitCommandError
	}
	if fs.NArg() != 1 {
		env.errorf("usage: syxtool sections <file>")
		return ExitCommandError
	}

	m, code := env.readSingleMessage(fs.Arg(0))
	if code != ExitSuccess {
		return code
	}

	for _, s := range m.Sections() {
		fmt.Fprintf(env.Stdout, "%06X: %s (%s, %d bytes)\n", s.Offset, s.Name, s.Kind, s.Length)
	}
	return ExitSuccess
}
