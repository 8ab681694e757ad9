package commands

import (
	"flag"
	"os"
)

// RunExtract writes the payload of a single-message file, without framing
// or manufacturer identifier, to an output file.
func RunExtract(env *Env, args []string) int {
	fs := flag.NewFlagSet("extract", flag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	if err := fs.Parse(args); err != nil {
		return ExitCommandError
	}
	if fs.NArg() != 2 {
		env.errorf("usage: syxtool extract <infile> <outfile>")
		return ExitCommandError
	}

	m, code := env.readSingleMessage(fs.Arg(0))
	if code != ExitSuccess {
		return code
	}

	payload := m.Payload()
	if err := os.WriteFile(fs.Arg(1), payload, 0o644); err != nil {
		env.errorf("%v", err)
		return ExitCommandError
	}
	env.Log.Info().Str("file", fs.Arg(1)).Int("bytes", len(payload)).Msg("payload written")
	return ExitSuccess
}
