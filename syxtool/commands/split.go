package commands

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/malacalypse/syxpack"
)

// RunSplit writes every message of a multi-message file to its own file,
// named <stem>-NNN<ext> after the input.
func RunSplit(env *Env, args []string) int {
	fs := flag.NewFlagSet("split", flag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	outDir := fs.String("o", env.Config.OutputDir, "output directory")
	if err := fs.Parse(args); err != nil {
		return ExitCommandError
	}
	if fs.NArg() != 1 {
		env.errorf("usage: syxtool split [-o dir] <file>")
		return ExitCommandError
	}
	path := fs.Arg(0)

	buf, err := os.ReadFile(path)
	if err != nil {
		env.errorf("%v", err)
		return ExitCommandError
	}

	count := syxpack.Count(buf)
	env.Log.Info().Str("file", path).Int("messages", count).Msg("found messages")
	if count < 2 {
		fmt.Fprintf(env.Stdout, "%s holds %d message(s), nothing to split\n", path, count)
		return ExitSuccess
	}

	segments, err := syxpack.Split(buf)
	if err != nil {
		env.errorf("%s: %v", path, err)
		return ExitInvalidData
	}
	for i, segment := range segments {
		if _, err := syxpack.ParseMessage(segment); err != nil {
			env.errorf("%s: %v", path, &syxpack.MessageError{Index: i + 1, Err: err})
			return ExitInvalidData
		}
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		env.errorf("%v", err)
		return ExitCommandError
	}

	for i, segment := range segments {
		name := splitFileName(path, i+1, env.Config.SplitDigits)
		target := filepath.Join(*outDir, name)
		if err := os.WriteFile(target, segment, 0o644); err != nil {
			env.errorf("%v", err)
			return ExitCommandError
		}
		env.Log.Info().Str("file", target).Int("bytes", len(segment)).Msg("wrote message")
		fmt.Fprintln(env.Stdout, target)
	}
	return ExitSuccess
}

func splitFileName(path string, n, digits int) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if ext == "" {
		ext = ".syx"
	}
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return fmt.Sprintf("%s-%0*d%s", stem, digits, n, ext)
}
