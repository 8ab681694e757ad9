// syxtool inspects, splits and converts MIDI System Exclusive files.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/malacalypse/syxpack/syxtool/commands"
)

const version = "0.4.0"

func usage(w io.Writer) {
	fmt.Fprintf(w, `usage: syxtool [-config file] [-log-level level] <command> [args]

commands:
  identify <file>                 show manufacturer, payload size and digest
  sections <file>                 show the byte ranges of a single message
  extract <infile> <outfile>      write the payload of a single message
  split [-o dir] <file>           write each message to its own file
  receive [-o dir]                save ReceiveMIDI sysex lines read from stdin
  dump [-format f] <file>         list messages as text, json, yaml or cbor
  manufacturers [-group g]        list known manufacturers
  version                         print the version
`)
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	global := flag.NewFlagSet("syxtool", flag.ContinueOnError)
	global.SetOutput(os.Stderr)
	global.Usage = func() { usage(os.Stderr) }
	configPath := global.String("config", "", "TOML configuration file")
	logLevel := global.String("log-level", "", "log level (debug, info, warn, error)")
	if err := global.Parse(args); err != nil {
		return commands.ExitCommandError
	}

	cfg := commands.DefaultConfig()
	if *configPath != "" {
		loaded, err := commands.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return commands.ExitCommandError
		}
		cfg = loaded
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	log, err := commands.NewLogger(os.Stderr, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q\n", cfg.LogLevel)
		return commands.ExitCommandError
	}

	env := &commands.Env{
		Config: cfg,
		Log:    log,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Now:    time.Now,
	}

	if global.NArg() == 0 {
		usage(os.Stderr)
		return commands.ExitCommandError
	}

	command, rest := global.Arg(0), global.Args()[1:]
	switch command {
	case "identify", "id":
		return commands.RunIdentify(env, rest)
	case "sections":
		return commands.RunSections(env, rest)
	case "extract":
		return commands.RunExtract(env, rest)
	case "split":
		return commands.RunSplit(env, rest)
	case "receive":
		return commands.RunReceive(env, rest)
	case "dump":
		return commands.RunDump(env, rest)
	case "manufacturers":
		return commands.RunManufacturers(env, rest)
	case "version":
		fmt.Println("syxtool", version)
		return commands.ExitSuccess
	case "help", "-h", "--help":
		usage(os.Stdout)
		return commands.ExitSuccess
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", command)
		usage(os.Stderr)
		return commands.ExitCommandError
	}
}
