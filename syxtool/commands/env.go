package commands

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/malacalypse/syxpack"
	"github.com/rs/zerolog"
)

const (
	ExitSuccess      = 0
	ExitCommandError = 1
	ExitInvalidData  = 2
)

// Env is what a command runs against. main wires it to the process; tests
// substitute buffers.
type Env struct {
	Config Config
	Log    zerolog.Logger
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Now    func() time.Time
}

func (env *Env) errorf(format string, args ...any) {
	fmt.Fprintf(env.Stderr, "Error: "+format+"\n", args...)
}

// readMessages loads every message in path, splitting first when the file
// holds more than one.
func (env *Env) readMessages(path string) ([]syxpack.Message, int) {
	buf, err := os.ReadFile(path)
	if err != nil {
		env.errorf("%v", err)
		return nil, ExitCommandError
	}
	env.Log.Debug().Str("file", path).Int("bytes", len(buf)).Int("terminators", syxpack.Count(buf)).Msg("read input")

	messages, err := syxpack.ParseAll(buf)
	if err != nil {
		env.errorf("%s: %v", path, err)
		return nil, ExitInvalidData
	}
	return messages, ExitSuccess
}

// readSingleMessage loads path and insists it holds exactly one message.
func (env *Env) readSingleMessage(path string) (syxpack.Message, int) {
	buf, err := os.ReadFile(path)
	if err != nil {
		env.errorf("%v", err)
		return syxpack.Message{}, ExitCommandError
	}
	if syxpack.Count(buf) > 1 {
		env.errorf("more than one System Exclusive message found; use \"syxtool split\" to separate them")
		return syxpack.Message{}, ExitInvalidData
	}

	m, err := syxpack.ParseMessage(buf)
	if err != nil {
		env.errorf("%s: %v", path, err)
		return syxpack.Message{}, ExitInvalidData
	}
	return m, ExitSuccess
}
