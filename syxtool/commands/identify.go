package commands

import (
	"flag"
	"fmt"

	"github.com/malacalypse/syxpack"
)

// RunIdentify prints the manufacturer, payload size and digest of every
// message in a file.
func RunIdentify(env *Env, args []string) int {
	fs := flag.NewFlagSet("identify", flag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	if err := fs.Parse(args); err != nil {
		return ExitCommandError
	}
	if fs.NArg() != 1 {
		env.errorf("usage: syxtool identify <file>")
		return ExitCommandError
	}

	messages, code := env.readMessages(fs.Arg(0))
	if code != ExitSuccess {
		return code
	}

	for i, m := range messages {
		fmt.Fprintf(env.Stdout, "Message %d of %d\n", i+1, len(messages))
		identify(env, m)
		fmt.Fprintf(env.Stdout, "MD5 digest: %x\n\n", m.Digest())
	}
	return ExitSuccess
}

func identify(env *Env, m syxpack.Message) {
	if h, ok := m.Universal(); ok {
		fmt.Fprintf(env.Stdout, "Universal, kind: %s, device %02X, %02X %02X, payload = %d bytes\n",
			h.Kind, h.DeviceID, h.SubID1, h.SubID2, len(m.Payload()))
		return
	}
	fmt.Fprintf(env.Stdout, "Manufacturer: %s (%s), payload = %d bytes\n",
		syxpack.ManufacturerName(m.Manufacturer()), m.Manufacturer(), len(m.Payload()))
}
