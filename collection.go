package syxpack

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Collection is an ordered set of decoded messages, typically everything
// found in one .syx file.
type Collection struct {
	messages []Message
}

func (c *Collection) Add(m Message) {
	c.messages = append(c.messages, m)
}

func (c *Collection) Len() int {
	return len(c.messages)
}

// At returns the message at 0-based position i.
func (c *Collection) At(i int) (Message, bool) {
	if i < 0 || i >= len(c.messages) {
		return Message{}, false
	}
	return c.messages[i], true
}

func (c *Collection) Messages() []Message {
	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// LoadFrom appends every well-formed message in r. Messages that fail to
// decode are counted and skipped; err is only set for read failures and
// for a message left open at end of input.
func (c *Collection) LoadFrom(r io.Reader) (numValid int, numInvalid int, err error) {
	err = scanStream(r, func(index, offset int, raw []byte) error {
		m, perr := ParseMessage(raw)
		if perr != nil {
			numInvalid++
			return nil
		}
		c.Add(m)
		numValid++
		return nil
	})
	return numValid, numInvalid, err
}

// LoadFile is LoadFrom for a named file.
func (c *Collection) LoadFile(path string) (numValid int, numInvalid int, err error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer file.Close()

	return c.LoadFrom(file)
}

// Filter returns a new collection holding the messages keep accepts.
func (c *Collection) Filter(keep func(Message) bool) *Collection {
	out := new(Collection)
	for _, m := range c.messages {
		if keep(m) {
			out.Add(m)
		}
	}
	return out
}

func (c *Collection) ByManufacturer(id ManufacturerID) *Collection {
	return c.Filter(func(m Message) bool {
		return m.Manufacturer() == id
	})
}

// Export encodes every message back to back.
func (c *Collection) Export() []byte {
	size := 0
	for _, m := range c.messages {
		size += m.Len()
	}
	out := make([]byte, 0, size)
	for _, m := range c.messages {
		out = append(out, m.Bytes()...)
	}
	return out
}

func (c *Collection) ExportTo(w io.Writer) error {
	if len(c.messages) == 0 {
		return ErrNoDataToWrite
	}
	_, err := w.Write(c.Export())
	return err
}

// ExportFile writes the collection to path. An existing file is only
// replaced when overwrite is set.
func (c *Collection) ExportFile(path string, overwrite bool) error {
	if len(c.messages) == 0 {
		return ErrNoDataToWrite
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !overwrite {
		flags |= os.O_EXCL
	}
	file, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return err
	}

	if err := c.ExportTo(file); err != nil {
		return errors.Join(err, file.Close())
	}
	return file.Close()
}

// Summary lists the messages one per line.
func (c *Collection) Summary() string {
	var result []string
	for i, m := range c.messages {
		result = append(result, fmt.Sprintf("   %3d : %s", i+1, m))
	}
	return strings.Join(result, "\n")
}
