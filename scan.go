package syxpack

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

// MaxMessageSize bounds a single message read from a stream.
const MaxMessageSize = 16 * 1024 * 1024

// ScanMessages is a bufio.SplitFunc that yields one framed message per token,
// initiator and terminator included. Bytes outside a message are skipped. A
// message still open at EOF is an error.
func ScanMessages(data []byte, atEOF bool) (advance int, token []byte, err error) {
	start := bytes.IndexByte(data, SysexStart)
	if start < 0 {
		// Nothing but noise so far; drop it.
		return len(data), nil, nil
	}

	if end := bytes.IndexByte(data[start:], SysexEnd); end >= 0 {
		end += start + 1
		return end, data[start:end], nil
	}

	if atEOF {
		return 0, nil, fmt.Errorf("%w: %d bytes without terminator at end of input", ErrMalformedFraming, len(data)-start)
	}
	// Request more data, keeping the partial message at the front.
	return start, nil, nil
}

// ReadMessages decodes every message in r, in stream order.
func ReadMessages(r io.Reader) ([]Message, error) {
	var messages []Message
	err := scanStream(r, func(index, offset int, raw []byte) error {
		m, err := ParseMessage(raw)
		if err != nil {
			return &MessageError{Index: index, Offset: offset, Err: err}
		}
		messages = append(messages, m)
		return nil
	})
	return messages, err
}

// scanStream feeds each framed message in r to fn with its 1-based index and
// stream offset. It stops at the first error fn returns.
func scanStream(r io.Reader, fn func(index, offset int, raw []byte) error) error {
	var consumed, tokenStart int
	split := func(data []byte, atEOF bool) (int, []byte, error) {
		advance, token, err := ScanMessages(data, atEOF)
		if token != nil {
			tokenStart = consumed + advance - len(token)
		}
		consumed += advance
		return advance, token, err
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxMessageSize)
	scanner.Split(split)

	index := 0
	for scanner.Scan() {
		index++
		if err := fn(index, tokenStart, scanner.Bytes()); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return &MessageError{Index: index + 1, Offset: consumed, Err: err}
	}
	return nil
}
