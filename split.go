package syxpack

import (
	"bytes"
	"fmt"
)

// Count returns the number of terminator bytes in buf, i.e. the number of
// complete messages it can hold.
func Count(buf []byte) int {
	return bytes.Count(buf, []byte{SysexEnd})
}

// Split cuts buf after every terminator. Segments alias buf and come back in
// input order. Each one must start with the initiator; anything else between
// or after messages is reported as ErrSplitBoundary.
func Split(buf []byte) ([][]byte, error) {
	n := Count(buf)
	if n == 0 {
		return nil, fmt.Errorf("%w: no message terminator", ErrMalformedFraming)
	}

	segments := make([][]byte, 0, n)
	start := 0
	for i := 0; i < n; i++ {
		end := start + bytes.IndexByte(buf[start:], SysexEnd) + 1
		segment := buf[start:end:end]
		if segment[0] != SysexStart {
			return nil, &MessageError{Index: i + 1, Offset: start, Err: ErrSplitBoundary}
		}
		segments = append(segments, segment)
		start = end
	}

	if start != len(buf) {
		return nil, &MessageError{Index: n + 1, Offset: start, Err: fmt.Errorf("%w: %d trailing bytes", ErrSplitBoundary, len(buf)-start)}
	}
	return segments, nil
}

// ParseAll decodes every message in buf. A single message is parsed in
// place; several are split first and parsed in order.
func ParseAll(buf []byte) ([]Message, error) {
	switch Count(buf) {
	case 0:
		return nil, fmt.Errorf("%w: no message terminator", ErrMalformedFraming)
	case 1:
		m, err := ParseMessage(buf)
		if err != nil {
			return nil, &MessageError{Index: 1, Offset: 0, Err: err}
		}
		return []Message{m}, nil
	}

	segments, err := Split(buf)
	if err != nil {
		return nil, err
	}

	messages := make([]Message, 0, len(segments))
	offset := 0
	for i, segment := range segments {
		m, err := ParseMessage(segment)
		if err != nil {
			return nil, &MessageError{Index: i + 1, Offset: offset, Err: err}
		}
		messages = append(messages, m)
		offset += len(segment)
	}
	return messages, nil
}
