package syxpack

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedFraming     = errors.New("syxpack: malformed message framing")
	ErrTruncatedIdentifier  = errors.New("syxpack: truncated manufacturer identifier")
	ErrInvalidIdentifier    = errors.New("syxpack: invalid manufacturer identifier")
	ErrSplitBoundary        = errors.New("syxpack: segment does not start with a message initiator")
	ErrManufacturerNotFound = errors.New("syxpack: manufacturer not found")
	ErrOddLength            = errors.New("syxpack: nybble data has odd length")
	ErrShortChunk           = errors.New("syxpack: short packed chunk")
	ErrNoDataToWrite        = errors.New("syxpack: no data to write")
)

// MessageError locates a failure inside a multi-message buffer.
// Index is 1-based, Offset is the byte offset of the segment in the buffer.
type MessageError struct {
	Index  int
	Offset int
	Err    error
}

func (e *MessageError) Error() string {
	return fmt.Sprintf("message %d at offset %#x: %v", e.Index, e.Offset, e.Err)
}

func (e *MessageError) Unwrap() error {
	return e.Err
}
