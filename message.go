package syxpack

import (
	"bytes"
	"crypto/md5"
	"errors"
	"fmt"
)

const (
	SysexStart     = 0xF0
	SysexEnd       = 0xF7
	ExtendedMarker = 0x00
	NonRealTime    = 0x7E
	RealTime       = 0x7F
)

// Message is one decoded System Exclusive message. It is immutable: the
// constructors copy their input and Payload hands out a copy.
type Message struct {
	manufacturer ManufacturerID
	payload      []byte
}

// ParseMessage decodes exactly one framed message.
func ParseMessage(rawSysex []byte) (Message, error) {
	if len(rawSysex) < 2 || rawSysex[0] != SysexStart || rawSysex[len(rawSysex)-1] != SysexEnd {
		return Message{}, ErrMalformedFraming
	}

	// Everything between the initiator and the terminator.
	body := rawSysex[1 : len(rawSysex)-1]
	if i := bytes.IndexByte(body, SysexEnd); i >= 0 {
		return Message{}, fmt.Errorf("%w: terminator at offset %d before end of message", ErrMalformedFraming, i+1)
	}

	id, n, err := ParseManufacturerID(body)
	if err != nil {
		if errors.Is(err, ErrInvalidIdentifier) {
			return Message{}, fmt.Errorf("%w: %w", ErrMalformedFraming, err)
		}
		return Message{}, err
	}

	return Message{
		manufacturer: id,
		payload:      bytes.Clone(body[n:]),
	}, nil
}

// NewMessage builds a message for encoding. The payload may not contain the
// terminator byte, so the result always decodes back to an equal message.
func NewMessage(id ManufacturerID, payload []byte) (Message, error) {
	if !id.Valid() {
		return Message{}, ErrInvalidIdentifier
	}
	if i := bytes.IndexByte(payload, SysexEnd); i >= 0 {
		return Message{}, fmt.Errorf("%w: terminator in payload at offset %d", ErrMalformedFraming, i)
	}
	return Message{manufacturer: id, payload: bytes.Clone(payload)}, nil
}

func (m Message) Manufacturer() ManufacturerID {
	return m.manufacturer
}

func (m Message) Payload() []byte {
	return bytes.Clone(m.payload)
}

// Len is the encoded length including both framing bytes.
func (m Message) Len() int {
	return 2 + m.manufacturer.Len() + len(m.payload)
}

// Bytes encodes the message: initiator, identifier, payload, terminator.
func (m Message) Bytes() []byte {
	out := make([]byte, 0, m.Len())
	out = append(out, SysexStart)
	out = append(out, m.manufacturer.Bytes()...)
	out = append(out, m.payload...)
	return append(out, SysexEnd)
}

func (m Message) Equal(other Message) bool {
	return m.manufacturer == other.manufacturer && bytes.Equal(m.payload, other.payload)
}

// Digest is the MD5 sum of the encoded message.
func (m Message) Digest() [md5.Size]byte {
	return md5.Sum(m.Bytes())
}

func (m Message) String() string {
	if h, ok := m.Universal(); ok {
		return fmt.Sprintf("%s, device %02X, sub-id %02X %02X, payload = %d bytes",
			ManufacturerName(m.manufacturer), h.DeviceID, h.SubID1, h.SubID2, len(m.payload))
	}
	return fmt.Sprintf("%s (%s), payload = %d bytes", ManufacturerName(m.manufacturer), m.manufacturer, len(m.payload))
}

// UniversalHeader is the leading part of a universal message payload.
type UniversalHeader struct {
	Kind     Kind
	DeviceID byte
	SubID1   byte
	SubID2   byte
}

// Universal reads the device and sub-IDs from a universal message. It
// reports false for manufacturer messages and for payloads shorter than
// three bytes. The payload itself is left untouched.
func (m Message) Universal() (UniversalHeader, bool) {
	if !m.manufacturer.IsUniversal() || len(m.payload) < 3 {
		return UniversalHeader{}, false
	}
	return UniversalHeader{
		Kind:     m.manufacturer.Kind(),
		DeviceID: m.payload[0],
		SubID1:   m.payload[1],
		SubID2:   m.payload[2],
	}, true
}

type SectionKind int

const (
	SectionInitiator SectionKind = iota
	SectionManufacturer
	SectionUniversal
	SectionPayload
	SectionTerminator
)

func (k SectionKind) String() string {
	switch k {
	case SectionInitiator:
		return "Message initiator"
	case SectionManufacturer:
		return "Manufacturer identifier"
	case SectionUniversal:
		return "Universal message identifier"
	case SectionPayload:
		return "Message payload"
	case SectionTerminator:
		return "Message terminator"
	}
	return "Unknown section"
}

// Section is a byte range of an encoded message.
type Section struct {
	Kind   SectionKind
	Name   string
	Offset int
	Length int
}

// Sections lays out the encoded message, offsets relative to its first byte.
func (m Message) Sections() []Section {
	offset := 0
	sections := []Section{{Kind: SectionInitiator, Name: "System Exclusive Initiator", Offset: offset, Length: 1}}
	offset++

	idLen := m.manufacturer.Len()
	if m.manufacturer.IsUniversal() {
		sections = append(sections, Section{Kind: SectionUniversal, Name: m.manufacturer.Kind().String(), Offset: offset, Length: idLen})
	} else {
		sections = append(sections, Section{Kind: SectionManufacturer, Name: ManufacturerName(m.manufacturer), Offset: offset, Length: idLen})
	}
	offset += idLen

	sections = append(sections, Section{Kind: SectionPayload, Name: "Message Payload", Offset: offset, Length: len(m.payload)})
	offset += len(m.payload)

	return append(sections, Section{Kind: SectionTerminator, Name: "System Exclusive Terminator", Offset: offset, Length: 1})
}
