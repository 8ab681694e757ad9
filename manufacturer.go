package syxpack

import (
	"fmt"
)

// Kind tells which wire form a manufacturer identifier takes.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindStandard
	KindExtended
	KindUniversalNonRealTime
	KindUniversalRealTime
)

func (k Kind) String() string {
	switch k {
	case KindStandard:
		return "standard"
	case KindExtended:
		return "extended"
	case KindUniversalNonRealTime:
		return "universal non-real-time"
	case KindUniversalRealTime:
		return "universal real-time"
	default:
		return "invalid"
	}
}

// ManufacturerID is the identifier following the initiator byte.
// It is comparable, so it can key a map. The zero value is invalid.
type ManufacturerID struct {
	kind Kind
	b    [3]byte
}

var (
	UniversalNonRealTime = ManufacturerID{kind: KindUniversalNonRealTime, b: [3]byte{NonRealTime}}
	UniversalRealTime    = ManufacturerID{kind: KindUniversalRealTime, b: [3]byte{RealTime}}
)

// Standard returns the one-byte identifier b. Valid values are 0x01 to 0x7D;
// 0x00 marks the extended form and 0x7E/0x7F are the universal classes.
func Standard(b byte) (ManufacturerID, error) {
	if b == ExtendedMarker || b > 0x7D {
		return ManufacturerID{}, fmt.Errorf("%w: %#02x is not a standard identifier", ErrInvalidIdentifier, b)
	}
	return ManufacturerID{kind: KindStandard, b: [3]byte{b}}, nil
}

// Extended returns the three-byte identifier 0x00 b1 b2.
func Extended(b1, b2 byte) (ManufacturerID, error) {
	if b1 > 0x7F || b2 > 0x7F {
		return ManufacturerID{}, fmt.Errorf("%w: %02X %02X is not an extended identifier", ErrInvalidIdentifier, b1, b2)
	}
	return ManufacturerID{kind: KindExtended, b: [3]byte{ExtendedMarker, b1, b2}}, nil
}

func MustStandard(b byte) ManufacturerID {
	id, err := Standard(b)
	if err != nil {
		panic(err)
	}
	return id
}

func MustExtended(b1, b2 byte) ManufacturerID {
	id, err := Extended(b1, b2)
	if err != nil {
		panic(err)
	}
	return id
}

func (id ManufacturerID) Kind() Kind {
	return id.kind
}

func (id ManufacturerID) Valid() bool {
	return id.kind != KindInvalid
}

func (id ManufacturerID) Equal(other ManufacturerID) bool {
	return id == other
}

func (id ManufacturerID) IsUniversal() bool {
	return id.kind == KindUniversalNonRealTime || id.kind == KindUniversalRealTime
}

// Len is the number of bytes the identifier occupies on the wire.
func (id ManufacturerID) Len() int {
	switch id.kind {
	case KindExtended:
		return 3
	case KindInvalid:
		return 0
	default:
		return 1
	}
}

// Bytes returns the identifier as it appears on the wire.
func (id ManufacturerID) Bytes() []byte {
	out := make([]byte, id.Len())
	copy(out, id.b[:])
	return out
}

func (id ManufacturerID) String() string {
	switch id.kind {
	case KindExtended:
		return fmt.Sprintf("%02X %02X %02X", id.b[0], id.b[1], id.b[2])
	case KindInvalid:
		return "?"
	default:
		return fmt.Sprintf("%02X", id.b[0])
	}
}

// Classify inspects the first identifier byte and reports the form and how
// many identifier bytes, including b, must be consumed.
func Classify(b byte) (Kind, int, error) {
	switch {
	case b == ExtendedMarker:
		return KindExtended, 3, nil
	case b == NonRealTime:
		return KindUniversalNonRealTime, 1, nil
	case b == RealTime:
		return KindUniversalRealTime, 1, nil
	case b < 0x80:
		return KindStandard, 1, nil
	default:
		return KindInvalid, 0, fmt.Errorf("%w: status byte %#02x", ErrInvalidIdentifier, b)
	}
}

// ParseManufacturerID reads an identifier from the start of data, which must
// begin with the byte that followed the initiator. It returns the identifier
// and the number of bytes consumed.
func ParseManufacturerID(data []byte) (ManufacturerID, int, error) {
	if len(data) == 0 {
		return ManufacturerID{}, 0, ErrTruncatedIdentifier
	}

	kind, n, err := Classify(data[0])
	if err != nil {
		return ManufacturerID{}, 0, err
	}
	if len(data) < n {
		return ManufacturerID{}, 0, fmt.Errorf("%w: need %d bytes, have %d", ErrTruncatedIdentifier, n, len(data))
	}

	switch kind {
	case KindExtended:
		id, err := Extended(data[1], data[2])
		if err != nil {
			return ManufacturerID{}, 0, err
		}
		return id, n, nil
	case KindUniversalNonRealTime:
		return UniversalNonRealTime, n, nil
	case KindUniversalRealTime:
		return UniversalRealTime, n, nil
	default:
		return ManufacturerID{kind: KindStandard, b: [3]byte{data[0]}}, n, nil
	}
}
