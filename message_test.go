package syxpack

import (
	"crypto/md5"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMessage(t *testing.T) {
	tests := []struct {
		name        string
		raw         []byte
		wantID      ManufacturerID
		wantPayload []byte
	}{
		{
			name:        "standard",
			raw:         []byte{0xF0, 0x43, 0x01, 0x02, 0xF7},
			wantID:      MustStandard(0x43),
			wantPayload: []byte{0x01, 0x02},
		},
		{
			name:        "extended",
			raw:         []byte{0xF0, 0x00, 0x20, 0x29, 0x01, 0xF7},
			wantID:      MustExtended(0x20, 0x29),
			wantPayload: []byte{0x01},
		},
		{
			name:        "kawai one block dump request",
			raw:         []byte{0xF0, 0x40, 0x00, 0x20, 0x00, 0x04, 0x00, 0x3F, 0xF7},
			wantID:      MustStandard(0x40),
			wantPayload: []byte{0x00, 0x20, 0x00, 0x04, 0x00, 0x3F},
		},
		{
			name:        "alesis extended",
			raw:         []byte{0xF0, 0x00, 0x00, 0x0E, 0x00, 0x41, 0x63, 0x00, 0x5D, 0xF7},
			wantID:      MustExtended(0x00, 0x0E),
			wantPayload: []byte{0x00, 0x41, 0x63, 0x00, 0x5D},
		},
		{
			name:        "identity request",
			raw:         []byte{0xF0, 0x7E, 0x7F, 0x06, 0x01, 0xF7},
			wantID:      UniversalNonRealTime,
			wantPayload: []byte{0x7F, 0x06, 0x01},
		},
		{
			name:        "empty payload",
			raw:         []byte{0xF0, 0x43, 0xF7},
			wantID:      MustStandard(0x43),
			wantPayload: []byte{},
		},
		{
			name:        "realtime bytes are payload",
			raw:         []byte{0xF0, 0x41, 0x10, 0xF8, 0xFE, 0x20, 0xF7},
			wantID:      MustStandard(0x41),
			wantPayload: []byte{0x10, 0xF8, 0xFE, 0x20},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := ParseMessage(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, m.Manufacturer())
			assert.Equal(t, tt.wantPayload, m.Payload())
			assert.Equal(t, len(tt.raw), m.Len())

			// encode(decode(b)) == b
			binaryExpectEqual(t, tt.raw, m.Bytes())

			// decode(encode(m)) == m
			again, err := ParseMessage(m.Bytes())
			require.NoError(t, err)
			assert.True(t, m.Equal(again))
		})
	}
}

func TestParseMessageErrors(t *testing.T) {
	tests := []struct {
		name    string
		raw     []byte
		wantErr error
	}{
		{"empty", nil, ErrMalformedFraming},
		{"missing initiator", []byte{0x41, 0xF7}, ErrMalformedFraming},
		{"missing terminator", []byte{0xF0, 0x41, 0x01}, ErrMalformedFraming},
		{"initiator only", []byte{0xF0}, ErrMalformedFraming},
		{"two messages", []byte{0xF0, 0x41, 0xF7, 0xF0, 0x42, 0xF7}, ErrMalformedFraming},
		{"status byte identifier", []byte{0xF0, 0x90, 0x40, 0xF7}, ErrMalformedFraming},
		{"no identifier", []byte{0xF0, 0xF7}, ErrTruncatedIdentifier},
		{"truncated extended", []byte{0xF0, 0x00, 0x20, 0xF7}, ErrTruncatedIdentifier},
		{"bare extended marker", []byte{0xF0, 0x00, 0xF7}, ErrTruncatedIdentifier},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMessage(tt.raw)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseMessageStatusIdentifierKeepsCause(t *testing.T) {
	_, err := ParseMessage([]byte{0xF0, 0x90, 0xF7})
	assert.ErrorIs(t, err, ErrMalformedFraming)
	assert.ErrorIs(t, err, ErrInvalidIdentifier)
}

func TestMessageIsImmutable(t *testing.T) {
	raw := []byte{0xF0, 0x43, 0x01, 0x02, 0xF7}
	m, err := ParseMessage(raw)
	require.NoError(t, err)

	raw[2] = 0x7F
	payload := m.Payload()
	payload[1] = 0x7F

	assert.Equal(t, []byte{0x01, 0x02}, m.Payload())
}

func TestNewMessage(t *testing.T) {
	tests := []struct {
		name    string
		id      ManufacturerID
		payload []byte
		want    []byte
	}{
		{"standard", MustStandard(0x43), nil, []byte{0xF0, 0x43, 0xF7}},
		{"extended", MustExtended(0x00, 0x01), nil, []byte{0xF0, 0x00, 0x00, 0x01, 0xF7}},
		{"development", MustStandard(0x7D), nil, []byte{0xF0, 0x7D, 0xF7}},
		{"kawai", MustStandard(0x40), []byte{0x00, 0x20, 0x00, 0x04, 0x00, 0x3F}, []byte{0xF0, 0x40, 0x00, 0x20, 0x00, 0x04, 0x00, 0x3F, 0xF7}},
		{"universal real-time", UniversalRealTime, []byte{0x7F, 0x04, 0x01, 0x00, 0x40}, []byte{0xF0, 0x7F, 0x7F, 0x04, 0x01, 0x00, 0x40, 0xF7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMessage(tt.id, tt.payload)
			require.NoError(t, err)
			binaryExpectEqual(t, tt.want, m.Bytes())

			decoded, err := ParseMessage(m.Bytes())
			require.NoError(t, err)
			assert.True(t, m.Equal(decoded))
		})
	}
}

func TestNewMessageErrors(t *testing.T) {
	_, err := NewMessage(ManufacturerID{}, nil)
	assert.ErrorIs(t, err, ErrInvalidIdentifier)

	_, err = NewMessage(MustStandard(0x41), []byte{0x01, 0xF7, 0x02})
	assert.ErrorIs(t, err, ErrMalformedFraming)
}

func TestMessageUniversal(t *testing.T) {
	m, err := ParseMessage([]byte{0xF0, 0x7E, 0x10, 0x06, 0x02, 0x41, 0xF7})
	require.NoError(t, err)

	h, ok := m.Universal()
	require.True(t, ok)
	assert.Equal(t, UniversalHeader{Kind: KindUniversalNonRealTime, DeviceID: 0x10, SubID1: 0x06, SubID2: 0x02}, h)
	assert.Equal(t, []byte{0x10, 0x06, 0x02, 0x41}, m.Payload())

	short, err := ParseMessage([]byte{0xF0, 0x7F, 0x10, 0xF7})
	require.NoError(t, err)
	_, ok = short.Universal()
	assert.False(t, ok)

	vendor, err := ParseMessage([]byte{0xF0, 0x41, 0x10, 0x06, 0x02, 0xF7})
	require.NoError(t, err)
	_, ok = vendor.Universal()
	assert.False(t, ok)
}

func TestMessageSections(t *testing.T) {
	m, err := ParseMessage([]byte{0xF0, 0x00, 0x20, 0x29, 0x01, 0x02, 0xF7})
	require.NoError(t, err)

	assert.Equal(t, []Section{
		{Kind: SectionInitiator, Name: "System Exclusive Initiator", Offset: 0, Length: 1},
		{Kind: SectionManufacturer, Name: "Novation", Offset: 1, Length: 3},
		{Kind: SectionPayload, Name: "Message Payload", Offset: 4, Length: 2},
		{Kind: SectionTerminator, Name: "System Exclusive Terminator", Offset: 6, Length: 1},
	}, m.Sections())

	universal, err := ParseMessage([]byte{0xF0, 0x7E, 0x7F, 0x06, 0x01, 0xF7})
	require.NoError(t, err)
	sections := universal.Sections()
	require.Len(t, sections, 4)
	assert.Equal(t, SectionUniversal, sections[1].Kind)
	assert.Equal(t, 1, sections[1].Length)
}

func TestMessageDigest(t *testing.T) {
	raw := []byte{0xF0, 0x43, 0x01, 0x02, 0xF7}
	m, err := ParseMessage(raw)
	require.NoError(t, err)
	assert.Equal(t, md5.Sum(raw), m.Digest())
}

func TestMessageString(t *testing.T) {
	m, err := ParseMessage([]byte{0xF0, 0x43, 0x01, 0x02, 0xF7})
	require.NoError(t, err)
	assert.Equal(t, "Yamaha (43), payload = 2 bytes", m.String())

	u, err := ParseMessage([]byte{0xF0, 0x7E, 0x7F, 0x06, 0x01, 0xF7})
	require.NoError(t, err)
	assert.Equal(t, "Universal Non-Real-time, device 7F, sub-id 06 01, payload = 3 bytes", u.String())
}
