package syxpack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPack7(t *testing.T) {
	unpacked := []byte{101, 202, 103, 204, 105, 206, 107}
	packed := []byte{42, 101, 74, 103, 76, 105, 78, 107}

	assert.Equal(t, packed, Pack7(unpacked))

	got, err := Unpack7(packed)
	require.NoError(t, err)
	assert.Equal(t, unpacked, got)
}

func TestPack7PartialChunk(t *testing.T) {
	data := []byte{0x80, 0x01, 0xFF, 0x7F, 0x00, 0x81, 0x02, 0x90, 0x03}

	packed := Pack7(data)
	assert.Len(t, packed, 8+3)
	for _, b := range packed {
		assert.Less(t, b, byte(0x80))
	}

	got, err := Unpack7(packed)
	require.NoError(t, err)
	binaryExpectEqual(t, data, got)
}

func TestUnpack7ShortChunk(t *testing.T) {
	_, err := Unpack7([]byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x00})
	assert.ErrorIs(t, err, ErrShortChunk)
}

func TestNybblify(t *testing.T) {
	assert.Equal(t, []byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05}, Nybblify([]byte{0x01, 0x23, 0x45}))
}

func TestDenybblify(t *testing.T) {
	got, err := Denybblify([]byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x23, 0x45}, got)

	_, err = Denybblify([]byte{0x01, 0x02, 0x03})
	assert.ErrorIs(t, err, ErrOddLength)
}

func TestPackBits(t *testing.T) {
	// 0xFF 0x00 is 11111111 00000000; in 7-bit groups 1111111 1000000 00
	packed, err := PackBits([]byte{0xFF, 0x00})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x7F, 0x40, 0x00}, packed)

	unpacked, err := UnpackBits(packed)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xFF, 0x00}, unpacked)
}

func TestPackBitsRoundTrip(t *testing.T) {
	for n := 0; n < 40; n++ {
		data := make([]byte, n)
		for i := range data {
			data[i] = byte(i*37 + n)
		}

		packed, err := PackBits(data)
		require.NoError(t, err)
		assert.Len(t, packed, (8*n+6)/7)
		for _, b := range packed {
			assert.Less(t, b, byte(0x80))
		}

		unpacked, err := UnpackBits(packed)
		require.NoError(t, err)
		binaryExpectEqual(t, data, unpacked)
	}
}

func TestPackedPayloadFitsInMessage(t *testing.T) {
	data := []byte{0xF0, 0xF7, 0xFF, 0x80, 0x00}
	m, err := NewMessage(MustStandard(0x42), Pack7(data))
	require.NoError(t, err)

	decoded, err := ParseMessage(m.Bytes())
	require.NoError(t, err)
	got, err := Unpack7(decoded.Payload())
	require.NoError(t, err)
	assert.Equal(t, data, got)
}
