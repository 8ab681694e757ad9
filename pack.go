package syxpack

import (
	"bytes"
	"fmt"
	"io"

	"github.com/dgryski/go-bitstream"
)

// SysEx data bytes carry seven bits. The helpers below move 8-bit data in
// and out of that space using the schemes manufacturers commonly apply to
// message payloads.

// Pack7 splits data into 7-byte chunks and emits each as one byte holding
// the chunk's high bits (bit i for byte i) followed by the seven bytes with
// their high bit cleared.
func Pack7(data []byte) []byte {
	out := make([]byte, 0, len(data)+(len(data)+6)/7)
	for start := 0; start < len(data); start += 7 {
		chunk := data[start:min(start+7, len(data))]

		var highBits byte
		for i, b := range chunk {
			if b&0x80 != 0 {
				highBits |= 1 << i
			}
		}
		out = append(out, highBits)
		for _, b := range chunk {
			out = append(out, b&0x7F)
		}
	}
	return out
}

// Unpack7 reverses Pack7.
func Unpack7(data []byte) ([]byte, error) {
	out := make([]byte, 0, len(data))
	for start := 0; start < len(data); start += 8 {
		chunk := data[start:min(start+8, len(data))]
		if len(chunk) < 2 {
			return nil, fmt.Errorf("%w: packed chunk at offset %d has no data bytes", ErrShortChunk, start)
		}

		highBits := chunk[0]
		for i, b := range chunk[1:] {
			if highBits&(1<<i) != 0 {
				b |= 0x80
			}
			out = append(out, b)
		}
	}
	return out, nil
}

// Nybblify splits every byte into its high and low nybble.
func Nybblify(data []byte) []byte {
	out := make([]byte, 0, 2*len(data))
	for _, b := range data {
		out = append(out, b>>4, b&0x0F)
	}
	return out
}

// Denybblify joins adjacent high/low nybble pairs back into bytes.
func Denybblify(data []byte) ([]byte, error) {
	if len(data)%2 != 0 {
		return nil, ErrOddLength
	}
	out := make([]byte, 0, len(data)/2)
	for i := 0; i < len(data); i += 2 {
		out = append(out, data[i]<<4|data[i+1]&0x0F)
	}
	return out, nil
}

// PackBits treats data as one continuous bitstream and re-emits it seven
// bits at a time, each group in a byte with the top bit clear. The last
// group is padded with zero bits.
func PackBits(data []byte) ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, len(data)+(len(data)+6)/7))
	reader := bitstream.NewReader(bytes.NewReader(data))
	writer := bitstream.NewWriter(buf)

	for {
		var group uint64
		n := 0
		for ; n < 7; n++ {
			bit, err := reader.ReadBit()
			if err == io.EOF {
				break
			}
			if err != nil {
				return nil, fmt.Errorf("reading bit: %w", err)
			}
			group <<= 1
			if bit {
				group |= 1
			}
		}
		if n == 0 {
			break
		}
		group <<= uint(7 - n)
		if err := writer.WriteBits(group, 8); err != nil {
			return nil, fmt.Errorf("writing bits: %w", err)
		}
		if n < 7 {
			break
		}
	}

	return buf.Bytes(), nil
}

// UnpackBits drops the top bit of every byte and concatenates the remaining
// seven-bit groups. Trailing bits that do not fill a byte are discarded.
func UnpackBits(data []byte) ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, len(data)))
	reader := bitstream.NewReader(bytes.NewReader(data))
	writer := bitstream.NewWriter(buf)

	for i := 0; ; i++ {
		bit, err := reader.ReadBit()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading bit: %w", err)
		}
		if i%8 == 0 {
			continue
		}
		if err := writer.WriteBit(bit); err != nil {
			return nil, fmt.Errorf("writing bit: %w", err)
		}
	}

	return buf.Bytes(), nil
}
