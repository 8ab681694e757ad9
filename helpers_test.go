package syxpack

import (
	"bytes"
	"fmt"
	"io"
	"testing"
)

// locationOfDifference returns the first offset where b1 and b2 differ and
// an excerpt around it. A nil error means they are equal.
func locationOfDifference(b1, b2 []byte) (int, error) {
	r1 := bytes.NewReader(b1)
	r2 := bytes.NewReader(b2)

	for i := 0; ; i++ {
		c1, err1 := r1.ReadByte()
		c2, err2 := r2.ReadByte()
		if c1 == c2 && err1 == err2 {
			if err1 == io.EOF {
				return 0, nil
			}
			continue
		}
		lo := max(0, i-5)
		explanation := fmt.Errorf("want: %X^%X | got: %X^%X",
			b1[min(lo, len(b1)):min(i, len(b1))], b1[min(i, len(b1)):min(i+5, len(b1))],
			b2[min(lo, len(b2)):min(i, len(b2))], b2[min(i, len(b2)):min(i+5, len(b2))])
		return i, explanation
	}
}

func binaryExpectEqual(t *testing.T, expected, received []byte) {
	t.Helper()
	if location, explanation := locationOfDifference(expected, received); explanation != nil {
		t.Errorf("bytes differ at offset %d: %v", location, explanation)
	}
}

func concat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
