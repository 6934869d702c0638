// Package random draws fresh challenge seeds from the operating system's
// entropy source. Everything downstream of the seed is deterministic.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
)

// NewSeed returns a uniformly random 32-bit seed from crypto/rand.
func NewSeed() (uint32, error) {
	return seedFrom(crand.Reader)
}

func seedFrom(r io.Reader) (uint32, error) {
	var b [4]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint32(b[:]), nil
}
