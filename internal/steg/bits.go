package steg

import (
	"fmt"
	"strings"
)

// ToBits expands data into one 0/1 value per bit, most significant bit of
// each byte first.
func ToBits(data []byte) []uint8 {
	bits := make([]uint8, 0, len(data)*8)
	for _, b := range data {
		for shift := 7; shift >= 0; shift-- {
			bits = append(bits, (b>>shift)&1)
		}
	}
	return bits
}

// FromBits packs bits produced by ToBits back into bytes. The length must
// be a multiple of eight.
func FromBits(bits []uint8) ([]byte, error) {
	if len(bits)%8 != 0 {
		return nil, fmt.Errorf("bit count %d is not a multiple of 8", len(bits))
	}
	data := make([]byte, len(bits)/8)
	for i, bit := range bits {
		data[i/8] = data[i/8]<<1 | bit&1
	}
	return data, nil
}

// DecodeText converts recovered bytes to a string, replacing invalid UTF-8
// with U+FFFD instead of failing.
func DecodeText(data []byte) string {
	return strings.ToValidUTF8(string(data), "\uFFFD")
}
