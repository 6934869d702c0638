package random

import (
	"bytes"
	"strings"
	"testing"
)

func TestSeedFromLittleEndian(t *testing.T) {
	seed, err := seedFrom(bytes.NewReader([]byte{0x78, 0x00, 0x00, 0x00, 0xff}))
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if seed != 120 {
		t.Fatalf("seed = %d, want 120", seed)
	}
}

func TestSeedFromShortRead(t *testing.T) {
	_, err := seedFrom(bytes.NewReader([]byte{1, 2}))
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "read random seed") {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestNewSeedVaries(t *testing.T) {
	seen := make(map[uint32]struct{})
	for i := 0; i < 8; i++ {
		seed, err := NewSeed()
		if err != nil {
			t.Fatalf("new seed: %v", err)
		}
		seen[seed] = struct{}{}
	}
	if len(seen) < 2 {
		t.Fatalf("expected varied seeds, got %v", seen)
	}
}
