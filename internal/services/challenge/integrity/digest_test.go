package integrity

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDigestBytesStable(t *testing.T) {
	a := DigestBytes([]byte("DJP{owl-fox-yak-emu}"))
	b := DigestBytes([]byte("DJP{owl-fox-yak-emu}"))
	if a != b {
		t.Fatalf("digest not stable: %q vs %q", a, b)
	}
	if !strings.HasPrefix(a, Prefix) || len(a) != len(Prefix)+2*digestSize {
		t.Fatalf("unexpected digest format %q", a)
	}
	if c := DigestBytes([]byte("DJP{owl-fox-yak-emv}")); c == a {
		t.Fatal("different inputs share a digest")
	}
}

func TestDigestFileMatchesBytes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "artifact.png")
	data := []byte{0x89, 'P', 'N', 'G', 1, 2, 3}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := DigestFile(path)
	if err != nil {
		t.Fatalf("digest file: %v", err)
	}
	if want := DigestBytes(data); got != want {
		t.Fatalf("file digest %q, want %q", got, want)
	}
}

func TestDigestFileMissing(t *testing.T) {
	if _, err := DigestFile(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatal("expected error")
	}
}
