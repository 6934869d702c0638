// Package integrity fingerprints challenge artifacts so tampering can be
// detected without storing anything secret.
package integrity

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/glycerine/blake3"
)

// Prefix tags digests with the hash they were made with.
const Prefix = "blake3:"

const digestSize = 32

// Digest hashes everything readable from r.
func Digest(r io.Reader) (string, error) {
	h := blake3.New(digestSize, nil)
	if _, err := io.Copy(h, r); err != nil {
		return "", fmt.Errorf("digest: %w", err)
	}
	return Prefix + hex.EncodeToString(h.Sum(nil)), nil
}

// DigestBytes hashes b.
func DigestBytes(b []byte) string {
	// Reading from a bytes.Reader cannot fail.
	digest, _ := Digest(bytes.NewReader(b))
	return digest
}

// DigestFile hashes the file at path.
func DigestFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Digest(f)
}
