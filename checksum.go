package sessfile

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/zeebo/blake3"
)

// Checksum computes the BLAKE3 hash over the file's raw bytes and returns
// it hex-encoded. The file is read through an independent read-only handle,
// so the session's own handle and cursor stay untouched.
func (s *Session) Checksum() (string, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return "", fmt.Errorf("(sess-checksum) failed to open file: %w", err)
	}
	defer file.Close()

	hasher := blake3.New()
	if _, err := io.Copy(hasher, file); err != nil {
		return "", fmt.Errorf("(sess-checksum) failed to hash file: %w", err)
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}
