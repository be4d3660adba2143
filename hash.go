package modelhash

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
)

// DefaultChunkSize is the read size used when streaming a file into the hash.
const DefaultChunkSize = 4096

// DigestLength is the length of a hex-encoded SHA-256 digest.
const DigestLength = sha256.Size * 2

// HashFile returns the lowercase hex SHA-256 digest of the file at path.
// The file is read sequentially in DefaultChunkSize chunks and closed before
// HashFile returns. Open and read failures wrap ErrFileError.
func HashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFileError, err)
	}
	defer f.Close()

	digest, err := HashReader(f, DefaultChunkSize)
	if err != nil {
		return "", fmt.Errorf("%w: reading %s: %w", ErrFileError, path, err)
	}
	return digest, nil
}

// HashReader streams r through SHA-256, chunkSize bytes at a time, and
// returns the lowercase hex digest. A chunkSize below 1 uses DefaultChunkSize.
// The result does not depend on chunkSize.
func HashReader(r io.Reader, chunkSize int) (string, error) {
	if chunkSize < 1 {
		chunkSize = DefaultChunkSize
	}

	h := sha256.New()
	buf := make([]byte, chunkSize)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			h.Write(buf[:n])
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", err
		}
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// validDigest reports whether s is a 64-character lowercase hex string.
func validDigest(s string) bool {
	if len(s) != DigestLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
