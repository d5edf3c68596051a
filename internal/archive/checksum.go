package archive

import (
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"
	"strings"
)

// ValidateFile reads r to the end and reports whether its digest matches
// expected (hex, case-insensitive). Supported algorithms are "md5" (the
// default when algorithm is empty) and "sha256".
func ValidateFile(r io.Reader, expected, algorithm string) (bool, error) {
	var h hash.Hash
	switch strings.ToLower(algorithm) {
	case "", "md5":
		h = md5.New()
	case "sha256":
		h = sha256.New()
	default:
		return false, fmt.Errorf("unsupported checksum algorithm %q", algorithm)
	}

	if _, err := io.Copy(h, r); err != nil {
		return false, fmt.Errorf("read file for checksum: %w", err)
	}

	return strings.EqualFold(hex.EncodeToString(h.Sum(nil)), expected), nil
}

// FileMD5 returns the hex MD5 digest of the file at path.
func FileMD5(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open file for checksum: %w", err)
	}
	defer f.Close()

	h := md5.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("read file for checksum: %w", err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
