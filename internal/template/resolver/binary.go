package resolver

import (
	"bytes"
	"errors"
	"io"
	"os"
)

// SniffLen is how many leading bytes are inspected for a NUL byte.
const SniffLen = 1024

// IsBinaryContent checks if content appears to be binary by looking for a
// NUL byte in the first SniffLen bytes.
func IsBinaryContent(content []byte) bool {
	checkLen := min(len(content), SniffLen)
	return bytes.IndexByte(content[:checkLen], 0) != -1
}

// IsBinaryFile reads at most SniffLen bytes of path and reports whether they
// contain a NUL byte. The file is closed before returning on every path.
func IsBinaryFile(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	buf := make([]byte, SniffLen)
	n, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return false, err
	}
	return IsBinaryContent(buf[:n]), nil
}
