// Package security provides validation utilities for untrusted paths and
// streams read by tincture.
package security

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"strings"
)

// ErrSizeLimitExceeded is returned once a LimitedReader has handed out its
// whole allowance.
var ErrSizeLimitExceeded = errors.New("size limit exceeded")

// ValidateResourceName validates a vocabulary resource name before it is
// opened from a data directory. Names are slash-separated and must stay
// within the directory root.
func ValidateResourceName(name string) error {
	if name == "" {
		return fmt.Errorf("empty resource name")
	}

	if strings.Contains(name, "\\") {
		return fmt.Errorf("resource name %q must use forward slashes", name)
	}

	if path.IsAbs(name) {
		return fmt.Errorf("absolute resource names are not allowed: %s", name)
	}

	for _, part := range strings.Split(name, "/") {
		if part == ".." {
			return fmt.Errorf("resource name %q contains directory traversal (..) - not allowed", name)
		}
	}

	if !fs.ValidPath(name) {
		return fmt.Errorf("invalid resource name: %s", name)
	}

	return nil
}

// ValidateDataDir checks that dir exists and is a directory.
func ValidateDataDir(dir string) error {
	if dir == "" {
		return fmt.Errorf("empty data directory")
	}

	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("data directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("data directory %s is not a directory", dir)
	}

	return nil
}

// LimitedReader wraps an io.Reader and limits the total bytes that can be read.
// Unlike io.LimitReader it fails loudly rather than truncating, so an
// oversized or decompression-bomb resource is reported instead of parsed.
type LimitedReader struct {
	R         io.Reader
	Remaining int64
}

// Read implements io.Reader with size limits.
func (l *LimitedReader) Read(p []byte) (int, error) {
	if l.Remaining <= 0 {
		// A reader that ends exactly on the limit is fine.
		var probe [1]byte
		if n, _ := l.R.Read(probe[:]); n == 0 {
			return 0, io.EOF
		}
		return 0, ErrSizeLimitExceeded
	}
	if int64(len(p)) > l.Remaining {
		p = p[:l.Remaining]
	}
	n, err := l.R.Read(p)
	l.Remaining -= int64(n)
	return n, err
}

// NewLimitedReader creates a new LimitedReader with the specified size limit.
func NewLimitedReader(r io.Reader, maxBytes int64) *LimitedReader {
	return &LimitedReader{
		R:         r,
		Remaining: maxBytes,
	}
}
