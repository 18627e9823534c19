// Package compression reads resources that may be stored compressed.
//
// A resource named "xkcd.json" is looked up as-is first and then as
// "xkcd.json.xz", "xkcd.json.gz" and "xkcd.json.bz2", so data directories
// can ship large vocabularies compressed without the caller caring.
package compression

import (
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/jmylchreest/tincture/internal/security"
	"github.com/ulikunitz/xz"
)

// DefaultMaxSize bounds the decompressed size of a single resource.
const DefaultMaxSize = 64 * 1024 * 1024

// Format identifies how a resource is stored.
type Format string

const (
	FormatNone  Format = "none"
	FormatXz    Format = "xz"
	FormatGzip  Format = "gzip"
	FormatBzip2 Format = "bzip2"
)

// suffixes lists compressed variants in lookup order.
var suffixes = []struct {
	ext    string
	format Format
}{
	{".xz", FormatXz},
	{".gz", FormatGzip},
	{".bz2", FormatBzip2},
}

// Resource is a resource read from a filesystem.
type Resource struct {
	// Path is the name that was actually opened, including any compression suffix.
	Path string
	// Format is the storage format detected from Path.
	Format Format
	// Data is the decompressed content.
	Data []byte
}

// DetectFormat returns the format implied by name's extension.
func DetectFormat(name string) Format {
	for _, s := range suffixes {
		if strings.HasSuffix(name, s.ext) {
			return s.format
		}
	}
	return FormatNone
}

// ReadResource reads name from fsys, falling back to compressed variants when
// the plain file is absent. The decompressed size is limited to maxBytes; a
// non-positive limit means DefaultMaxSize. When no variant exists the returned
// error wraps fs.ErrNotExist.
func ReadResource(fsys fs.FS, name string, maxBytes int64) (*Resource, error) {
	if err := security.ValidateResourceName(name); err != nil {
		return nil, err
	}
	if maxBytes <= 0 {
		maxBytes = DefaultMaxSize
	}

	candidates := []string{name}
	if DetectFormat(name) == FormatNone {
		for _, s := range suffixes {
			candidates = append(candidates, name+s.ext)
		}
	}

	for _, candidate := range candidates {
		raw, err := fs.ReadFile(fsys, candidate)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", candidate, err)
		}

		format := DetectFormat(candidate)
		data, err := Decompress(raw, format, maxBytes)
		if err != nil {
			return nil, fmt.Errorf("failed to decompress %s: %w", candidate, err)
		}
		return &Resource{Path: candidate, Format: format, Data: data}, nil
	}

	return nil, fmt.Errorf("%s (tried %s): %w", name, strings.Join(candidates, ", "), fs.ErrNotExist)
}

// Decompress expands data stored in format, reading at most maxBytes of output.
func Decompress(data []byte, format Format, maxBytes int64) ([]byte, error) {
	var r io.Reader
	switch format {
	case FormatNone:
		r = bytes.NewReader(data)
	case FormatXz:
		xzr, err := xz.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to create xz reader: %w", err)
		}
		r = xzr
	case FormatGzip:
		gzr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer gzr.Close()
		r = gzr
	case FormatBzip2:
		r = bzip2.NewReader(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("unsupported compression format %q", format)
	}

	return io.ReadAll(security.NewLimitedReader(r, maxBytes))
}
