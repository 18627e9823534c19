package compression

import (
	"bytes"
	"compress/gzip"
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/jmylchreest/tincture/internal/security"
	"github.com/ulikunitz/xz"
)

const payload = `[{"name": "Red", "hex": "#FF0000", "rgb": [255, 0, 0]}]`

func xzBytes(t *testing.T, data string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w, err := xz.NewWriter(&buf)
	if err != nil {
		t.Fatalf("xz.NewWriter: %v", err)
	}
	if _, err := w.Write([]byte(data)); err != nil {
		t.Fatalf("xz write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("xz close: %v", err)
	}
	return buf.Bytes()
}

func gzipBytes(t *testing.T, data string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	if _, err := w.Write([]byte(data)); err != nil {
		t.Fatalf("gzip write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}
	return buf.Bytes()
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name string
		want Format
	}{
		{"xkcd.json", FormatNone},
		{"xkcd.json.xz", FormatXz},
		{"xkcd.json.gz", FormatGzip},
		{"xkcd.json.bz2", FormatBzip2},
	}

	for _, tt := range tests {
		if got := DetectFormat(tt.name); got != tt.want {
			t.Errorf("DetectFormat(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestReadResource(t *testing.T) {
	fsys := fstest.MapFS{
		"plain.json":       {Data: []byte(payload)},
		"packed.json.xz":   {Data: xzBytes(t, payload)},
		"zipped.json.gz":   {Data: gzipBytes(t, payload)},
		"both.json":        {Data: []byte(payload)},
		"both.json.xz":     {Data: []byte("not xz at all")},
		"corrupt.json.xz":  {Data: []byte("not xz at all")},
		"explicit.json.xz": {Data: xzBytes(t, payload)},
	}

	tests := []struct {
		name       string
		resource   string
		wantPath   string
		wantFormat Format
	}{
		{name: "plain", resource: "plain.json", wantPath: "plain.json", wantFormat: FormatNone},
		{name: "xz fallback", resource: "packed.json", wantPath: "packed.json.xz", wantFormat: FormatXz},
		{name: "gzip fallback", resource: "zipped.json", wantPath: "zipped.json.gz", wantFormat: FormatGzip},
		{name: "plain preferred", resource: "both.json", wantPath: "both.json", wantFormat: FormatNone},
		{name: "explicit suffix", resource: "explicit.json.xz", wantPath: "explicit.json.xz", wantFormat: FormatXz},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := ReadResource(fsys, tt.resource, 0)
			if err != nil {
				t.Fatalf("ReadResource(%q) error: %v", tt.resource, err)
			}
			if res.Path != tt.wantPath {
				t.Errorf("Path = %q, want %q", res.Path, tt.wantPath)
			}
			if res.Format != tt.wantFormat {
				t.Errorf("Format = %q, want %q", res.Format, tt.wantFormat)
			}
			if string(res.Data) != payload {
				t.Errorf("Data = %q, want %q", res.Data, payload)
			}
		})
	}

	t.Run("missing", func(t *testing.T) {
		if _, err := ReadResource(fsys, "absent.json", 0); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("ReadResource(absent) error = %v, want fs.ErrNotExist", err)
		}
	})

	t.Run("corrupt", func(t *testing.T) {
		_, err := ReadResource(fsys, "corrupt.json", 0)
		if err == nil || errors.Is(err, fs.ErrNotExist) {
			t.Errorf("ReadResource(corrupt) error = %v, want decompression error", err)
		}
	})

	t.Run("traversal", func(t *testing.T) {
		if _, err := ReadResource(fsys, "../plain.json", 0); err == nil {
			t.Error("ReadResource(../plain.json) expected error")
		}
	})
}

func TestDecompressLimit(t *testing.T) {
	data := xzBytes(t, payload)

	if _, err := Decompress(data, FormatXz, 10); !errors.Is(err, security.ErrSizeLimitExceeded) {
		t.Errorf("Decompress() with small limit error = %v, want ErrSizeLimitExceeded", err)
	}

	got, err := Decompress(data, FormatXz, int64(len(payload)))
	if err != nil {
		t.Fatalf("Decompress() with exact limit error: %v", err)
	}
	if string(got) != payload {
		t.Errorf("Decompress() = %q, want %q", got, payload)
	}
}
