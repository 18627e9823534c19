package vocabulary

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	"github.com/jmylchreest/tincture/internal/colour"
	"github.com/ulikunitz/xz"
)

const sampleJSON = `[
  {"name": "Red", "hex": "#ff0000", "rgb": [255, 0, 0], "family": "Red", "ci_name": "PR254"},
  {"name": "Blue", "hex": "#0000FF", "rgb": [0, 0, 255], "description": "Primary blue"}
]`

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()

	wantKeys := []string{"artist", "resene", "natural", "xkcd", "css"}
	if diff := cmp.Diff(wantKeys, r.Keys()); diff != "" {
		t.Errorf("Keys() mismatch (-want +got):\n%s", diff)
	}
	if !r.Has(KeyWerner) {
		t.Error("Has(werner) = false, want true")
	}

	natural, err := r.Resolve(KeyNatural)
	if err != nil {
		t.Fatalf("Resolve(natural) error: %v", err)
	}
	werner, err := r.Resolve(KeyWerner)
	if err != nil {
		t.Fatalf("Resolve(werner) error: %v", err)
	}
	if natural.Resource != werner.Resource {
		t.Errorf("natural resource %q != werner resource %q", natural.Resource, werner.Resource)
	}
	if !werner.IsAlias() || natural.IsAlias() {
		t.Errorf("IsAlias: werner=%v natural=%v, want true/false", werner.IsAlias(), natural.IsAlias())
	}

	if _, err := r.Resolve("pantone"); !errors.Is(err, ErrUnknownVocabulary) {
		t.Errorf("Resolve(pantone) error = %v, want ErrUnknownVocabulary", err)
	}
}

func TestNewRegistryRejectsBadDefinitions(t *testing.T) {
	tests := []struct {
		name string
		defs []Definition
	}{
		{name: "empty key", defs: []Definition{{Resource: "a.json"}}},
		{name: "empty resource", defs: []Definition{{Key: "a"}}},
		{name: "duplicate", defs: []Definition{{Key: "a", Resource: "a.json"}, {Key: "a", Resource: "b.json"}}},
		{name: "dangling alias", defs: []Definition{{Key: "b", Resource: "a.json", AliasOf: "a"}}},
		{name: "alias resource mismatch", defs: []Definition{{Key: "a", Resource: "a.json"}, {Key: "b", Resource: "b.json", AliasOf: "a"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewRegistry(tt.defs...); err == nil {
				t.Error("NewRegistry() expected error")
			}
		})
	}
}

func TestBundledVocabulariesLoad(t *testing.T) {
	loader := NewLoader(nil, nil)
	r := DefaultRegistry()

	for _, key := range r.AllKeys() {
		t.Run(key, func(t *testing.T) {
			def, _ := r.Resolve(key)
			v, err := loader.Load(def)
			if err != nil {
				t.Fatalf("Load(%s) error: %v", key, err)
			}
			if v.Len() == 0 {
				t.Fatalf("Load(%s) returned no entries", key)
			}
			if v.Key() != key {
				t.Errorf("Key() = %q, want %q", v.Key(), key)
			}
			for _, e := range v.Entries() {
				if e.Name == "" || e.Family == "" {
					t.Errorf("entry %+v missing name or family", e)
				}
				if e.Hex != e.RGB.Hex() {
					t.Errorf("entry %s hex %s disagrees with rgb %s", e.Name, e.Hex, e.RGB.Hex())
				}
			}
		})
	}
}

func TestLoaderDecodesRecords(t *testing.T) {
	loader := NewLoader(fstest.MapFS{"sample.json": {Data: []byte(sampleJSON)}}, nil)

	v, err := loader.Load(Definition{Key: "sample", Resource: "sample.json"})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	want := []Entry{
		{Name: "Red", Hex: "#FF0000", RGB: colour.RGB{R: 255}, Family: "Red", CIName: "PR254"},
		{Name: "Blue", Hex: "#0000FF", RGB: colour.RGB{B: 255}, Family: UnknownFamily, Description: "Primary blue"},
	}
	if diff := cmp.Diff(want, v.Entries()); diff != "" {
		t.Errorf("Entries() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoaderErrors(t *testing.T) {
	fsys := fstest.MapFS{
		"broken.json":       {Data: []byte(`[{"name": "Red", "hex": "#FF0000"`)},
		"object.json":       {Data: []byte(`{"name": "Red"}`)},
		"no-rgb.json":       {Data: []byte(`[{"name": "Red", "hex": "#FF0000"}]`)},
		"no-hex.json":       {Data: []byte(`[{"name": "Red", "rgb": [255, 0, 0]}]`)},
		"no-name.json":      {Data: []byte(`[{"hex": "#FF0000", "rgb": [255, 0, 0]}]`)},
		"bad-hex.json":      {Data: []byte(`[{"name": "Red", "hex": "#FF00", "rgb": [255, 0, 0]}]`)},
		"out-of-gamut.json": {Data: []byte(`[{"name": "Red", "hex": "#FF0000", "rgb": [256, 0, 0]}]`)},
	}
	loader := NewLoader(fsys, nil)

	tests := []struct {
		resource string
		want     error
	}{
		{"missing.json", ErrResourceNotFound},
		{"broken.json", ErrResourceParse},
		{"object.json", ErrResourceParse},
		{"no-rgb.json", ErrResourceParse},
		{"no-hex.json", ErrResourceParse},
		{"no-name.json", ErrResourceParse},
		{"bad-hex.json", ErrResourceParse},
		{"out-of-gamut.json", ErrResourceParse},
		{"builtin:nope", ErrResourceNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.resource, func(t *testing.T) {
			_, err := loader.Load(Definition{Key: "test", Resource: tt.resource})
			if !errors.Is(err, tt.want) {
				t.Errorf("Load(%s) error = %v, want %v", tt.resource, err, tt.want)
			}
		})
	}
}

func TestLoaderReadsCompressedDataDir(t *testing.T) {
	dir := t.TempDir()

	var buf bytes.Buffer
	w, err := xz.NewWriter(&buf)
	if err != nil {
		t.Fatalf("xz.NewWriter: %v", err)
	}
	if _, err := w.Write([]byte(sampleJSON)); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "packed.json.xz"), buf.Bytes(), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "plain.json"), []byte(sampleJSON), 0o600); err != nil {
		t.Fatal(err)
	}

	loader := NewLoader(os.DirFS(dir), nil)
	packed, err := loader.Load(Definition{Key: "packed", Resource: "packed.json"})
	if err != nil {
		t.Fatalf("Load(packed) error: %v", err)
	}
	plain, err := loader.Load(Definition{Key: "plain", Resource: "plain.json"})
	if err != nil {
		t.Fatalf("Load(plain) error: %v", err)
	}
	if diff := cmp.Diff(plain.Entries(), packed.Entries()); diff != "" {
		t.Errorf("compressed entries differ from plain (-plain +packed):\n%s", diff)
	}
}

func TestCSSVocabulary(t *testing.T) {
	v, err := NewLoader(nil, nil).Load(Definition{Key: KeyCSS, Resource: "builtin:css"})
	if err != nil {
		t.Fatalf("Load(css) error: %v", err)
	}

	found := false
	for _, e := range v.All() {
		if e.Name == "red" {
			found = true
			if e.RGB != (colour.RGB{R: 255}) {
				t.Errorf("red RGB = %v, want rgb(255, 0, 0)", e.RGB)
			}
			if e.Family != "Red" {
				t.Errorf("red Family = %q, want Red", e.Family)
			}
		}
	}
	if !found {
		t.Error("css vocabulary has no entry named red")
	}
}

func TestVocabularyFilterAndInfo(t *testing.T) {
	v := New("sample", "sample.json", []Entry{
		{Name: "A", Family: "Red", CIName: "PR1"},
		{Name: "B", Family: "Red"},
		{Name: "C", Family: "Blue", CIName: "PB1"},
	})

	pigments := v.Filter(HasPigment)
	if pigments.Len() != 2 || pigments.Entry(0).Name != "A" || pigments.Entry(1).Name != "C" {
		t.Errorf("Filter(HasPigment) = %+v, want A and C in order", pigments.Entries())
	}
	if v.Len() != 3 {
		t.Errorf("Filter modified receiver: Len() = %d, want 3", v.Len())
	}

	want := Info{
		Name:     "sample",
		Count:    3,
		Families: map[string]int{"Red": 2, "Blue": 1},
		CINames:  2,
		Resource: "sample.json",
	}
	if diff := cmp.Diff(want, v.Info()); diff != "" {
		t.Errorf("Info() mismatch (-want +got):\n%s", diff)
	}

	entries := v.Entries()
	entries[0].Name = "mutated"
	if v.Entry(0).Name != "A" {
		t.Error("Entries() exposed the backing slice")
	}
}

func TestVocabularyAllStopsEarly(t *testing.T) {
	v := New("sample", "sample.json", []Entry{{Name: "A"}, {Name: "B"}, {Name: "C"}})
	var seen []string
	for _, e := range v.All() {
		seen = append(seen, e.Name)
		if len(seen) == 2 {
			break
		}
	}
	if diff := cmp.Diff([]string{"A", "B"}, seen); diff != "" {
		t.Errorf("All() with break mismatch (-want +got):\n%s", diff)
	}
}
