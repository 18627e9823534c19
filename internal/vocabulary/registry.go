// Package vocabulary loads named colour collections and tracks which one is
// active.
//
// A vocabulary key (e.g. "artist", "xkcd") maps to a backing resource through
// an immutable Registry. Several keys may share one resource; "werner" is an
// alias of "natural". Resources are JSON arrays of records read from an fs.FS,
// optionally xz-compressed, or built-in tables such as "css".
package vocabulary

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownVocabulary is returned for a key the registry does not know.
	ErrUnknownVocabulary = errors.New("unknown vocabulary")

	// ErrResourceNotFound is returned when a vocabulary's backing resource is absent.
	ErrResourceNotFound = errors.New("vocabulary resource not found")

	// ErrResourceParse is returned when a vocabulary's backing resource is malformed.
	ErrResourceParse = errors.New("malformed vocabulary resource")
)

// Well-known vocabulary keys.
const (
	KeyArtist  = "artist"
	KeyResene  = "resene"
	KeyNatural = "natural"
	KeyWerner  = "werner"
	KeyXKCD    = "xkcd"
	KeyCSS     = "css"

	// DefaultKey is the vocabulary selected when none is configured.
	DefaultKey = KeyArtist

	// PigmentKey is the vocabulary searched for physical pigments.
	PigmentKey = KeyArtist
)

// builtinPrefix marks resources generated in-process rather than read from disk.
const builtinPrefix = "builtin:"

// Definition binds a vocabulary key to its backing resource.
type Definition struct {
	Key      string
	Resource string
	// AliasOf names the canonical key when this key is an alias.
	AliasOf string
}

// IsAlias reports whether the definition is an alias of another key.
func (d Definition) IsAlias() bool {
	return d.AliasOf != ""
}

// IsBuiltin reports whether the resource is generated in-process.
func (d Definition) IsBuiltin() bool {
	return strings.HasPrefix(d.Resource, builtinPrefix)
}

// Registry is an immutable, ordered table of vocabulary definitions.
type Registry struct {
	defs  []Definition
	index map[string]int
}

// NewRegistry builds a registry. Keys must be unique and aliases must refer
// to a key defined earlier with the same resource.
func NewRegistry(defs ...Definition) (*Registry, error) {
	r := &Registry{
		defs:  make([]Definition, 0, len(defs)),
		index: make(map[string]int, len(defs)),
	}
	for _, d := range defs {
		if d.Key == "" || d.Resource == "" {
			return nil, fmt.Errorf("vocabulary definition requires key and resource: %+v", d)
		}
		if _, dup := r.index[d.Key]; dup {
			return nil, fmt.Errorf("duplicate vocabulary key %q", d.Key)
		}
		if d.IsAlias() {
			target, ok := r.index[d.AliasOf]
			if !ok {
				return nil, fmt.Errorf("alias %q refers to undefined vocabulary %q", d.Key, d.AliasOf)
			}
			if r.defs[target].Resource != d.Resource {
				return nil, fmt.Errorf("alias %q must share resource %q", d.Key, r.defs[target].Resource)
			}
		}
		r.index[d.Key] = len(r.defs)
		r.defs = append(r.defs, d)
	}
	return r, nil
}

var defaultRegistry = mustRegistry(
	Definition{Key: KeyArtist, Resource: "artist_pigments.json"},
	Definition{Key: KeyResene, Resource: "resene.json"},
	Definition{Key: KeyNatural, Resource: "werner.json"},
	Definition{Key: KeyWerner, Resource: "werner.json", AliasOf: KeyNatural},
	Definition{Key: KeyXKCD, Resource: "xkcd.json"},
	Definition{Key: KeyCSS, Resource: builtinPrefix + "css"},
)

func mustRegistry(defs ...Definition) *Registry {
	r, err := NewRegistry(defs...)
	if err != nil {
		panic(err)
	}
	return r
}

// DefaultRegistry returns the process-wide registry of bundled vocabularies.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Resolve looks up a key.
func (r *Registry) Resolve(key string) (Definition, error) {
	i, ok := r.index[key]
	if !ok {
		return Definition{}, fmt.Errorf("%w %q (available vocabularies: %s)", ErrUnknownVocabulary, key, strings.Join(r.AllKeys(), ", "))
	}
	return r.defs[i], nil
}

// Has reports whether key is registered.
func (r *Registry) Has(key string) bool {
	_, ok := r.index[key]
	return ok
}

// Keys returns the canonical keys in registration order, excluding aliases.
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.defs))
	for _, d := range r.defs {
		if !d.IsAlias() {
			keys = append(keys, d.Key)
		}
	}
	return keys
}

// AllKeys returns every registered key, aliases included.
func (r *Registry) AllKeys() []string {
	keys := make([]string, len(r.defs))
	for i, d := range r.defs {
		keys[i] = d.Key
	}
	return keys
}
