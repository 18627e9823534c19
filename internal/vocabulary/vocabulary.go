package vocabulary

import (
	"github.com/jmylchreest/tincture/internal/colour"
)

// UnknownFamily is assigned to entries whose resource omits a family.
const UnknownFamily = "Unknown"

// Entry is a named colour. Entries are values; a Vocabulary never hands out
// references into its backing slice.
type Entry struct {
	Name        string     `json:"name"`
	Hex         string     `json:"hex"`
	RGB         colour.RGB `json:"rgb"`
	Family      string     `json:"family"`
	CIName      string     `json:"ci_name,omitempty"`
	Description string     `json:"description,omitempty"`
}

// HasPigment reports whether the entry carries a Colour Index name.
func HasPigment(e Entry) bool {
	return e.CIName != ""
}

// Vocabulary is an immutable, ordered collection of entries.
type Vocabulary struct {
	key      string
	resource string
	entries  []Entry
}

// New builds a vocabulary from a copy of entries.
func New(key, resource string, entries []Entry) *Vocabulary {
	return &Vocabulary{
		key:      key,
		resource: resource,
		entries:  append([]Entry(nil), entries...),
	}
}

// Key returns the vocabulary key the collection was loaded for.
func (v *Vocabulary) Key() string { return v.key }

// Resource returns the name of the backing resource.
func (v *Vocabulary) Resource() string { return v.resource }

// Len returns the number of entries.
func (v *Vocabulary) Len() int { return len(v.entries) }

// Entry returns the i-th entry.
func (v *Vocabulary) Entry(i int) Entry { return v.entries[i] }

// Entries returns a copy of all entries in vocabulary order.
func (v *Vocabulary) Entries() []Entry {
	return append([]Entry(nil), v.entries...)
}

// All returns an iterator over the entries in vocabulary order.
func (v *Vocabulary) All() func(func(int, Entry) bool) {
	return func(yield func(int, Entry) bool) {
		for i, e := range v.entries {
			if !yield(i, e) {
				return
			}
		}
	}
}

// Filter returns a new vocabulary holding the entries that satisfy keep, in
// their original order. The receiver is not modified.
func (v *Vocabulary) Filter(keep func(Entry) bool) *Vocabulary {
	out := &Vocabulary{key: v.key, resource: v.resource}
	for _, e := range v.entries {
		if keep(e) {
			out.entries = append(out.entries, e)
		}
	}
	return out
}

// Info summarises a vocabulary.
type Info struct {
	Name     string         `json:"name"`
	Count    int            `json:"count"`
	Families map[string]int `json:"families"`
	CINames  int            `json:"ci_names"`
	Resource string         `json:"file"`
}

// Info counts entries per family and entries carrying a CI name.
func (v *Vocabulary) Info() Info {
	info := Info{
		Name:     v.key,
		Count:    len(v.entries),
		Families: make(map[string]int),
		Resource: v.resource,
	}
	for _, e := range v.entries {
		info.Families[e.Family]++
		if HasPigment(e) {
			info.CINames++
		}
	}
	return info
}
