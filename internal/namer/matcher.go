package namer

import (
	"errors"
	"fmt"

	"github.com/jmylchreest/tincture/internal/colour"
	"github.com/jmylchreest/tincture/internal/vocabulary"
)

var (
	// ErrEmptyInput is returned when a search has no entries to consider.
	ErrEmptyInput = errors.New("empty input")

	// ErrNoQualifyingEntries is returned when a filtered search excludes every entry.
	ErrNoQualifyingEntries = fmt.Errorf("%w: no qualifying entries", ErrEmptyInput)
)

// Match is the outcome of a nearest-colour search.
type Match struct {
	Entry vocabulary.Entry
	// Index is the entry's position in the searched vocabulary.
	Index    int
	Distance float64
}

// Matcher finds the perceptually nearest vocabulary entry using CIEDE2000.
//
// Lab conversions are memoised per RGB value for the lifetime of the
// matcher. The cache does not depend on the vocabulary, so it stays valid
// across vocabulary switches. It is unbounded; callers naming unbounded
// colour streams should create a fresh Matcher periodically. A Matcher is not
// safe for concurrent use.
type Matcher struct {
	labs map[colour.RGB]colour.Lab
}

// NewMatcher creates a matcher with an empty Lab cache.
func NewMatcher() *Matcher {
	return &Matcher{labs: make(map[colour.RGB]colour.Lab)}
}

// Lab returns the memoised Lab value of c.
func (m *Matcher) Lab(c colour.RGB) colour.Lab {
	if lab, ok := m.labs[c]; ok {
		return lab
	}
	lab := colour.RGBToLab(c)
	m.labs[c] = lab
	return lab
}

// CacheSize returns the number of memoised Lab conversions.
func (m *Matcher) CacheSize() int {
	return len(m.labs)
}

// Distance returns the CIEDE2000 difference between a and b.
func (m *Matcher) Distance(a, b colour.RGB) float64 {
	return colour.CIEDE2000(m.Lab(a), m.Lab(b))
}

// Match returns the entry of v nearest to c. Entries are scanned in
// vocabulary order and a later entry must be strictly closer to replace the
// current best, so ties resolve to the earliest entry.
func (m *Matcher) Match(c colour.RGB, v *vocabulary.Vocabulary) (Match, error) {
	if v.Len() == 0 {
		return Match{}, fmt.Errorf("%w: vocabulary %q has no entries", ErrEmptyInput, v.Key())
	}
	best, _ := m.scan(c, v, nil)
	return best, nil
}

// MatchFiltered is Match restricted to entries for which keep returns true.
func (m *Matcher) MatchFiltered(c colour.RGB, v *vocabulary.Vocabulary, keep func(vocabulary.Entry) bool) (Match, error) {
	best, found := m.scan(c, v, keep)
	if !found {
		return Match{}, fmt.Errorf("%w in vocabulary %q", ErrNoQualifyingEntries, v.Key())
	}
	return best, nil
}

// MatchMany matches each colour independently. The first failure aborts.
func (m *Matcher) MatchMany(cs []colour.RGB, v *vocabulary.Vocabulary) ([]Match, error) {
	matches := make([]Match, 0, len(cs))
	for i, c := range cs {
		match, err := m.Match(c, v)
		if err != nil {
			return nil, fmt.Errorf("colour %d: %w", i, err)
		}
		matches = append(matches, match)
	}
	return matches, nil
}

func (m *Matcher) scan(c colour.RGB, v *vocabulary.Vocabulary, keep func(vocabulary.Entry) bool) (Match, bool) {
	target := m.Lab(c)

	var (
		best  Match
		found bool
	)
	for i, e := range v.All() {
		if keep != nil && !keep(e) {
			continue
		}
		d := colour.CIEDE2000(target, m.Lab(e.RGB))
		if !found || d < best.Distance {
			best = Match{Entry: e, Index: i, Distance: d}
			found = true
		}
	}
	return best, found
}
