// Package namer names colours by finding the perceptually closest entry in
// a vocabulary of named colours.
package namer

import (
	"fmt"
	"math"

	"github.com/hashicorp/go-hclog"
	"github.com/jmylchreest/tincture/internal/colour"
	"github.com/jmylchreest/tincture/internal/vocabulary"
)

// Result describes the vocabulary entry chosen for a colour.
type Result struct {
	Name        string     `json:"name"`
	Hex         string     `json:"hex"`
	RGB         colour.RGB `json:"rgb"`
	Distance    float64    `json:"distance"`
	Vocabulary  string     `json:"vocabulary"`
	Family      string     `json:"family"`
	CIName      string     `json:"ci_name,omitempty"`
	Description string     `json:"description,omitempty"`
}

// Pigment describes the closest physical artist pigment to a colour.
type Pigment struct {
	Name        string     `json:"name"`
	CIName      string     `json:"ci_name"`
	Hex         string     `json:"hex"`
	RGB         colour.RGB `json:"rgb"`
	Distance    float64    `json:"distance"`
	Family      string     `json:"family"`
	Description string     `json:"description"`
}

// Options configures a Namer. Zero values select the bundled vocabularies,
// the default key and a discarding logger.
type Options struct {
	Vocabulary string
	Registry   *vocabulary.Registry
	Loader     *vocabulary.Loader
	Logger     hclog.Logger
}

// Namer names colours against a switchable vocabulary.
// A Namer is not safe for concurrent use.
type Namer struct {
	store   *vocabulary.Store
	matcher *Matcher
	logger  hclog.Logger
}

// New creates a namer. It fails only for an unknown vocabulary key; resource
// errors surface on first use.
func New(opts Options) (*Namer, error) {
	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	key := opts.Vocabulary
	if key == "" {
		key = vocabulary.DefaultKey
	}

	store, err := vocabulary.NewStore(opts.Registry, opts.Loader, key, logger.Named("vocabulary"))
	if err != nil {
		return nil, err
	}

	return &Namer{
		store:   store,
		matcher: NewMatcher(),
		logger:  logger,
	}, nil
}

// Matcher exposes the namer's matcher and its Lab cache.
func (n *Namer) Matcher() *Matcher {
	return n.matcher
}

// Name returns the name of the entry closest to c.
func (n *Namer) Name(c colour.RGB) (string, error) {
	match, err := n.match(c)
	if err != nil {
		return "", err
	}
	return match.Entry.Name, nil
}

// Describe returns the entry closest to c with its metadata.
func (n *Namer) Describe(c colour.RGB) (Result, error) {
	match, err := n.match(c)
	if err != nil {
		return Result{}, err
	}
	e := match.Entry
	return Result{
		Name:        e.Name,
		Hex:         e.Hex,
		RGB:         e.RGB,
		Distance:    roundDistance(match.Distance),
		Vocabulary:  n.store.Key(),
		Family:      e.Family,
		CIName:      e.CIName,
		Description: e.Description,
	}, nil
}

// NamePalette names each colour independently.
func (n *Namer) NamePalette(cs []colour.RGB) ([]string, error) {
	names := make([]string, 0, len(cs))
	for i, c := range cs {
		name, err := n.Name(c)
		if err != nil {
			return nil, fmt.Errorf("colour %d: %w", i, err)
		}
		names = append(names, name)
	}
	return names, nil
}

// DescribePalette describes each colour independently.
func (n *Namer) DescribePalette(cs []colour.RGB) ([]Result, error) {
	results := make([]Result, 0, len(cs))
	for i, c := range cs {
		r, err := n.Describe(c)
		if err != nil {
			return nil, fmt.Errorf("colour %d: %w", i, err)
		}
		results = append(results, r)
	}
	return results, nil
}

// ClosestPigment finds the nearest entry carrying a Colour Index name in the
// artist vocabulary, whatever vocabulary is active. The active vocabulary is
// left as it was, including on failure.
func (n *Namer) ClosestPigment(c colour.RGB) (Pigment, error) {
	var p Pigment
	err := n.store.Borrow(vocabulary.PigmentKey, func(v *vocabulary.Vocabulary) error {
		match, err := n.matcher.MatchFiltered(c, v, vocabulary.HasPigment)
		if err != nil {
			return err
		}
		e := match.Entry
		p = Pigment{
			Name:        e.Name,
			CIName:      e.CIName,
			Hex:         e.Hex,
			RGB:         e.RGB,
			Distance:    roundDistance(match.Distance),
			Family:      e.Family,
			Description: e.Description,
		}
		return nil
	})
	if err != nil {
		return Pigment{}, fmt.Errorf("failed to find closest pigment: %w", err)
	}
	n.logger.Debug("closest pigment", "colour", c.Hex(), "pigment", p.Name, "ci_name", p.CIName, "distance", p.Distance)
	return p, nil
}

// SetVocabulary switches the active vocabulary. An unknown key leaves the
// namer unchanged.
func (n *Namer) SetVocabulary(key string) error {
	if err := n.store.Switch(key); err != nil {
		return err
	}
	n.logger.Debug("vocabulary set", "key", key)
	return nil
}

// Vocabulary returns the active vocabulary key.
func (n *Namer) Vocabulary() string {
	return n.store.Key()
}

// AvailableVocabularies returns the selectable keys, excluding aliases.
func (n *Namer) AvailableVocabularies() []string {
	return n.store.Registry().Keys()
}

// VocabularyInfo summarises the active vocabulary, loading it if needed.
func (n *Namer) VocabularyInfo() (vocabulary.Info, error) {
	v, err := n.store.Active()
	if err != nil {
		return vocabulary.Info{}, err
	}
	return v.Info(), nil
}

func (n *Namer) match(c colour.RGB) (Match, error) {
	v, err := n.store.Active()
	if err != nil {
		return Match{}, err
	}
	match, err := n.matcher.Match(c, v)
	if err != nil {
		return Match{}, err
	}
	n.logger.Trace("matched colour", "colour", c.Hex(), "vocabulary", v.Key(), "name", match.Entry.Name, "distance", match.Distance)
	return match, nil
}

func roundDistance(d float64) float64 {
	return math.Round(d*1000) / 1000
}
