package harmony

import (
	"github.com/jmylchreest/tincture/internal/colour"
)

// Profile aggregates every harmony found in a palette.
type Profile struct {
	Complementary      []Set        `json:"complementary_pairs"`
	Triadic            []Set        `json:"triadic_sets"`
	Analogous          []Set        `json:"analogous_groups"`
	SplitComplementary []Set        `json:"split_complementary_sets"`
	Tetradic           []Set        `json:"tetradic_sets"`
	Counts             map[Kind]int `json:"harmony_counts"`
	Total              int          `json:"total_harmonies"`
	Score              float64      `json:"harmony_score"`
	Dominant           Kind         `json:"dominant_harmony"`
}

// Sets returns the sets found for kind.
func (p Profile) Sets(kind Kind) []Set {
	switch kind {
	case KindComplementary:
		return p.Complementary
	case KindTriadic:
		return p.Triadic
	case KindAnalogous:
		return p.Analogous
	case KindSplitComplementary:
		return p.SplitComplementary
	case KindTetradic:
		return p.Tetradic
	default:
		return nil
	}
}

// Analyze runs every detector over p.
//
// The dominant kind is the one found most often, with ties going to the
// earlier kind in Kinds, or KindNone when nothing was found. The score is the
// number of harmonies found divided by the number of colour pairs, capped at
// 1; palettes with fewer than two colours score 0.
func (d *Detector) Analyze(p colour.Palette) Profile {
	profile := Profile{
		Complementary:      d.Complementary(p),
		Triadic:            d.Triadic(p),
		Analogous:          d.Analogous(p),
		SplitComplementary: d.SplitComplementary(p),
		Tetradic:           d.Tetradic(p),
		Counts:             make(map[Kind]int, len(Kinds)),
		Dominant:           KindNone,
	}

	best := 0
	for _, kind := range Kinds {
		n := len(profile.Sets(kind))
		profile.Counts[kind] = n
		profile.Total += n
		if n > best {
			best = n
			profile.Dominant = kind
		}
	}

	if pairs := len(p) * (len(p) - 1) / 2; pairs > 0 {
		profile.Score = min(1, float64(profile.Total)/float64(pairs))
	}
	return profile
}
