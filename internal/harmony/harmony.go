// Package harmony detects geometric hue relationships within a palette.
//
// All detectors work on the HSV hue of each colour and compare hues with
// the shortest arc around the colour wheel. Searches are exhaustive over the
// palette: complementary pairs are O(n²), triads and split-complementary
// sets O(n³) and tetrads O(n⁴). Palettes beyond a few dozen colours should
// be reduced before analysis.
package harmony

import (
	"slices"

	"github.com/jmylchreest/tincture/internal/colour"
)

// Kind names a harmony relationship.
type Kind string

const (
	KindComplementary      Kind = "complementary"
	KindTriadic            Kind = "triadic"
	KindAnalogous          Kind = "analogous"
	KindSplitComplementary Kind = "split_complementary"
	KindTetradic           Kind = "tetradic"

	// KindNone is the dominant kind of a palette with no harmonies.
	KindNone Kind = "none"
)

// Kinds lists every harmony kind in precedence order. When two kinds are
// found equally often the earlier one is dominant.
var Kinds = []Kind{
	KindComplementary,
	KindTriadic,
	KindAnalogous,
	KindSplitComplementary,
	KindTetradic,
}

const (
	// DefaultTolerance is the allowed deviation, in degrees, from an ideal angle.
	DefaultTolerance = 30.0

	// DefaultMaxHueRange is the widest hue span of an analogous group.
	DefaultMaxHueRange = 60.0

	// splitOffset is the distance of each split-complementary arm from the complement.
	splitOffset = 30.0
)

// Set is a group of colours satisfying one harmony relationship.
type Set struct {
	Kind    Kind         `json:"kind"`
	Colours []colour.RGB `json:"colours"`
}

// Option configures a Detector.
type Option func(*Detector)

// WithTolerance sets the angular tolerance used by the complementary,
// triadic, split-complementary and tetradic detectors.
func WithTolerance(degrees float64) Option {
	return func(d *Detector) {
		d.tolerance = degrees
	}
}

// WithMaxHueRange sets the widest hue span of an analogous group.
func WithMaxHueRange(degrees float64) Option {
	return func(d *Detector) {
		d.maxHueRange = degrees
	}
}

// Detector finds harmony sets in palettes. It holds no mutable state and is
// safe for concurrent use.
type Detector struct {
	tolerance   float64
	maxHueRange float64
}

// NewDetector creates a detector with the default tolerances.
func NewDetector(opts ...Option) *Detector {
	d := &Detector{
		tolerance:   DefaultTolerance,
		maxHueRange: DefaultMaxHueRange,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Tolerance returns the angular tolerance in degrees.
func (d *Detector) Tolerance() float64 { return d.tolerance }

// MaxHueRange returns the analogous group span in degrees.
func (d *Detector) MaxHueRange() float64 { return d.maxHueRange }

// near reports whether gap is within tolerance of target degrees.
func (d *Detector) near(gap, target float64) bool {
	diff := gap - target
	if diff < 0 {
		diff = -diff
	}
	return diff <= d.tolerance
}

// Complementary returns every pair of colours whose hues are roughly
// opposite. Pairs are reported in palette order.
func (d *Detector) Complementary(p colour.Palette) []Set {
	hues := p.Hues()
	var sets []Set
	for i := range p {
		for j := i + 1; j < len(p); j++ {
			if d.near(colour.HueDistance(hues[i], hues[j]), 180) {
				sets = append(sets, newSet(KindComplementary, p[i], p[j]))
			}
		}
	}
	return sets
}

// Triadic returns every triple of colours whose three pairwise hue gaps are
// all close to 120 degrees.
func (d *Detector) Triadic(p colour.Palette) []Set {
	hues := p.Hues()
	var sets []Set
	for i := range p {
		for j := i + 1; j < len(p); j++ {
			if !d.near(colour.HueDistance(hues[i], hues[j]), 120) {
				continue
			}
			for k := j + 1; k < len(p); k++ {
				if d.near(colour.HueDistance(hues[j], hues[k]), 120) &&
					d.near(colour.HueDistance(hues[k], hues[i]), 120) {
					sets = append(sets, newSet(KindTriadic, p[i], p[j], p[k]))
				}
			}
		}
	}
	return sets
}

// Analogous groups colours of neighbouring hue. Colours are stably sorted by
// hue and gathered greedily: a colour joins the open group while its hue is
// within the maximum range of the group's first hue, otherwise it starts a
// new group. Only groups of two or more colours are returned.
func (d *Detector) Analogous(p colour.Palette) []Set {
	if len(p) < 2 {
		return nil
	}

	hues := p.Hues()
	order := make([]int, len(p))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		switch {
		case hues[a] < hues[b]:
			return -1
		case hues[a] > hues[b]:
			return 1
		default:
			return 0
		}
	})

	var sets []Set
	group := []colour.RGB{p[order[0]]}
	base := hues[order[0]]
	for _, idx := range order[1:] {
		if colour.HueDistance(hues[idx], base) <= d.maxHueRange {
			group = append(group, p[idx])
			continue
		}
		if len(group) >= 2 {
			sets = append(sets, newSet(KindAnalogous, group...))
		}
		group = []colour.RGB{p[idx]}
		base = hues[idx]
	}
	if len(group) >= 2 {
		sets = append(sets, newSet(KindAnalogous, group...))
	}
	return sets
}

// SplitComplementary returns (base, minus, plus) triples where minus and plus
// sit near the two hues 30 degrees either side of the base's complement.
// Every combination of candidates is reported, except pairs whose two arms
// are the same colour value.
func (d *Detector) SplitComplementary(p colour.Palette) []Set {
	hues := p.Hues()
	var sets []Set
	for i, base := range p {
		complement := colour.NormaliseHue(hues[i] + 180)
		minusHue := colour.NormaliseHue(complement - splitOffset)
		plusHue := colour.NormaliseHue(complement + splitOffset)

		var minus, plus []int
		for j := range p {
			if j == i {
				continue
			}
			if colour.HueDistance(hues[j], minusHue) <= d.tolerance {
				minus = append(minus, j)
			}
			if colour.HueDistance(hues[j], plusHue) <= d.tolerance {
				plus = append(plus, j)
			}
		}

		for _, a := range minus {
			for _, b := range plus {
				if p[a] != p[b] {
					sets = append(sets, newSet(KindSplitComplementary, base, p[a], p[b]))
				}
			}
		}
	}
	return sets
}

// Tetradic returns every four colours forming a rectangle on the colour
// wheel: of the four gaps between their sorted hues, the two smallest are
// within tolerance of each other and so are the two largest.
func (d *Detector) Tetradic(p colour.Palette) []Set {
	if len(p) < 4 {
		return nil
	}

	hues := p.Hues()
	var sets []Set
	for i := range p {
		for j := i + 1; j < len(p); j++ {
			for k := j + 1; k < len(p); k++ {
				for l := k + 1; l < len(p); l++ {
					if d.isRectangle(hues[i], hues[j], hues[k], hues[l]) {
						sets = append(sets, newSet(KindTetradic, p[i], p[j], p[k], p[l]))
					}
				}
			}
		}
	}
	return sets
}

func (d *Detector) isRectangle(h1, h2, h3, h4 float64) bool {
	h := []float64{h1, h2, h3, h4}
	slices.Sort(h)
	gaps := []float64{
		h[1] - h[0],
		h[2] - h[1],
		h[3] - h[2],
		h[0] + 360 - h[3],
	}
	slices.Sort(gaps)
	return gaps[1]-gaps[0] <= d.tolerance && gaps[3]-gaps[2] <= d.tolerance
}

func newSet(kind Kind, colours ...colour.RGB) Set {
	return Set{Kind: kind, Colours: slices.Clone(colours)}
}
