package colour

import (
	"fmt"
	"strings"
)

// Palette is an ordered sequence of colours.
type Palette []RGB

// ParsePalette parses each argument with ParseColour. The first malformed
// colour aborts parsing.
func ParsePalette(args []string) (Palette, error) {
	p := make(Palette, 0, len(args))
	for i, a := range args {
		c, err := ParseColour(a)
		if err != nil {
			return nil, fmt.Errorf("colour %d: %w", i+1, err)
		}
		p = append(p, c)
	}
	return p, nil
}

// Len returns the number of colours in the palette.
func (p Palette) Len() int {
	return len(p)
}

// Hex converts the palette colours to hex strings.
func (p Palette) Hex() []string {
	out := make([]string, len(p))
	for i, c := range p {
		out[i] = c.Hex()
	}
	return out
}

// Hues returns the HSV hue of every colour, in palette order.
func (p Palette) Hues() []float64 {
	out := make([]float64, len(p))
	for i, c := range p {
		out[i] = RGBToHSV(c).H
	}
	return out
}

// String returns a human-readable string representation of the palette.
func (p Palette) String() string {
	if len(p) == 0 {
		return "Empty palette"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Palette with %d colours:\n", len(p))
	for i, c := range p {
		fmt.Fprintf(&b, "  %2d: %s (%s)\n", i+1, c.Hex(), c.String())
	}
	return b.String()
}
