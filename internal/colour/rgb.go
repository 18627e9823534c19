// Package colour provides colour values, colour space conversion and
// perceptual colour difference.
package colour

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidColour is returned for malformed RGB, hex or HSL input.
var ErrInvalidColour = errors.New("invalid colour")

// RGB represents an 8-bit sRGB colour. It is a comparable value type and can
// be used as a map key.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

// NewRGB builds an RGB colour from integer components, each of which must lie
// in [0, 255].
func NewRGB(r, g, b int) (RGB, error) {
	for _, v := range [3]int{r, g, b} {
		if v < 0 || v > 255 {
			return RGB{}, fmt.Errorf("%w: component %d out of range 0-255 in (%d, %d, %d)", ErrInvalidColour, v, r, g, b)
		}
	}
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

// String returns the RGB color as a string in the format "rgb(r, g, b)".
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Hex returns the colour as an upper-case hex string (e.g. "#FF5733").
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Array returns the components as integers.
func (c RGB) Array() [3]int {
	return [3]int{int(c.R), int(c.G), int(c.B)}
}

// RGBA converts the colour to an opaque color.RGBA.
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// MarshalJSON encodes the colour as a three element array.
func (c RGB) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Array())
}

// UnmarshalJSON decodes a three element array of integers in [0, 255].
func (c *RGB) UnmarshalJSON(data []byte) error {
	var raw []json.Number
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: rgb must be an array of 3 integers: %w", ErrInvalidColour, err)
	}
	if len(raw) != 3 {
		return fmt.Errorf("%w: rgb must have 3 components, got %d", ErrInvalidColour, len(raw))
	}

	var vals [3]int
	for i, n := range raw {
		v, err := strconv.Atoi(n.String())
		if err != nil {
			return fmt.Errorf("%w: rgb component %q is not an integer", ErrInvalidColour, n.String())
		}
		vals[i] = v
	}

	parsed, err := NewRGB(vals[0], vals[1], vals[2])
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ToRGB converts a color.Color to RGB.
func ToRGB(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	// RGBA returns values in the range [0, 65535], convert to [0, 255]
	return RGB{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
	}
}

// ParseHex parses a hex colour of exactly six hex digits, optionally prefixed
// with '#'. Parsing is case-insensitive.
func ParseHex(s string) (RGB, error) {
	digits := strings.TrimPrefix(s, "#")
	if len(digits) != 6 {
		return RGB{}, fmt.Errorf("%w: hex colour must be 6 characters (got %d): %q", ErrInvalidColour, len(digits), s)
	}

	b, err := hex.DecodeString(digits)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: invalid hex colour format: %q", ErrInvalidColour, s)
	}
	return RGB{R: b[0], G: b[1], B: b[2]}, nil
}

// ParseRGB parses "r,g,b" or "rgb(r, g, b)". Components must be integers.
func ParseRGB(s string) (RGB, error) {
	body := strings.TrimSpace(s)
	if strings.HasPrefix(strings.ToLower(body), "rgb(") && strings.HasSuffix(body, ")") {
		body = body[4 : len(body)-1]
	}

	parts := strings.Split(body, ",")
	if len(parts) != 3 {
		return RGB{}, fmt.Errorf("%w: expected 3 comma separated components: %q", ErrInvalidColour, s)
	}

	var vals [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return RGB{}, fmt.Errorf("%w: component %q is not an integer", ErrInvalidColour, strings.TrimSpace(p))
		}
		vals[i] = v
	}
	return NewRGB(vals[0], vals[1], vals[2])
}

// ParseColour accepts either a hex colour or an "r,g,b" triple.
func ParseColour(s string) (RGB, error) {
	if strings.Contains(s, ",") {
		return ParseRGB(s)
	}
	return ParseHex(strings.TrimSpace(s))
}

// clampChannel rounds a [0, 1] channel to the nearest 8-bit value.
func clampChannel(v float64) uint8 {
	n := math.Round(v * 255)
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return uint8(n)
}
