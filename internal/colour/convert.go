package colour

import (
	"fmt"
	"math"
)

// HSV is hue in degrees [0, 360) with saturation and value as percentages.
type HSV struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	V float64 `json:"v"`
}

// HSL is hue in degrees [0, 360) with saturation and lightness as percentages.
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// Lab is a CIE L*a*b* colour under D65.
type Lab struct {
	L float64 `json:"l"`
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// D65 reference white.
const (
	whiteX = 0.95047
	whiteY = 1.00000
	whiteZ = 1.08883
)

// labDelta is 6/29, the knee of the CIE L*a*b* transfer function.
const labDelta = 6.0 / 29.0

func unit(c RGB) (r, g, b float64) {
	return float64(c.R) / 255.0, float64(c.G) / 255.0, float64(c.B) / 255.0
}

// hueOf computes the hue in degrees for normalised channels with chroma delta > 0.
func hueOf(r, g, b, maxVal, delta float64) float64 {
	var h float64
	switch maxVal {
	case r:
		h = math.Mod((g-b)/delta, 6)
	case g:
		h = (b-r)/delta + 2
	default:
		h = (r-g)/delta + 4
	}
	return NormaliseHue(h * 60)
}

// RGBToHSV converts RGB to HSV. Achromatic colours have hue and saturation 0.
func RGBToHSV(c RGB) HSV {
	r, g, b := unit(c)
	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	if delta == 0 {
		return HSV{H: 0, S: 0, V: maxVal * 100}
	}
	return HSV{
		H: hueOf(r, g, b, maxVal, delta),
		S: delta / maxVal * 100,
		V: maxVal * 100,
	}
}

// HSVToRGB converts HSV to RGB. Hue is wrapped into [0, 360) and saturation
// and value are clamped to [0, 100].
func HSVToRGB(hsv HSV) RGB {
	h := NormaliseHue(hsv.H)
	s := clampPercent(hsv.S) / 100
	v := clampPercent(hsv.V) / 100

	chroma := v * s
	r, g, b := sector(h, chroma)
	m := v - chroma
	return RGB{R: clampChannel(r + m), G: clampChannel(g + m), B: clampChannel(b + m)}
}

// RGBToHSL converts RGB to HSL.
func RGBToHSL(c RGB) HSL {
	r, g, b := unit(c)
	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal
	l := (maxVal + minVal) / 2

	if delta == 0 {
		return HSL{H: 0, S: 0, L: l * 100}
	}
	return HSL{
		H: hueOf(r, g, b, maxVal, delta),
		S: clampPercent(delta / (1 - math.Abs(2*l-1)) * 100),
		L: l * 100,
	}
}

// HSLToRGB converts HSL to RGB. It fails unless H is in [0, 360] and S and L
// are in [0, 100].
func HSLToRGB(hsl HSL) (RGB, error) {
	if hsl.H < 0 || hsl.H > 360 || hsl.S < 0 || hsl.S > 100 || hsl.L < 0 || hsl.L > 100 {
		return RGB{}, fmt.Errorf("%w: H must be 0-360, S and L must be 0-100 (got %.2f, %.2f, %.2f)", ErrInvalidColour, hsl.H, hsl.S, hsl.L)
	}

	s := hsl.S / 100
	l := hsl.L / 100
	chroma := (1 - math.Abs(2*l-1)) * s
	r, g, b := sector(NormaliseHue(hsl.H), chroma)
	m := l - chroma/2
	return RGB{R: clampChannel(r + m), G: clampChannel(g + m), B: clampChannel(b + m)}, nil
}

// sector places chroma on the hexagonal hue model; h must be in [0, 360).
func sector(h, chroma float64) (r, g, b float64) {
	x := chroma * (1 - math.Abs(math.Mod(h/60, 2)-1))
	switch {
	case h < 60:
		return chroma, x, 0
	case h < 120:
		return x, chroma, 0
	case h < 180:
		return 0, chroma, x
	case h < 240:
		return 0, x, chroma
	case h < 300:
		return x, 0, chroma
	default:
		return chroma, 0, x
	}
}

func clampPercent(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}

// linearise decodes an sRGB channel to linear light.
func linearise(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

func labF(t float64) float64 {
	if t > labDelta*labDelta*labDelta {
		return math.Cbrt(t)
	}
	return t/(3*labDelta*labDelta) + 4.0/29.0
}

// RGBToLab converts sRGB to CIE L*a*b* using the D65 illuminant and the 2°
// standard observer.
func RGBToLab(c RGB) Lab {
	r, g, b := unit(c)
	r, g, b = linearise(r), linearise(g), linearise(b)

	x := r*0.4124564 + g*0.3575761 + b*0.1804375
	y := r*0.2126729 + g*0.7151522 + b*0.0721750
	z := r*0.0193339 + g*0.1191920 + b*0.9503041

	fx := labF(x / whiteX)
	fy := labF(y / whiteY)
	fz := labF(z / whiteZ)

	return Lab{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}
