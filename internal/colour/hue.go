package colour

import "math"

// NormaliseHue wraps a hue angle into [0, 360).
func NormaliseHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h = 0
	}
	return h
}

// HueDistance calculates the angular distance between two hues on the color wheel.
// Returns a value between 0 and 180 degrees (shortest path around the wheel).
func HueDistance(h1, h2 float64) float64 {
	diff := math.Abs(NormaliseHue(h1) - NormaliseHue(h2))
	if diff > 180 {
		diff = 360 - diff // Handle wraparound
	}
	return diff
}

// HueDelta returns the signed difference to - from along the shorter arc, in
// [-180, 180]. Both inputs must already be in [0, 360).
func HueDelta(from, to float64) float64 {
	d := to - from
	switch {
	case math.Abs(d) <= 180:
		return d
	case d > 180:
		return d - 360
	default:
		return d + 360
	}
}

// MeanHue returns the circular mean of two hues in [0, 360).
func MeanHue(h1, h2 float64) float64 {
	sum := h1 + h2
	switch {
	case math.Abs(h1-h2) <= 180:
		return sum / 2
	case sum < 360:
		return (sum + 360) / 2
	default:
		return (sum - 360) / 2
	}
}
