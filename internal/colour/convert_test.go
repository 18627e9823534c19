package colour

import (
	"errors"
	"math"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
)

func near(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestRGBToHSV(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want HSV
	}{
		{name: "red", rgb: RGB{255, 0, 0}, want: HSV{0, 100, 100}},
		{name: "green", rgb: RGB{0, 255, 0}, want: HSV{120, 100, 100}},
		{name: "blue", rgb: RGB{0, 0, 255}, want: HSV{240, 100, 100}},
		{name: "cyan", rgb: RGB{0, 255, 255}, want: HSV{180, 100, 100}},
		{name: "white", rgb: RGB{255, 255, 255}, want: HSV{0, 0, 100}},
		{name: "black", rgb: RGB{0, 0, 0}, want: HSV{0, 0, 0}},
		{name: "grey", rgb: RGB{128, 128, 128}, want: HSV{0, 0, 50.1961}},
		{name: "orange", rgb: RGB{255, 87, 51}, want: HSV{10.5882, 80, 100}},
		{name: "denim", rgb: RGB{45, 82, 128}, want: HSV{213.2530, 64.8437, 50.1961}},
		{name: "magenta edge", rgb: RGB{255, 0, 1}, want: HSV{359.7647, 100, 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RGBToHSV(tt.rgb)
			if !near(got.H, tt.want.H, 1e-3) || !near(got.S, tt.want.S, 1e-3) || !near(got.V, tt.want.V, 1e-3) {
				t.Errorf("RGBToHSV(%v) = %+v, want %+v", tt.rgb, got, tt.want)
			}
		})
	}
}

func TestRGBToHSVRanges(t *testing.T) {
	for r := 0; r < 256; r += 5 {
		for g := 0; g < 256; g += 5 {
			for b := 0; b < 256; b += 5 {
				hsv := RGBToHSV(RGB{uint8(r), uint8(g), uint8(b)})
				if hsv.H < 0 || hsv.H >= 360 {
					t.Fatalf("hue %f out of [0,360) for (%d,%d,%d)", hsv.H, r, g, b)
				}
				if hsv.S < 0 || hsv.S > 100 || hsv.V < 0 || hsv.V > 100 {
					t.Fatalf("saturation/value out of range %+v for (%d,%d,%d)", hsv, r, g, b)
				}
			}
		}
	}
}

func TestHSVRoundTrip(t *testing.T) {
	for r := 0; r < 256; r += 15 {
		for g := 0; g < 256; g += 15 {
			for b := 0; b < 256; b += 15 {
				c := RGB{uint8(r), uint8(g), uint8(b)}
				if got := HSVToRGB(RGBToHSV(c)); got != c {
					t.Errorf("HSVToRGB(RGBToHSV(%v)) = %v", c, got)
				}
			}
		}
	}
}

func TestHSVToRGBNormalisesInput(t *testing.T) {
	tests := []struct {
		name string
		hsv  HSV
		want RGB
	}{
		{name: "hue 360 wraps to red", hsv: HSV{360, 100, 100}, want: RGB{255, 0, 0}},
		{name: "negative hue", hsv: HSV{-120, 100, 100}, want: RGB{0, 0, 255}},
		{name: "saturation clamped", hsv: HSV{120, 150, 100}, want: RGB{0, 255, 0}},
		{name: "value clamped", hsv: HSV{0, 0, -10}, want: RGB{0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HSVToRGB(tt.hsv); got != tt.want {
				t.Errorf("HSVToRGB(%+v) = %v, want %v", tt.hsv, got, tt.want)
			}
		})
	}
}

func TestRGBToHSL(t *testing.T) {
	tests := []struct {
		rgb  RGB
		want HSL
	}{
		{RGB{255, 0, 0}, HSL{0, 100, 50}},
		{RGB{255, 255, 255}, HSL{0, 0, 100}},
		{RGB{255, 87, 51}, HSL{10.5882, 100, 60}},
		{RGB{45, 82, 128}, HSL{213.2530, 47.9769, 33.9216}},
	}

	for _, tt := range tests {
		got := RGBToHSL(tt.rgb)
		if !near(got.H, tt.want.H, 1e-3) || !near(got.S, tt.want.S, 1e-3) || !near(got.L, tt.want.L, 1e-3) {
			t.Errorf("RGBToHSL(%v) = %+v, want %+v", tt.rgb, got, tt.want)
		}
	}
}

func TestHSLRoundTrip(t *testing.T) {
	for r := 0; r < 256; r += 15 {
		for g := 0; g < 256; g += 15 {
			for b := 0; b < 256; b += 15 {
				c := RGB{uint8(r), uint8(g), uint8(b)}
				got, err := HSLToRGB(RGBToHSL(c))
				if err != nil {
					t.Fatalf("HSLToRGB(RGBToHSL(%v)) error: %v", c, err)
				}
				if got != c {
					t.Errorf("HSLToRGB(RGBToHSL(%v)) = %v", c, got)
				}
			}
		}
	}
}

func TestHSLToRGBValidation(t *testing.T) {
	tests := []struct {
		name    string
		hsl     HSL
		wantErr bool
	}{
		{name: "valid", hsl: HSL{200, 50, 50}},
		{name: "hue 360 allowed", hsl: HSL{360, 50, 50}},
		{name: "negative hue", hsl: HSL{-1, 50, 50}, wantErr: true},
		{name: "hue too large", hsl: HSL{361, 50, 50}, wantErr: true},
		{name: "saturation too large", hsl: HSL{10, 101, 50}, wantErr: true},
		{name: "negative lightness", hsl: HSL{10, 50, -0.5}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := HSLToRGB(tt.hsl)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidColour) {
					t.Errorf("HSLToRGB(%+v) error = %v, want ErrInvalidColour", tt.hsl, err)
				}
				return
			}
			if err != nil {
				t.Errorf("HSLToRGB(%+v) unexpected error: %v", tt.hsl, err)
			}
		})
	}
}

func TestRGBToLab(t *testing.T) {
	tests := []struct {
		rgb  RGB
		want Lab
	}{
		{RGB{255, 0, 0}, Lab{53.2408, 80.0925, 67.2032}},
		{RGB{0, 255, 0}, Lab{87.7347, -86.1827, 83.1793}},
		{RGB{0, 0, 255}, Lab{32.2970, 79.1875, -107.8602}},
		{RGB{255, 255, 255}, Lab{100, 0, 0}},
		{RGB{0, 0, 0}, Lab{0, 0, 0}},
		{RGB{128, 128, 128}, Lab{53.5850, 0, 0}},
		{RGB{255, 87, 51}, Lab{60.1787, 62.0645, 54.3353}},
	}

	for _, tt := range tests {
		got := RGBToLab(tt.rgb)
		if !near(got.L, tt.want.L, 1e-3) || !near(got.A, tt.want.A, 1e-3) || !near(got.B, tt.want.B, 1e-3) {
			t.Errorf("RGBToLab(%v) = %+v, want %+v", tt.rgb, got, tt.want)
		}
	}
}

// go-colorful uses a slightly different sRGB matrix and scales Lab to [0, 1],
// so agreement is only expected to a few hundredths.
func TestRGBToLabAgreesWithColorful(t *testing.T) {
	for r := 0; r < 256; r += 51 {
		for g := 0; g < 256; g += 51 {
			for b := 0; b < 256; b += 51 {
				c := RGB{uint8(r), uint8(g), uint8(b)}
				got := RGBToLab(c)

				ref := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
				l, a, bb := ref.Lab()
				if !near(got.L, l*100, 0.1) || !near(got.A, a*100, 0.1) || !near(got.B, bb*100, 0.1) {
					t.Errorf("RGBToLab(%v) = %+v, colorful = (%.4f, %.4f, %.4f)", c, got, l*100, a*100, bb*100)
				}
			}
		}
	}
}
