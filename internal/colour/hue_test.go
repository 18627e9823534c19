package colour

import "testing"

func TestNormaliseHue(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{359.5, 359.5},
		{360, 0},
		{720, 0},
		{-30, 330},
		{-360, 0},
		{450, 90},
	}

	for _, tt := range tests {
		if got := NormaliseHue(tt.in); !near(got, tt.want, 1e-9) {
			t.Errorf("NormaliseHue(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestHueDistance(t *testing.T) {
	tests := []struct {
		name   string
		h1, h2 float64
		want   float64
	}{
		{name: "same", h1: 10, h2: 10, want: 0},
		{name: "direct", h1: 10, h2: 50, want: 40},
		{name: "wraparound", h1: 350, h2: 10, want: 20},
		{name: "opposite", h1: 0, h2: 180, want: 180},
		{name: "order independent", h1: 300, h2: 30, want: 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HueDistance(tt.h1, tt.h2); !near(got, tt.want, 1e-9) {
				t.Errorf("HueDistance(%v, %v) = %v, want %v", tt.h1, tt.h2, got, tt.want)
			}
		})
	}
}

func TestHueDelta(t *testing.T) {
	tests := []struct {
		from, to, want float64
	}{
		{10, 50, 40},
		{50, 10, -40},
		{350, 10, 20},
		{10, 350, -20},
		{0, 180, 180},
		{180, 0, -180},
	}

	for _, tt := range tests {
		if got := HueDelta(tt.from, tt.to); !near(got, tt.want, 1e-9) {
			t.Errorf("HueDelta(%v, %v) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestMeanHue(t *testing.T) {
	tests := []struct {
		h1, h2, want float64
	}{
		{10, 50, 30},
		{350, 10, 0},
		{340, 100, 40},
		{100, 300, 20},
		{200, 300, 250},
	}

	for _, tt := range tests {
		if got := MeanHue(tt.h1, tt.h2); !near(got, tt.want, 1e-9) {
			t.Errorf("MeanHue(%v, %v) = %v, want %v", tt.h1, tt.h2, got, tt.want)
		}
		if got := MeanHue(tt.h2, tt.h1); !near(got, tt.want, 1e-9) {
			t.Errorf("MeanHue(%v, %v) = %v, want %v", tt.h2, tt.h1, got, tt.want)
		}
	}
}
