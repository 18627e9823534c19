package harmony

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jmylchreest/tincture/internal/colour"
)

func zeroCounts() map[Kind]int {
	return map[Kind]int{
		KindComplementary:      0,
		KindTriadic:            0,
		KindAnalogous:          0,
		KindSplitComplementary: 0,
		KindTetradic:           0,
	}
}

func TestAnalyzeDegeneratePalettes(t *testing.T) {
	tests := []struct {
		name    string
		palette colour.Palette
	}{
		{name: "empty", palette: nil},
		{name: "single", palette: colour.Palette{red}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewDetector().Analyze(tt.palette)
			if got.Dominant != KindNone {
				t.Errorf("Dominant = %q, want none", got.Dominant)
			}
			if got.Score != 0 || got.Total != 0 {
				t.Errorf("Score/Total = %v/%d, want 0/0", got.Score, got.Total)
			}
			if diff := cmp.Diff(zeroCounts(), got.Counts); diff != "" {
				t.Errorf("Counts mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAnalyzePrimaries(t *testing.T) {
	got := NewDetector().Analyze(colour.Palette{red, green, blue})

	want := zeroCounts()
	want[KindTriadic] = 1
	want[KindSplitComplementary] = 3
	if diff := cmp.Diff(want, got.Counts); diff != "" {
		t.Errorf("Counts mismatch (-want +got):\n%s", diff)
	}
	if got.Total != 4 {
		t.Errorf("Total = %d, want 4", got.Total)
	}
	if got.Dominant != KindSplitComplementary {
		t.Errorf("Dominant = %q, want split_complementary", got.Dominant)
	}
	// Four harmonies over three pairs is capped.
	if got.Score != 1 {
		t.Errorf("Score = %v, want 1", got.Score)
	}
	if len(got.Triadic) != 1 || len(got.Sets(KindTriadic)) != 1 {
		t.Errorf("Triadic = %v, want one set", got.Triadic)
	}
}

func TestAnalyzeComplementaryPair(t *testing.T) {
	got := NewDetector().Analyze(colour.Palette{red, cyan})
	if got.Counts[KindComplementary] != 1 || got.Total != 1 {
		t.Errorf("Counts = %v, want exactly one complementary pair", got.Counts)
	}
	if got.Dominant != KindComplementary || got.Score != 1 {
		t.Errorf("Dominant/Score = %q/%v, want complementary/1", got.Dominant, got.Score)
	}
}

func TestAnalyzeTiePrecedence(t *testing.T) {
	// One complementary pair (red, cyan) and one analogous group (red, orange).
	got := NewDetector(WithTolerance(10)).Analyze(colour.Palette{red, orange, cyan})

	if got.Counts[KindComplementary] != 1 || got.Counts[KindAnalogous] != 1 || got.Total != 2 {
		t.Fatalf("Counts = %v, want one complementary and one analogous", got.Counts)
	}
	if got.Dominant != KindComplementary {
		t.Errorf("Dominant = %q, want complementary to win the tie", got.Dominant)
	}
	if want := 2.0 / 3.0; got.Score != want {
		t.Errorf("Score = %v, want %v", got.Score, want)
	}
}

func TestProfileSetsUnknownKind(t *testing.T) {
	p := NewDetector().Analyze(colour.Palette{red, cyan})
	if got := p.Sets(KindNone); got != nil {
		t.Errorf("Sets(none) = %v, want nil", got)
	}
}
