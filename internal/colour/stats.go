package colour

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// hueBins is the number of colour wheel sectors used by Diversity.
const hueBins = 12

// Statistics summarises a palette in RGB and HSV terms.
type Statistics struct {
	Count          int     `json:"n_colors"`
	MeanRGB        [3]int  `json:"mean_rgb"`
	StdRGB         [3]int  `json:"std_rgb"`
	HSV            []HSV   `json:"hsv_values"`
	MeanHue        float64 `json:"mean_hue"`
	MeanSaturation float64 `json:"mean_saturation"`
	MeanValue      float64 `json:"mean_value"`
	StdHue         float64 `json:"std_hue"`
	StdSaturation  float64 `json:"std_saturation"`
	StdValue       float64 `json:"std_value"`
}

// PaletteStatistics computes population statistics for a palette. The mean
// hue is circular; the hue standard deviation is linear over [0, 360).
// An empty palette yields the zero Statistics.
func PaletteStatistics(p Palette) Statistics {
	if len(p) == 0 {
		return Statistics{}
	}

	channels := [3][]float64{}
	hues := make([]float64, len(p))
	hueRad := make([]float64, len(p))
	sats := make([]float64, len(p))
	vals := make([]float64, len(p))
	hsv := make([]HSV, len(p))

	for i, c := range p {
		for ch, v := range c.Array() {
			channels[ch] = append(channels[ch], float64(v))
		}
		hsv[i] = RGBToHSV(c)
		hues[i] = hsv[i].H
		hueRad[i] = rad(hsv[i].H)
		sats[i] = hsv[i].S
		vals[i] = hsv[i].V
	}

	s := Statistics{Count: len(p), HSV: hsv}
	for ch := range channels {
		mean, std := stat.PopMeanStdDev(channels[ch], nil)
		s.MeanRGB[ch] = int(mean)
		s.StdRGB[ch] = int(std)
	}

	s.MeanHue = NormaliseHue(stat.CircularMean(hueRad, nil) * 180 / math.Pi)
	_, s.StdHue = stat.PopMeanStdDev(hues, nil)
	s.MeanSaturation, s.StdSaturation = stat.PopMeanStdDev(sats, nil)
	s.MeanValue, s.StdValue = stat.PopMeanStdDev(vals, nil)
	return s
}

// Diversity is the Shannon entropy of the palette's hues over twelve equal
// colour wheel sectors, normalised to [0, 1]. Palettes with fewer than two
// colours score 0.
func Diversity(p Palette) float64 {
	if len(p) < 2 {
		return 0
	}

	hues := p.Hues()
	slices.Sort(hues)

	dividers := floats.Span(make([]float64, hueBins+1), 0, 360)
	counts := stat.Histogram(nil, dividers, hues, nil)
	floats.Scale(1/floats.Sum(counts), counts)

	return stat.Entropy(counts) / math.Log(hueBins)
}

// SaturationScore is the mean HSV saturation (0-100) of the palette.
func SaturationScore(p Palette) float64 {
	if len(p) == 0 {
		return 0
	}
	sats := make([]float64, len(p))
	for i, c := range p {
		sats[i] = RGBToHSV(c).S
	}
	return stat.Mean(sats, nil)
}

// BrightnessScore is the mean HSV value (0-100) of the palette.
func BrightnessScore(p Palette) float64 {
	if len(p) == 0 {
		return 0
	}
	vals := make([]float64, len(p))
	for i, c := range p {
		vals[i] = RGBToHSV(c).V
	}
	return stat.Mean(vals, nil)
}

// Comparison contrasts two palettes.
type Comparison struct {
	First          Statistics `json:"palette1_stats"`
	Second         Statistics `json:"palette2_stats"`
	HueDiff        float64    `json:"hue_diff"`
	SaturationDiff float64    `json:"saturation_diff"`
	BrightnessDiff float64    `json:"brightness_diff"`
	DiversityDiff  float64    `json:"diversity_diff"`
}

// ComparePalettes reports the differences between two palettes' statistics.
// The hue difference is measured along the shorter arc of the wheel.
func ComparePalettes(p1, p2 Palette) Comparison {
	s1 := PaletteStatistics(p1)
	s2 := PaletteStatistics(p2)
	return Comparison{
		First:          s1,
		Second:         s2,
		HueDiff:        HueDistance(s1.MeanHue, s2.MeanHue),
		SaturationDiff: math.Abs(s1.MeanSaturation - s2.MeanSaturation),
		BrightnessDiff: math.Abs(s1.MeanValue - s2.MeanValue),
		DiversityDiff:  math.Abs(Diversity(p1) - Diversity(p2)),
	}
}

// Temperature classifies a colour as warm, cool or neutral.
type Temperature string

const (
	TemperatureWarm    Temperature = "warm"
	TemperatureCool    Temperature = "cool"
	TemperatureNeutral Temperature = "neutral"
)

// ClassifyTemperature buckets a colour by hue: reds through yellows
// (0-60, 300-360) are warm, greens through purples (120-300) are cool, and
// anything with saturation under 10% or a yellow-green hue is neutral.
func ClassifyTemperature(c RGB) Temperature {
	hsv := RGBToHSV(c)
	switch {
	case hsv.S < 10:
		return TemperatureNeutral
	case hsv.H <= 60 || hsv.H >= 300:
		return TemperatureWarm
	case hsv.H >= 120:
		return TemperatureCool
	default:
		return TemperatureNeutral
	}
}

// TemperatureDistribution counts warm, cool and neutral colours in a palette.
type TemperatureDistribution struct {
	Warm              int         `json:"warm_count"`
	Cool              int         `json:"cool_count"`
	Neutral           int         `json:"neutral_count"`
	WarmPercentage    float64     `json:"warm_percentage"`
	CoolPercentage    float64     `json:"cool_percentage"`
	NeutralPercentage float64     `json:"neutral_percentage"`
	Dominant          Temperature `json:"dominant_temperature"`
}

// AnalyzeTemperature classifies every colour in the palette. The dominant
// temperature is the most frequent one; ties go to whichever appeared first.
// An empty palette has dominant temperature "none".
func AnalyzeTemperature(p Palette) TemperatureDistribution {
	d := TemperatureDistribution{Dominant: "none"}
	if len(p) == 0 {
		return d
	}

	counts := map[Temperature]int{}
	var order []Temperature
	for _, c := range p {
		t := ClassifyTemperature(c)
		if counts[t] == 0 {
			order = append(order, t)
		}
		counts[t]++
	}

	best := 0
	for _, t := range order {
		if counts[t] > best {
			best = counts[t]
			d.Dominant = t
		}
	}

	total := float64(len(p))
	d.Warm, d.Cool, d.Neutral = counts[TemperatureWarm], counts[TemperatureCool], counts[TemperatureNeutral]
	d.WarmPercentage = float64(d.Warm) / total * 100
	d.CoolPercentage = float64(d.Cool) / total * 100
	d.NeutralPercentage = float64(d.Neutral) / total * 100
	return d
}
