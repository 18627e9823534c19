package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tincture/internal/colour"
)

// WCAG 2.x contrast thresholds.
const (
	wcagAALarge = 3.0
	wcagAA      = 4.5
	wcagAAA     = 7.0
)

// conversion lists a colour in every supported colour space.
type conversion struct {
	Hex string     `json:"hex"`
	RGB colour.RGB `json:"rgb"`
	HSV colour.HSV `json:"hsv"`
	HSL colour.HSL `json:"hsl"`
	Lab colour.Lab `json:"lab"`
}

func newConvertCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "convert <colour>",
		Short: "Show a colour in RGB, HSV, HSL and CIE L*a*b*",
		Example: `  tincture convert "#FF5733"
  tincture convert --format json "rgb(0, 49, 83)"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}
			c, err := colour.ParseColour(args[0])
			if err != nil {
				return err
			}

			conv := conversion{
				Hex: c.Hex(),
				RGB: c,
				HSV: colour.RGBToHSV(c),
				HSL: colour.RGBToHSL(c),
				Lab: colour.RGBToLab(c),
			}

			out := cmd.OutOrStdout()
			if format == formatJSON {
				return writeJSON(out, conv)
			}
			fmt.Fprintf(out, "Hex: %s\n", conv.Hex)
			fmt.Fprintf(out, "RGB: %s\n", conv.RGB)
			fmt.Fprintf(out, "HSV: hsv(%.1f, %.1f%%, %.1f%%)\n", conv.HSV.H, conv.HSV.S, conv.HSV.V)
			fmt.Fprintf(out, "HSL: hsl(%.1f, %.1f%%, %.1f%%)\n", conv.HSL.H, conv.HSL.S, conv.HSL.L)
			fmt.Fprintf(out, "Lab: lab(%.2f, %.2f, %.2f)\n", conv.Lab.L, conv.Lab.A, conv.Lab.B)
			return nil
		},
	}
	addFormatFlag(cmd, &format)
	return cmd
}

// paletteReport gathers every statistic computed for a palette.
type paletteReport struct {
	Statistics      colour.Statistics              `json:"statistics"`
	Diversity       float64                        `json:"diversity"`
	SaturationScore float64                        `json:"saturation_score"`
	BrightnessScore float64                        `json:"brightness_score"`
	Temperature     colour.TemperatureDistribution `json:"temperature"`
	Comparison      *colour.Comparison             `json:"comparison,omitempty"`
}

func newStatsCmd() *cobra.Command {
	var (
		format  string
		compare []string
	)
	cmd := &cobra.Command{
		Use:   "stats <colour>...",
		Short: "Summarise a palette's hue, saturation, brightness and temperature",
		Long: `Summarise a palette: mean and spread in RGB and HSV, hue diversity (normalised
entropy over twelve hue sectors), saturation and brightness scores, and the
warm/cool/neutral balance. With --compare the palette is contrasted with a
second palette.

Examples:
  tincture stats "#FF0000" "#FF8000" "#FFFF00"
  tincture stats --compare "#0000FF,#00FFFF" "#FF0000" "#FF8000"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}
			palette, err := colour.ParsePalette(args)
			if err != nil {
				return err
			}

			report := paletteReport{
				Statistics:      colour.PaletteStatistics(palette),
				Diversity:       colour.Diversity(palette),
				SaturationScore: colour.SaturationScore(palette),
				BrightnessScore: colour.BrightnessScore(palette),
				Temperature:     colour.AnalyzeTemperature(palette),
			}
			if len(compare) > 0 {
				other, err := colour.ParsePalette(compare)
				if err != nil {
					return fmt.Errorf("invalid --compare palette: %w", err)
				}
				comparison := colour.ComparePalettes(palette, other)
				report.Comparison = &comparison
			}

			out := cmd.OutOrStdout()
			if format == formatJSON {
				return writeJSON(out, report)
			}
			writeReport(out, report)
			return nil
		},
	}
	addFormatFlag(cmd, &format)
	cmd.Flags().StringSliceVar(&compare, "compare", nil, "comma-separated palette to compare against")
	return cmd
}

func writeReport(w io.Writer, r paletteReport) {
	s := r.Statistics
	fmt.Fprintf(w, "Colours:          %d\n", s.Count)
	fmt.Fprintf(w, "Mean RGB:         rgb(%d, %d, %d)\n", s.MeanRGB[0], s.MeanRGB[1], s.MeanRGB[2])
	fmt.Fprintf(w, "Std RGB:          (%d, %d, %d)\n", s.StdRGB[0], s.StdRGB[1], s.StdRGB[2])
	fmt.Fprintf(w, "Mean hue:         %.1f\n", s.MeanHue)
	fmt.Fprintf(w, "Mean saturation:  %.1f%% (std %.1f)\n", s.MeanSaturation, s.StdSaturation)
	fmt.Fprintf(w, "Mean value:       %.1f%% (std %.1f)\n", s.MeanValue, s.StdValue)
	fmt.Fprintf(w, "Diversity:        %.3f\n", r.Diversity)
	fmt.Fprintf(w, "Saturation score: %.1f\n", r.SaturationScore)
	fmt.Fprintf(w, "Brightness score: %.1f\n", r.BrightnessScore)

	t := r.Temperature
	fmt.Fprintf(w, "Temperature:      %s (warm %d, cool %d, neutral %d)\n", t.Dominant, t.Warm, t.Cool, t.Neutral)

	if c := r.Comparison; c != nil {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Compared with %d colours:\n", c.Second.Count)
		fmt.Fprintf(w, "  Hue difference:        %.1f\n", c.HueDiff)
		fmt.Fprintf(w, "  Saturation difference: %.1f\n", c.SaturationDiff)
		fmt.Fprintf(w, "  Brightness difference: %.1f\n", c.BrightnessDiff)
		fmt.Fprintf(w, "  Diversity difference:  %.3f\n", c.DiversityDiff)
	}
}

func newContrastCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "contrast <colour> <colour>",
		Short:   "Show the WCAG contrast ratio between two colours",
		Example: `  tincture contrast "#FFFFFF" "#003153"`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			palette, err := colour.ParsePalette(args)
			if err != nil {
				return err
			}

			ratio := colour.ContrastRatio(palette[0], palette[1])
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Contrast ratio: %.2f:1\n", ratio)
			fmt.Fprintf(out, "AA large text:  %s\n", passFail(ratio >= wcagAALarge))
			fmt.Fprintf(out, "AA normal text: %s\n", passFail(ratio >= wcagAA))
			fmt.Fprintf(out, "AAA:            %s\n", passFail(ratio >= wcagAAA))
			return nil
		},
	}
}

func passFail(ok bool) string {
	if ok {
		return "pass"
	}
	return "fail"
}
