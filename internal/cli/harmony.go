package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tincture/internal/colour"
	"github.com/jmylchreest/tincture/internal/harmony"
)

type harmonyOptions struct {
	format  string
	preview string
}

func newHarmonyCmd(a *app) *cobra.Command {
	opts := &harmonyOptions{}
	cmd := &cobra.Command{
		Use:   "harmony <colour>...",
		Short: "Detect colour harmonies within a palette",
		Long: `Detect complementary, triadic, analogous, split-complementary and tetradic
relationships between the hues of a palette.

Angles are matched within --tolerance degrees; analogous groups span at most
--max-hue-range degrees. The harmony score is the number of harmonies found
divided by the number of colour pairs, capped at 1.

Examples:
  tincture harmony "#FF0000" "#00FF00" "#0000FF"
  tincture harmony --tolerance 10 --format json FF0000 FF8000 00FFFF`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runHarmony(cmd, args, opts)
		},
	}

	addFormatFlag(cmd, &opts.format)
	addPreviewFlag(cmd, &opts.preview)
	return cmd
}

func (a *app) runHarmony(cmd *cobra.Command, args []string, opts *harmonyOptions) error {
	if err := validateFormat(opts.format); err != nil {
		return err
	}
	preview, err := showPreview(opts.preview, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	palette, err := colour.ParsePalette(args)
	if err != nil {
		return err
	}

	detector := harmony.NewDetector(a.cfg.DetectorOptions()...)
	profile := detector.Analyze(palette)
	a.logger.Debug("analysed harmonies", "colours", palette.Len(), "total", profile.Total, "dominant", profile.Dominant)

	out := cmd.OutOrStdout()
	if opts.format == formatJSON {
		return writeJSON(out, profile)
	}
	return writeProfile(out, profile, preview)
}

func writeProfile(w io.Writer, p harmony.Profile, preview bool) error {
	fmt.Fprintf(w, "Dominant harmony: %s\n", p.Dominant)
	fmt.Fprintf(w, "Harmony score:    %.2f\n", p.Score)
	fmt.Fprintf(w, "Total harmonies:  %d\n", p.Total)

	for _, kind := range harmony.Kinds {
		sets := p.Sets(kind)
		if len(sets) == 0 {
			continue
		}
		fmt.Fprintf(w, "\n%s (%d)\n", kindTitle(kind), len(sets))
		for _, set := range sets {
			fmt.Fprintf(w, "  %s\n", formatSet(set, preview))
		}
	}
	return nil
}

func formatSet(set harmony.Set, preview bool) string {
	parts := make([]string, len(set.Colours))
	for i, c := range set.Colours {
		parts[i] = c.Hex()
		if preview {
			parts[i] = colour.FormatWithSwatch(c, parts[i], 2)
		}
	}
	return strings.Join(parts, "  ")
}

// kindTitle turns "split_complementary" into "Split complementary".
func kindTitle(k harmony.Kind) string {
	s := strings.ReplaceAll(string(k), "_", " ")
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
