package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tincture/internal/colour"
	"github.com/jmylchreest/tincture/internal/namer"
)

// namedColour pairs an input colour with the entry chosen for it.
type namedColour struct {
	Input string `json:"input"`
	namer.Result
}

// pigmentMatch pairs an input colour with its closest pigment.
type pigmentMatch struct {
	Input string `json:"input"`
	namer.Pigment
}

type nameOptions struct {
	metadata bool
	format   string
	preview  string
}

func newNameCmd(a *app) *cobra.Command {
	opts := &nameOptions{}
	cmd := &cobra.Command{
		Use:   "name <colour>...",
		Short: "Name colours using the active vocabulary",
		Long: `Name each colour with the perceptually closest entry in the active vocabulary.

Examples:
  # Name a colour using artist pigment names (default)
  tincture name "#FF5733"

  # Name several colours against the XKCD survey vocabulary
  tincture name --vocabulary xkcd FF5733 "rgb(0, 49, 83)"

  # Include hex, distance, family and Colour Index name
  tincture name --metadata "#003153"

  # Machine readable output
  tincture name --format json "#2D5280"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runName(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.metadata, "metadata", "m", false, "include hex, distance, family and CI name")
	addFormatFlag(cmd, &opts.format)
	addPreviewFlag(cmd, &opts.preview)
	return cmd
}

func (a *app) runName(cmd *cobra.Command, args []string, opts *nameOptions) error {
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

	n, err := a.namer()
	if err != nil {
		return err
	}

	results, err := n.DescribePalette(palette)
	if err != nil {
		return fmt.Errorf("failed to name colours: %w", err)
	}
	a.logger.Debug("named colours", "count", len(results), "vocabulary", n.Vocabulary(), "cached_labs", n.Matcher().CacheSize())

	out := cmd.OutOrStdout()
	if opts.format == formatJSON {
		named := make([]namedColour, len(results))
		for i, r := range results {
			named[i] = namedColour{Input: palette[i].Hex(), Result: r}
		}
		return writeJSON(out, named)
	}

	if !opts.metadata {
		for i, r := range results {
			line := palette[i].Hex() + "  " + r.Name
			if preview {
				line = colour.FormatWithSwatch(palette[i], line, swatchWidth)
			}
			fmt.Fprintln(out, line)
		}
		return nil
	}

	table := NewTable(colourHeaders(preview, "Colour", "Name", "Match", "Distance", "Family", "CI Name")...)
	for i, r := range results {
		table.AddRow(colourRow(palette[i], preview,
			palette[i].Hex(), r.Name, r.Hex, formatDistance(r.Distance), r.Family, r.CIName)...)
	}
	_, err = table.WriteTo(out)
	return err
}

type pigmentOptions struct {
	format  string
	preview string
}

func newPigmentCmd(a *app) *cobra.Command {
	opts := &pigmentOptions{}
	cmd := &cobra.Command{
		Use:   "pigment <colour>...",
		Short: "Find the closest real artist pigment",
		Long: `Find the closest artist pigment with a Colour Index name for each colour.

The search always uses the artist pigment vocabulary, whichever vocabulary is
active, and only considers entries carrying a Colour Index name (e.g. PB27).

Examples:
  tincture pigment "#003153"
  tincture pigment --format json "#808080" "rgb(255, 87, 51)"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPigment(cmd, args, opts)
		},
	}

	addFormatFlag(cmd, &opts.format)
	addPreviewFlag(cmd, &opts.preview)
	return cmd
}

func (a *app) runPigment(cmd *cobra.Command, args []string, opts *pigmentOptions) error {
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

	n, err := a.namer()
	if err != nil {
		return err
	}

	matches := make([]pigmentMatch, 0, len(palette))
	for _, c := range palette {
		p, err := n.ClosestPigment(c)
		if err != nil {
			return err
		}
		matches = append(matches, pigmentMatch{Input: c.Hex(), Pigment: p})
	}

	out := cmd.OutOrStdout()
	if opts.format == formatJSON {
		return writeJSON(out, matches)
	}

	table := NewTable(colourHeaders(preview, "Colour", "Pigment", "CI Name", "Hex", "Distance", "Family")...)
	for i, m := range matches {
		table.AddRow(colourRow(palette[i], preview,
			m.Input, m.Name, m.CIName, m.Hex, formatDistance(m.Distance), m.Family)...)
	}
	_, err = table.WriteTo(out)
	return err
}

func formatDistance(d float64) string {
	return strconv.FormatFloat(d, 'f', 3, 64)
}
