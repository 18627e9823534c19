package cli

import (
	"cmp"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tincture/internal/vocabulary"
)

// vocabSummary is one row of the vocabulary listing.
type vocabSummary struct {
	Key      string `json:"key"`
	AliasOf  string `json:"alias_of,omitempty"`
	Resource string `json:"resource"`
	Count    int    `json:"count"`
	CINames  int    `json:"ci_names"`
	Default  bool   `json:"default"`
}

func newVocabCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "vocab",
		Aliases: []string{"vocabulary", "vocabularies"},
		Short:   "Inspect colour vocabularies",
		Long: `List and inspect the colour vocabularies available for naming.

Vocabularies are read from the bundled data unless --data-dir points at a
directory of vocabulary files (plain .json or compressed .json.xz, .json.gz,
.json.bz2).`,
	}

	cmd.AddCommand(newVocabListCmd(a), newVocabInfoCmd(a))
	return cmd
}

func newVocabListCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available vocabularies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}
			summaries, err := a.summariseVocabularies()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if format == formatJSON {
				return writeJSON(out, summaries)
			}

			table := NewTable("Key", "Entries", "Pigments", "Source", "Notes")
			for _, s := range summaries {
				notes := ""
				switch {
				case s.AliasOf != "":
					notes = "alias of " + s.AliasOf
				case s.Default:
					notes = "default"
				}
				table.AddRow(s.Key, strconv.Itoa(s.Count), strconv.Itoa(s.CINames), s.Resource, notes)
			}
			_, err = table.WriteTo(out)
			return err
		},
	}
	addFormatFlag(cmd, &format)
	return cmd
}

func (a *app) summariseVocabularies() ([]vocabSummary, error) {
	n, err := a.namer()
	if err != nil {
		return nil, err
	}

	registry := vocabulary.DefaultRegistry()
	summaries := make([]vocabSummary, 0, len(registry.AllKeys()))
	for _, key := range registry.AllKeys() {
		def, err := registry.Resolve(key)
		if err != nil {
			return nil, err
		}
		if err := n.SetVocabulary(key); err != nil {
			return nil, err
		}
		info, err := n.VocabularyInfo()
		if err != nil {
			return nil, fmt.Errorf("failed to load vocabulary %s: %w", key, err)
		}
		summaries = append(summaries, vocabSummary{
			Key:      key,
			AliasOf:  def.AliasOf,
			Resource: info.Resource,
			Count:    info.Count,
			CINames:  info.CINames,
			Default:  key == a.cfg.Vocabulary,
		})
	}
	return summaries, nil
}

func newVocabInfoCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "info [vocabulary]",
		Short: "Show entry and family counts for a vocabulary",
		Long: `Show entry, family and Colour Index counts for a vocabulary. Without an
argument the vocabulary selected by --vocabulary is described.

Examples:
  tincture vocab info
  tincture vocab info xkcd --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}

			n, err := a.namer()
			if err != nil {
				return err
			}
			if len(args) == 1 {
				if err := n.SetVocabulary(args[0]); err != nil {
					return err
				}
			}

			info, err := n.VocabularyInfo()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if format == formatJSON {
				return writeJSON(out, info)
			}
			return writeVocabInfo(out, info)
		},
	}
	addFormatFlag(cmd, &format)
	return cmd
}

func writeVocabInfo(w io.Writer, info vocabulary.Info) error {
	fmt.Fprintf(w, "Vocabulary: %s\n", info.Name)
	fmt.Fprintf(w, "Source:     %s\n", info.Resource)
	fmt.Fprintf(w, "Entries:    %d\n", info.Count)
	fmt.Fprintf(w, "CI names:   %d\n\n", info.CINames)

	families := slices.SortedFunc(maps.Keys(info.Families), func(x, y string) int {
		if c := cmp.Compare(info.Families[y], info.Families[x]); c != 0 {
			return c
		}
		return cmp.Compare(x, y)
	})

	table := NewTable("Family", "Entries")
	for _, f := range families {
		table.AddRow(f, strconv.Itoa(info.Families[f]))
	}
	_, err := table.WriteTo(w)
	return err
}
