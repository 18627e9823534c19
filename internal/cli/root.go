// Package cli provides the command-line interface for Tincture.
package cli

import (
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/tincture/internal/config"
	"github.com/jmylchreest/tincture/internal/logging"
	"github.com/jmylchreest/tincture/internal/namer"
	"github.com/jmylchreest/tincture/internal/version"
	"github.com/jmylchreest/tincture/internal/vocabulary"
)

// app carries state resolved once per invocation and shared by subcommands.
type app struct {
	cfg    config.Config
	logger hclog.Logger
}

// NewRootCmd builds the tincture command tree. Each call returns an
// independent tree, so tests can execute commands repeatedly.
func NewRootCmd() *cobra.Command {
	a := &app{logger: hclog.NewNullLogger()}

	rootCmd := &cobra.Command{
		Use:   "tincture",
		Short: "Perceptual colour naming and harmony analysis",
		Long: `Tincture names colours by finding the perceptually closest entry in a
vocabulary of named colours, using CIEDE2000 colour difference in CIE L*a*b*.

It ships artist pigment, Resene paint, Werner natural history, XKCD survey and
CSS vocabularies, finds the closest real pigment for any colour, and detects
complementary, triadic, analogous, split-complementary and tetradic harmonies
within a palette.

Colours are given as hex (#FF5733 or FF5733) or rgb(255, 87, 51).`,
		Version:           version.Short(),
		SilenceUsage:      true,
		PersistentPreRunE: a.init,
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress non-error output")
	config.RegisterFlags(rootCmd.PersistentFlags())

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(
		newVersionCmd(),
		newNameCmd(a),
		newPigmentCmd(a),
		newHarmonyCmd(a),
		newVocabCmd(a),
		newConvertCmd(),
		newStatsCmd(),
		newContrastCmd(),
	)

	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// init resolves configuration and the logger before any subcommand runs.
func (a *app) init(cmd *cobra.Command, _ []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	quiet, _ := cmd.Flags().GetBool("quiet")

	cfg, err := config.NewBuilder().
		WithEnvConfig().
		WithFlags(cmd.Flags()).
		Build()
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logging.New(logging.Options{
		Verbose: verbose,
		Quiet:   quiet,
		Level:   cfg.LogLevel,
		Output:  cmd.ErrOrStderr(),
	})
	a.logger.Debug("configuration resolved",
		"vocabulary", cfg.Vocabulary,
		"data_dir", cfg.DataDir,
		"tolerance", cfg.Tolerance,
		"max_hue_range", cfg.MaxHueRange)
	return nil
}

// namer creates a namer reading vocabularies from the configured source.
func (a *app) namer() (*namer.Namer, error) {
	loader := vocabulary.NewLoader(a.cfg.ResourceFS(), a.logger.Named("vocabulary"))
	return namer.New(namer.Options{
		Vocabulary: a.cfg.Vocabulary,
		Loader:     loader,
		Logger:     a.logger.Named("namer"),
	})
}
