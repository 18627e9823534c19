// Package config resolves tincture settings from defaults, environment
// variables and command-line flags.
//
// Precedence, lowest to highest: Default(), a config passed to WithConfig,
// TINCTURE_* environment variables (WithEnvConfig), then flags that were
// explicitly set on the command line (WithFlags).
package config

import (
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/jmylchreest/tincture/internal/harmony"
	"github.com/jmylchreest/tincture/internal/logging"
	"github.com/jmylchreest/tincture/internal/security"
	"github.com/jmylchreest/tincture/internal/vocabulary"
)

// Environment variables.
const (
	EnvVocabulary  = "TINCTURE_VOCABULARY"
	EnvDataDir     = "TINCTURE_DATA_DIR"
	EnvTolerance   = "TINCTURE_TOLERANCE"
	EnvMaxHueRange = "TINCTURE_MAX_HUE_RANGE"
	EnvLogLevel    = "TINCTURE_LOG_LEVEL"
)

// Flag names.
const (
	FlagVocabulary  = "vocabulary"
	FlagDataDir     = "data-dir"
	FlagTolerance   = "tolerance"
	FlagMaxHueRange = "max-hue-range"
	FlagLogLevel    = "log-level"
)

// Config holds resolved settings.
type Config struct {
	// Vocabulary is the initially active vocabulary key.
	Vocabulary string
	// DataDir, when set, replaces the bundled vocabularies with files from this directory.
	DataDir string
	// Tolerance is the harmony angle tolerance in degrees.
	Tolerance float64
	// MaxHueRange is the widest analogous group span in degrees.
	MaxHueRange float64
	// LogLevel overrides the verbosity flags when set.
	LogLevel string
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Vocabulary:  vocabulary.DefaultKey,
		Tolerance:   harmony.DefaultTolerance,
		MaxHueRange: harmony.DefaultMaxHueRange,
	}
}

// Validate checks every field.
func (c Config) Validate() error {
	if _, err := vocabulary.DefaultRegistry().Resolve(c.Vocabulary); err != nil {
		return err
	}
	if c.Tolerance < 0 || c.Tolerance > 180 {
		return fmt.Errorf("tolerance must be between 0 and 180 degrees, got %v", c.Tolerance)
	}
	if c.MaxHueRange < 0 || c.MaxHueRange > 180 {
		return fmt.Errorf("max hue range must be between 0 and 180 degrees, got %v", c.MaxHueRange)
	}
	if c.DataDir != "" {
		if err := security.ValidateDataDir(c.DataDir); err != nil {
			return err
		}
	}
	if c.LogLevel != "" {
		if _, err := logging.ParseLevel(c.LogLevel); err != nil {
			return err
		}
	}
	return nil
}

// ResourceFS returns the filesystem vocabularies are read from.
func (c Config) ResourceFS() fs.FS {
	if c.DataDir != "" {
		return os.DirFS(c.DataDir)
	}
	return vocabulary.BundledFS()
}

// DetectorOptions returns harmony detector options for the configured angles.
func (c Config) DetectorOptions() []harmony.Option {
	return []harmony.Option{
		harmony.WithTolerance(c.Tolerance),
		harmony.WithMaxHueRange(c.MaxHueRange),
	}
}

// RegisterFlags adds the configuration flags to flags with their default values.
func RegisterFlags(flags *pflag.FlagSet) {
	d := Default()
	flags.String(FlagVocabulary, d.Vocabulary, "colour vocabulary to name against ("+strings.Join(vocabulary.DefaultRegistry().Keys(), ", ")+")")
	flags.String(FlagDataDir, d.DataDir, "directory of vocabulary JSON files (.json, .json.xz) to use instead of the bundled ones")
	flags.Float64(FlagTolerance, d.Tolerance, "harmony angle tolerance in degrees")
	flags.Float64(FlagMaxHueRange, d.MaxHueRange, "widest hue span of an analogous group in degrees")
	flags.String(FlagLogLevel, d.LogLevel, "log level (trace, debug, info, warn, error, off); overrides --verbose and --quiet")
}

// Builder provides a fluent interface for resolving a Config.
type Builder struct {
	config    Config
	useEnv    bool
	flags     *pflag.FlagSet
	lookupEnv func(string) (string, bool)
}

// NewBuilder creates a builder starting from Default().
func NewBuilder() *Builder {
	return &Builder{
		config:    Default(),
		lookupEnv: os.LookupEnv,
	}
}

// WithConfig replaces the base configuration.
func (b *Builder) WithConfig(c Config) *Builder {
	b.config = c
	return b
}

// WithEnvConfig enables reading TINCTURE_* environment variables.
func (b *Builder) WithEnvConfig() *Builder {
	b.useEnv = true
	return b
}

// WithFlags applies flags from the set that were explicitly set.
func (b *Builder) WithFlags(flags *pflag.FlagSet) *Builder {
	b.flags = flags
	return b
}

// Build resolves and validates the configuration.
func (b *Builder) Build() (Config, error) {
	c := b.config

	if b.useEnv {
		if err := b.applyEnv(&c); err != nil {
			return Config{}, err
		}
	}

	if b.flags != nil {
		if err := applyFlags(&c, b.flags); err != nil {
			return Config{}, err
		}
	}

	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return c, nil
}

func (b *Builder) applyEnv(c *Config) error {
	if v, ok := b.lookupEnv(EnvVocabulary); ok && v != "" {
		c.Vocabulary = v
	}
	if v, ok := b.lookupEnv(EnvDataDir); ok && v != "" {
		c.DataDir = v
	}
	if v, ok := b.lookupEnv(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
	for _, f := range []struct {
		name string
		dst  *float64
	}{
		{EnvTolerance, &c.Tolerance},
		{EnvMaxHueRange, &c.MaxHueRange},
	} {
		v, ok := b.lookupEnv(f.name)
		if !ok || v == "" {
			continue
		}
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("failed to parse %s=%q: %w", f.name, v, err)
		}
		*f.dst = parsed
	}
	return nil
}

func applyFlags(c *Config, flags *pflag.FlagSet) error {
	var err error
	if flags.Changed(FlagVocabulary) {
		if c.Vocabulary, err = flags.GetString(FlagVocabulary); err != nil {
			return err
		}
	}
	if flags.Changed(FlagDataDir) {
		if c.DataDir, err = flags.GetString(FlagDataDir); err != nil {
			return err
		}
	}
	if flags.Changed(FlagLogLevel) {
		if c.LogLevel, err = flags.GetString(FlagLogLevel); err != nil {
			return err
		}
	}
	if flags.Changed(FlagTolerance) {
		if c.Tolerance, err = flags.GetFloat64(FlagTolerance); err != nil {
			return err
		}
	}
	if flags.Changed(FlagMaxHueRange) {
		if c.MaxHueRange, err = flags.GetFloat64(FlagMaxHueRange); err != nil {
			return err
		}
	}
	return nil
}
