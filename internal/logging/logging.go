// Package logging builds the hclog loggers used across tincture.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
)

// Name is the root logger name.
const Name = "tincture"

// Options controls logger construction.
type Options struct {
	// Verbose lowers the level to Debug.
	Verbose bool
	// Quiet raises the level to Error. Verbose wins if both are set.
	Quiet bool
	// Level, when set, overrides Verbose and Quiet (trace, debug, info, warn, error, off).
	Level string
	// Output defaults to os.Stderr.
	Output io.Writer
}

// ParseLevel converts a level name to an hclog level.
func ParseLevel(s string) (hclog.Level, error) {
	if s == "off" {
		return hclog.Off, nil
	}
	level := hclog.LevelFromString(s)
	if level == hclog.NoLevel {
		return hclog.NoLevel, fmt.Errorf("invalid log level %q (want trace, debug, info, warn, error or off)", s)
	}
	return level, nil
}

// EffectiveLevel returns the level selected by o. An invalid explicit level
// falls back to the one derived from Verbose and Quiet.
func (o Options) EffectiveLevel() hclog.Level {
	if o.Level != "" {
		if level, err := ParseLevel(o.Level); err == nil {
			return level
		}
	}
	switch {
	case o.Verbose:
		return hclog.Debug
	case o.Quiet:
		return hclog.Error
	default:
		return hclog.Warn
	}
}

// New creates the root logger.
func New(opts Options) hclog.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:        Name,
		Output:      out,
		Level:       opts.EffectiveLevel(),
		Color:       hclog.AutoColor,
		DisableTime: true,
	})
}
