package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/tincture/internal/colour"
)

// Output formats.
const (
	formatText = "text"
	formatJSON = "json"
)

// Swatch preview modes.
const (
	previewAuto   = "auto"
	previewAlways = "always"
	previewNever  = "never"
)

// swatchWidth is the width of colour previews in table output.
const swatchWidth = 4

func addFormatFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVarP(target, "format", "f", formatText, "output format (text, json)")
}

func addPreviewFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVar(target, "preview", previewAuto, "show colour swatches (auto, always, never)")
}

func validateFormat(format string) error {
	switch format {
	case formatText, formatJSON:
		return nil
	default:
		return fmt.Errorf("unsupported format: %s (supported: text, json)", format)
	}
}

// showPreview resolves a preview mode against the writer. Auto mode only
// previews when w is a terminal.
func showPreview(mode string, w io.Writer) (bool, error) {
	switch mode {
	case previewAlways:
		return true, nil
	case previewNever:
		return false, nil
	case previewAuto:
		f, ok := w.(*os.File)
		return ok && term.IsTerminal(int(f.Fd())), nil
	default:
		return false, fmt.Errorf("invalid preview mode: %s (valid: auto, always, never)", mode)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// colourRow prefixes row with a swatch column when previews are enabled.
func colourRow(c colour.RGB, preview bool, row ...string) []string {
	if !preview {
		return row
	}
	return append([]string{colour.Swatch(c, swatchWidth)}, row...)
}

// colourHeaders prefixes headers with an empty swatch column when previews
// are enabled.
func colourHeaders(preview bool, headers ...string) []string {
	if !preview {
		return headers
	}
	return append([]string{""}, headers...)
}
