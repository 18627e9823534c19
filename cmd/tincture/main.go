// Tincture - perceptual colour naming and harmony analysis
//
// Tincture names colours against vocabularies of artist pigments, paints and
// natural history colours, and detects harmonies within palettes.
package main

import (
	"os"

	"github.com/jmylchreest/tincture/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
