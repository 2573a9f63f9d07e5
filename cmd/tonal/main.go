// Tonal - accessible colour scale editor
//
// Tonal edits palettes of colour scales, checks every colour against the
// luminance range of its grade, and shares palettes as compact link tokens.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/tonal/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
