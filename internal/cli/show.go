package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"

	"github.com/hashicorp/go-hclog"
	"github.com/jmylchreest/tonal/internal/colour"
	"github.com/jmylchreest/tonal/internal/grade"
	"github.com/jmylchreest/tonal/internal/history"
	"github.com/jmylchreest/tonal/internal/palette"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const (
	passMark = "✓"
	failMark = "✗"
)

func newShowCmd() *cobra.Command {
	var (
		src     paletteSource
		format  string
		preview string
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a palette with the luminance check for every grade",
		Long: `Show a palette as a table with one column per scale and one row per grade.
Each cell shows the colour, its luminance and whether it meets the grade.

Examples:
  # Show the built-in palette
  tonal show

  # Show a shared palette
  tonal show --url 'https://example.com/?config=W3sic2NhbGUiOi...'

  # Print the palette as JSON
  tonal show --format json --config W3sic2NhbGUiOi...`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd, "tonal", hclog.Warn)

			p, err := src.load(logger)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch format {
			case "table":
				usePreview, err := resolvePreview(preview, out)
				if err != nil {
					return err
				}
				token, err := history.Encode(p)
				if err != nil {
					return err
				}
				fmt.Fprint(out, renderPaletteTable(p, usePreview))
				fmt.Fprintf(out, "\nLocation: %s\n", history.Location(token))
			case "json":
				data, err := json.MarshalIndent(p, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to convert to JSON: %w", err)
				}
				fmt.Fprintln(out, string(data))
			case "token":
				token, err := history.Encode(p)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, token)
			default:
				return fmt.Errorf("unsupported format: %s (supported: table, json, token)", format)
			}
			return nil
		},
	}

	src.register(cmd.Flags())
	cmd.Flags().StringVarP(&format, "format", "f", "table", "output format (table, json, token)")
	cmd.Flags().StringVar(&preview, "preview", "auto", "show colour previews (auto, always, never)")

	return cmd
}

// resolvePreview decides whether to print ANSI colour previews. "auto" enables
// them only when out is a terminal.
func resolvePreview(mode string, out io.Writer) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto":
		if f, ok := out.(*os.File); ok {
			return term.IsTerminal(int(f.Fd())), nil
		}
		return false, nil
	default:
		return false, fmt.Errorf("invalid preview mode: %s (valid: auto, always, never)", mode)
	}
}

// renderPaletteTable lays p out with one row per grade and one column per
// scale, followed by a summary of failing entries.
func renderPaletteTable(p palette.Palette, preview bool) string {
	var grades []grade.Grade
	for _, s := range p {
		for _, e := range s.Grades {
			if !slices.Contains(grades, e.Grade) {
				grades = append(grades, e.Grade)
			}
		}
	}
	slices.Sort(grades)

	table := NewTable(append([]string{"Grade"}, p.Names()...))
	failing, total := 0, 0
	for _, g := range grades {
		row := []string{strconv.Itoa(int(g))}
		for _, s := range p {
			c, ok := s.Color(g)
			if !ok {
				row = append(row, "")
				continue
			}
			result := grade.Check(c, g)
			total++
			if !result.Passes {
				failing++
			}
			row = append(row, formatCell(c, result, preview))
		}
		table.AddRow(row)
	}

	out := table.Render()
	if failing > 0 {
		out += fmt.Sprintf("\n%d of %d entries do not meet their grade\n", failing, total)
	}
	return out
}

func formatCell(hex string, result grade.Result, preview bool) string {
	mark := passMark
	if !result.Passes {
		mark = failMark
	}

	lum := colour.LuminanceOf(hex)
	if rgb, ok := colour.ParseHex(hex); ok && preview {
		return fmt.Sprintf("%s %s %s", colour.ColourPreviewWithText(rgb, lum.Legible, 7), hex, mark)
	}
	return fmt.Sprintf("%s %s %s", hex, lum.Legible, mark)
}
