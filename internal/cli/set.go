package cli

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/jmylchreest/tonal/internal/grade"
	"github.com/jmylchreest/tonal/internal/history"
	"github.com/jmylchreest/tonal/internal/palette"
	"github.com/spf13/cobra"
)

func newSetCmd() *cobra.Command {
	var (
		src     paletteSource
		baseURL string
	)

	cmd := &cobra.Command{
		Use:   "set <scale> <grade> <colour>",
		Short: "Set the colour of one grade and print the new shareable location",
		Long: `Set the colour of one grade in a scale and print the location of the
resulting palette. Chain edits by passing the printed location back with --url.

Examples:
  # Edit the built-in palette
  tonal set Blue 50 '#1a6df2'

  # Edit a shared palette and print a full link
  tonal set --url "$LINK" --base-url https://palettes.example/ Red 60 '#b3261f'`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd, "tonal", hclog.Warn)
			scale, hex := args[0], args[2]

			g, err := grade.Parse(args[1])
			if err != nil {
				return err
			}

			p, err := src.load(logger)
			if err != nil {
				return err
			}

			next, ok := palette.SetColor(p, scale, g, hex)
			if !ok {
				return fmt.Errorf("no grade %d in scale %q (scales: %s)", g, scale, strings.Join(p.Names(), ", "))
			}

			if result := grade.Check(hex, g); !result.Passes {
				logger.Warn("colour does not meet its grade", "scale", scale, "grade", g, "detail", result.Message)
			}

			token, err := history.Encode(next)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.TrimSuffix(baseURL, "?")+history.Location(token))
			return nil
		},
	}

	src.register(cmd.Flags())
	cmd.Flags().StringVar(&baseURL, "base-url", "", "prefix for the printed location (e.g. https://palettes.example/)")

	return cmd
}
