package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/jmylchreest/tonal/internal/swatch"
	"github.com/spf13/cobra"
)

func newSwatchCmd() *cobra.Command {
	var (
		src    paletteSource
		output string
	)

	cmd := &cobra.Command{
		Use:   "swatch",
		Short: "Render a palette as a labelled PNG sheet",
		Long: `Render a palette as a PNG with one column per scale. Each cell is labelled
with its luminance, hex and HSL values; cells that miss their grade carry a
"!" badge.

Examples:
  tonal swatch -o palette.png
  tonal swatch --url "$LINK" -o - > shared.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd, "tonal", hclog.Warn)

			p, err := src.load(logger)
			if err != nil {
				return err
			}

			if output == "-" {
				return swatch.Write(cmd.OutOrStdout(), p)
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			if err := swatch.Write(f, p); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("failed to write output file: %w", err)
			}

			logger.Debug("wrote swatch", "path", output)
			return nil
		},
	}

	src.register(cmd.Flags())
	cmd.Flags().StringVarP(&output, "output", "o", "palette.png", "output file, or - for stdout")

	return cmd
}
