package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmylchreest/tonal/internal/colour"
	"github.com/jmylchreest/tonal/internal/grade"
	"github.com/spf13/cobra"
)

// errCheckFailed is returned by check --strict when the colour fails.
var errCheckFailed = errors.New("colour does not meet its grade")

// checkReport is the JSON form of a check.
type checkReport struct {
	Color         string           `json:"color"`
	Grade         grade.Grade      `json:"grade"`
	Luminance     colour.Luminance `json:"luminance"`
	HSL           string           `json:"hsl"`
	Result        grade.Result     `json:"result"`
	ContrastWhite float64          `json:"contrast_white,omitempty"`
	ContrastBlack float64          `json:"contrast_black,omitempty"`
}

func newCheckCmd() *cobra.Command {
	var (
		format string
		strict bool
	)

	cmd := &cobra.Command{
		Use:   "check <colour> <grade>",
		Short: "Check a colour against the luminance range of a grade",
		Long: `Check whether a colour's WCAG relative luminance falls inside the range
accepted for a grade.

Examples:
  # Check a colour for grade 50
  tonal check '#1b6ef3' 50

  # Fail with a non-zero exit status when the colour does not pass
  tonal check --strict '#123456' 50

  # Machine-readable output
  tonal check --format json fff 0`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := grade.Parse(args[1])
			if err != nil {
				return err
			}

			report := buildCheckReport(args[0], g)

			switch format {
			case "text":
				fmt.Fprint(cmd.OutOrStdout(), formatCheckReport(report))
			case "json":
				data, err := json.MarshalIndent(report, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to convert to JSON: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
			default:
				return fmt.Errorf("unsupported format: %s (supported: text, json)", format)
			}

			if strict && !report.Result.Passes {
				return errCheckFailed
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format (text, json)")
	cmd.Flags().BoolVar(&strict, "strict", false, "exit with an error when the colour fails")

	return cmd
}

func buildCheckReport(hex string, g grade.Grade) checkReport {
	report := checkReport{
		Color:     hex,
		Grade:     g,
		Luminance: colour.LuminanceOf(hex),
		HSL:       colour.HSLString(hex),
		Result:    grade.Check(hex, g),
	}

	if rgb, ok := colour.ParseHex(hex); ok {
		report.ContrastWhite = colour.ContrastRatio(rgb, colour.RGB{R: 255, G: 255, B: 255})
		report.ContrastBlack = colour.ContrastRatio(rgb, colour.RGB{})
	}
	return report
}

func formatCheckReport(r checkReport) string {
	status := "PASS"
	if !r.Result.Passes {
		status = "FAIL"
	}

	out := fmt.Sprintf("%s at grade %d: %s\n", r.Color, r.Grade, status)
	out += fmt.Sprintf("  %s\n", r.Result.Message)
	out += fmt.Sprintf("  Luminance: %s\n", r.Luminance.Legible)
	out += fmt.Sprintf("  HSL:       %s\n", r.HSL)
	if r.Luminance.Valid() {
		out += fmt.Sprintf("  Contrast:  %.2f:1 on white, %.2f:1 on black\n", r.ContrastWhite, r.ContrastBlack)
	}
	return out
}
