// Package cli provides the command-line interface for tonal.
package cli

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/jmylchreest/tonal/internal/version"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the tonal command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tonal",
		Short: "Edit and validate accessible colour scales",
		Long: `tonal edits a palette of colour scales (Blue, Red, Green, Yellow, Grey), each
with fixed luminance grades from 0 (white) to 100 (black), and checks that
every colour falls inside the luminance range for its grade.

A palette is shared as a token in a link (?config=<token>). Every command that
reads a palette accepts that token with --config, or the whole link with --url.`,
		Version:      version.Short(),
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress non-error output")

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newSetCmd())
	rootCmd.AddCommand(newSwatchCmd())
	rootCmd.AddCommand(newServeCmd())

	return rootCmd
}

// newVersionCmd represents the version command
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}

// newLogger returns a logger writing to the command's stderr. --verbose
// selects debug output and --quiet limits it to errors; otherwise level is used.
func newLogger(cmd *cobra.Command, name string, level hclog.Level) hclog.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	quiet, _ := cmd.Flags().GetBool("quiet")

	switch {
	case verbose:
		level = hclog.Debug
	case quiet:
		level = hclog.Error
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   name,
		Output: cmd.ErrOrStderr(),
		Level:  level,
	})
}
