package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/hashicorp/go-hclog"
	"github.com/jmylchreest/tonal/internal/config"
	"github.com/jmylchreest/tonal/internal/server"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var (
		addr    string
		origins []string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the palette editor API",
		Long: `Serve the palette editor over HTTP.

Endpoints:
  GET  /health
  GET  /api/v1/grades
  POST /api/v1/check            {"color": "#1b6ef3", "grade": 50}
  GET  /api/v1/palette?config=<token>
  POST /api/v1/palette/color    {"config": "<token>", "scale": "Blue", "grade": 50, "color": "#123456"}
  GET  /api/v1/session?config=<token>   (websocket: preview, commit, back, forward)

Environment:
  TONAL_ADDR, TONAL_VERBOSE, TONAL_SHUTDOWN_TIMEOUT, TONAL_ALLOWED_ORIGINS`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			verbose, _ := cmd.Flags().GetBool("verbose")

			cfg, err := config.NewBuilder().
				WithEnvConfig().
				WithAddr(addr).
				WithVerbose(verbose).
				WithAllowedOrigins(origins).
				Build()
			if err != nil {
				return err
			}

			level := hclog.Info
			if cfg.Verbose {
				level = hclog.Debug
			}
			logger := newLogger(cmd, "tonal", level).Named("server")

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return server.New(cfg, logger).Run(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default "+config.DefaultAddr+")")
	cmd.Flags().StringSliceVar(&origins, "allow-origin", nil, "additional browser origin allowed to call the API (repeatable)")

	return cmd
}
