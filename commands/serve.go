package commands

import (
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/soilwise-he/soilvoc/serve"
)

func newServeCommand() *cobra.Command {
	var (
		inPath   string
		addr     string
		debounce time.Duration
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Preview the mind map locally with live reload",
		Long: `Serve renders the mind map for a Turtle file and serves it over HTTP.
The file is watched for changes; on save the page is re-rendered and
open browsers reload automatically.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.Serve.Addr
			}
			if debounce == 0 {
				debounce = cfg.Serve.Debounce
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			server := serve.NewServer(inPath, addr, debounce, slog.Default())
			return server.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&inPath, "in", "SoilVoc.ttl", "Turtle file to preview")
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config)")
	cmd.Flags().DurationVar(&debounce, "debounce", 0, "Change coalescing window (default from config)")

	return cmd
}
