package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Rana718/arcadia/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the datasets over a JSON API",
	Long: `
Start the HTTP API that backs the dashboard. The bundle is loaded on first use
and cached for cache.ttl. Prometheus metrics are exposed at /metrics.

Examples:
  arcadia serve
  arcadia serve --port 9000`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		port, _ := cmd.Flags().GetInt("port")
		if port == 0 {
			port = cfg.Server.Port
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		log := newLogger(cfg)
		l, cleanup := newLoader(ctx, cfg, log)
		defer cleanup()

		// warm the cache so the first request does not pay for the load
		if b, err := l.Load(ctx); err == nil {
			color.Cyan("📦 Serving %s data (run %s)", b.Source, b.RunID)
		}

		srv := server.New(l, log, port)
		errCh := make(chan error, 1)
		go func() { errCh <- srv.Start() }()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
			color.Yellow("\n🛑 Shutting down...")
			if err := srv.Shutdown(); err != nil {
				log.Warn("shutdown failed", zap.Error(err))
			}
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntP("port", "p", 0, "Port to listen on (default server.port)")
}
