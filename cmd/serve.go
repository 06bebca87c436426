package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/riradoro03/sports-insights-hub/internal/config"
)

const shutdownTimeout = 10 * time.Second

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the site over HTTP",
	Long: `The serve command renders every page on request. With dev enabled
templates are read from templatesDir and reloaded when they change.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context(), appConfig)
	},
}

func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(ctx context.Context, cfg config.Config) error {
	if servePort != "" {
		cfg.Port = servePort
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	s, err := newSite(ctx, cfg)
	if err != nil {
		return err
	}
	go s.views.Run(ctx, time.Minute)

	go s.server.Start()

	slog.Info("Started server", slog.String("listen_addr", ":"+cfg.Port), slog.Bool("dev", cfg.Dev))
	<-ctx.Done()
	slog.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
		s.server.Close()
	}
	return nil
}
