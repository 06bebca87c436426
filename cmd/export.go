package cmd

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/riradoro03/sports-insights-hub/internal/config"
	"github.com/riradoro03/sports-insights-hub/internal/export"
	"github.com/riradoro03/sports-insights-hub/web"
)

var exportDir string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Writes every page of the site to static files",
	Long: `The export command renders every page, one per article included,
and copies the static assets into the configured output directory
(default './public/'). The output directory is replaced.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExport(cmd.Context(), appConfig)
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportDir, "out", "o", "", "output directory (overrides config)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(ctx context.Context, cfg config.Config) error {
	if exportDir != "" {
		cfg.OutputDir = exportDir
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s, err := newSite(ctx, cfg)
	if err != nil {
		return err
	}
	return export.Run(ctx, s.server.Routes(), export.Pages(s.content), web.Static(), cfg.OutputDir, slog.Default())
}
