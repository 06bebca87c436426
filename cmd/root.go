package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/riradoro03/sports-insights-hub/internal/config"
)

var (
	version = "dev"

	cfgFile   string
	envFile   string
	appConfig config.Config
)

var rootCmd = &cobra.Command{
	Use:   "sports-insights-hub",
	Short: "Portfolio site for sport, business and technology",
	Long: `sports-insights-hub serves the portfolio site: the home page with its
animated stadium hero, about, experiences, projects, blog and contact pages.
Run without a subcommand to start the server.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context(), appConfig)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")
}

func initializeConfig(_ *cobra.Command) error {
	cfg, err := config.Load(cfgFile, envFile)
	if err != nil {
		return err
	}

	logger, err := cfg.Logger(os.Stderr)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	appConfig = cfg
	return nil
}
