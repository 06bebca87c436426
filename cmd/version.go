package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/riradoro03/sports-insights-hub/server"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Prints build information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), server.FormatBuildVersion(version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
