package cli

import (
	"github.com/spf13/cobra"

	"github.com/leetboo/leetboo/internal/daemon"
)

func init() {
	rootCmd.AddCommand(statusCmd)
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show coins, progress, streaks, and banner state",
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	return withDaemon(func(d *daemon.Daemon) error {
		return printSummary(d.Engine.Summarize())
	})
}
