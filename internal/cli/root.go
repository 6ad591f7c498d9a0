// Package cli implements the LeetBoo command-line interface using Cobra.
// Each subcommand maps to one engine operation (checkin, log, toggle, ...).
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "leetboo",
	Short: "LeetBoo — habit tracking with coin rewards",
	Long: `LeetBoo rewards recurring activities (daily check-in, daily problem,
weekly luck) with coins, projects when you'll reach your coin target, and
plans local reminder notifications.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. Called from main.go.
func Execute(version string) {
	rootCmd.Version = version

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
