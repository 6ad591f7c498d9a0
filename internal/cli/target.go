package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/leetboo/leetboo/internal/daemon"
)

func init() {
	rootCmd.AddCommand(targetCmd)
	rootCmd.AddCommand(rateCmd)
}

var targetCmd = &cobra.Command{
	Use:   "target [coins]",
	Short: "Show or set the coin target",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTarget,
}

func runTarget(cmd *cobra.Command, args []string) error {
	return withDaemon(func(d *daemon.Daemon) error {
		if len(args) == 1 {
			target, err := strconv.Atoi(args[0])
			if err != nil || target <= 0 {
				return fmt.Errorf("target must be a positive integer, got %q", args[0])
			}
			d.Engine.SetTargetCoins(target)
		}
		sum := d.Engine.Summarize()
		fmt.Printf("Target: %d coins (%.1f%% there)\n", sum.TargetCoins, sum.ProgressPct)
		if sum.DaysToTarget > 0 {
			fmt.Printf("At ~%d coins/month you reach it in about %d days\n",
				sum.EstimatedMonthlyCoins, sum.DaysToTarget)
		}
		return nil
	})
}

var rateCmd = &cobra.Command{
	Use:   "rate [coins-per-month|auto]",
	Short: "Show or override the estimated monthly coin rate",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRate,
}

func runRate(cmd *cobra.Command, args []string) error {
	return withDaemon(func(d *daemon.Daemon) error {
		if len(args) == 1 {
			if args[0] == "auto" {
				d.Engine.SetCustomMonthlyRate(nil)
			} else {
				rate, err := strconv.Atoi(args[0])
				if err != nil || rate <= 0 {
					return fmt.Errorf("rate must be a positive integer or %q, got %q", "auto", args[0])
				}
				d.Engine.SetCustomMonthlyRate(&rate)
			}
		}
		data := d.Engine.Snapshot()
		if data.CustomMonthlyRate != nil {
			fmt.Printf("Monthly rate: %d coins (manual override)\n", *data.CustomMonthlyRate)
		} else {
			fmt.Printf("Monthly rate: %d coins (estimated from enabled activities)\n",
				d.Engine.EstimatedMonthlyCoins())
		}
		return nil
	})
}
