package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leetboo/leetboo/internal/daemon"
)

func init() {
	rootCmd.AddCommand(checkinCmd)
	rootCmd.AddCommand(dismissCmd)
}

var checkinCmd = &cobra.Command{
	Use:   "checkin <type>",
	Short: "Confirm an activity for today and collect its reward",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheckin,
}

func runCheckin(cmd *cobra.Command, args []string) error {
	t, err := parseTypeArg(args[0])
	if err != nil {
		return err
	}
	return withDaemon(func(d *daemon.Daemon) error {
		if err := d.Engine.ConfirmCheckIn(t); err != nil {
			return err
		}
		fmt.Printf("Checked in: %s (+%d coins)\n", t.Info().Title, t.Reward())
		return printSummary(d.Engine.Summarize())
	})
}

var dismissCmd = &cobra.Command{
	Use:   "dismiss <type>",
	Short: "Dismiss an activity's reminder banner for today",
	Args:  cobra.ExactArgs(1),
	RunE:  runDismiss,
}

func runDismiss(cmd *cobra.Command, args []string) error {
	t, err := parseTypeArg(args[0])
	if err != nil {
		return err
	}
	return withDaemon(func(d *daemon.Daemon) error {
		if err := d.Engine.DismissBanner(t); err != nil {
			return err
		}
		fmt.Printf("Dismissed %s for today\n", t.Info().Title)
		return nil
	})
}
