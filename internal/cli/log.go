package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/leetboo/leetboo/internal/daemon"
)

var logDate string

func init() {
	logCmd.Flags().StringVar(&logDate, "date", "", "Date to log for, YYYY-MM-DD (defaults to today)")
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(streakCmd)
	rootCmd.AddCommand(missedCmd)
}

var logCmd = &cobra.Command{
	Use:   "log <type>",
	Short: "Record an activity completion and collect its reward",
	Args:  cobra.ExactArgs(1),
	RunE:  runLog,
}

func runLog(cmd *cobra.Command, args []string) error {
	t, err := parseTypeArg(args[0])
	if err != nil {
		return err
	}
	date := time.Now()
	if logDate != "" {
		date, err = time.ParseInLocation("2006-01-02", logDate, time.Local)
		if err != nil {
			return fmt.Errorf("parse --date: %w", err)
		}
	}
	return withDaemon(func(d *daemon.Daemon) error {
		if err := d.Engine.LogActivity(t, date, true); err != nil {
			return err
		}
		fmt.Printf("Logged %s for %s (streak: %d)\n",
			t.Info().Title, date.Format("2006-01-02"), d.Engine.CurrentStreak(t))
		return nil
	})
}

var streakCmd = &cobra.Command{
	Use:   "streak <type>",
	Short: "Show the current streak for an activity",
	Args:  cobra.ExactArgs(1),
	RunE:  runStreak,
}

func runStreak(cmd *cobra.Command, args []string) error {
	t, err := parseTypeArg(args[0])
	if err != nil {
		return err
	}
	return withDaemon(func(d *daemon.Daemon) error {
		fmt.Printf("%s: %d day streak, %d completions this month\n",
			t.Info().Title, d.Engine.CurrentStreak(t), d.Engine.MonthlyCount(t))
		return nil
	})
}

var missedCmd = &cobra.Command{
	Use:   "missed <type>",
	Short: "List days this month the activity was not completed",
	Args:  cobra.ExactArgs(1),
	RunE:  runMissed,
}

func runMissed(cmd *cobra.Command, args []string) error {
	t, err := parseTypeArg(args[0])
	if err != nil {
		return err
	}
	return withDaemon(func(d *daemon.Daemon) error {
		missed := d.Engine.MissedDates(t)
		if len(missed) == 0 {
			fmt.Println("No missed days this month")
			return nil
		}
		for _, day := range missed {
			fmt.Println(day.Format("2006-01-02"))
		}
		return nil
	})
}
