package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/leetboo/leetboo/internal/daemon"
)

func init() {
	missionCmd.AddCommand(missionCompleteCmd)
	missionCmd.AddCommand(missionWeeklyCmd)
	rootCmd.AddCommand(missionCmd)
}

var missionCmd = &cobra.Command{
	Use:   "mission",
	Short: "Inspect and complete missions",
}

var missionCompleteCmd = &cobra.Command{
	Use:   "complete <key>",
	Short: "Mark a one-time mission as completed",
	Args:  cobra.ExactArgs(1),
	RunE:  runMissionComplete,
}

func runMissionComplete(cmd *cobra.Command, args []string) error {
	key := args[0]
	return withDaemon(func(d *daemon.Daemon) error {
		if d.Engine.IsOneTimeMissionCompleted(key) {
			fmt.Printf("Mission %q already completed\n", key)
			return nil
		}
		d.Engine.CompleteOneTimeMission(key)
		fmt.Printf("Mission %q completed\n", key)
		return nil
	})
}

var missionWeeklyCmd = &cobra.Command{
	Use:   "weekly <key>",
	Short: "Mark a weekly mission as completed for the current week",
	Args:  cobra.ExactArgs(1),
	RunE:  runMissionWeekly,
}

func runMissionWeekly(cmd *cobra.Command, args []string) error {
	key := args[0]
	return withDaemon(func(d *daemon.Daemon) error {
		now := time.Now()
		if d.Engine.IsWeeklyMissionCompleted(key, now) {
			fmt.Printf("Weekly mission %q already completed this week\n", key)
			return nil
		}
		d.Engine.CompleteWeeklyMission(key, now)
		fmt.Printf("Weekly mission %q completed for this week\n", key)
		missed := d.Engine.MissedWeeklyMissions(key)
		for _, week := range missed {
			fmt.Printf("  missed week of %s\n", week.Format("2006-01-02"))
		}
		return nil
	})
}
