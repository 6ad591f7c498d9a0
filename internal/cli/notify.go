package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/leetboo/leetboo/internal/daemon"
	"github.com/leetboo/leetboo/internal/domain"
)

func init() {
	notifyCmd.AddCommand(notifyEnableCmd)
	notifyCmd.AddCommand(notifyDisableCmd)
	notifyCmd.AddCommand(notifyFrequencyCmd)
	notifyCmd.AddCommand(notifyTimeCmd)
	rootCmd.AddCommand(notifyCmd)
}

var notifyCmd = &cobra.Command{
	Use:   "notify",
	Short: "Show or change reminder notification settings",
	RunE:  runNotifyShow,
}

func runNotifyShow(cmd *cobra.Command, args []string) error {
	return withDaemon(func(d *daemon.Daemon) error {
		s := d.Engine.NotificationSettings()
		state := "disabled"
		if s.EnableNotifications {
			state = "enabled"
		}
		fmt.Printf("Notifications: %s (%s)\n", state, s.ReminderFrequency)
		for i, rt := range s.DailyReminderTimes {
			fmt.Printf("  reminder %d: %s\n", i+1, rt)
		}
		pending := d.Scheduler.ListPending()
		fmt.Printf("Pending: %d scheduled\n", len(pending))
		for _, spec := range pending {
			fmt.Printf("  %02d:%02d %s\n", spec.Hour, spec.Minute, spec.Title)
		}
		return nil
	})
}

var notifyEnableCmd = &cobra.Command{
	Use:   "enable",
	Short: "Turn reminder notifications on",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return setNotifyEnabled(true)
	},
}

var notifyDisableCmd = &cobra.Command{
	Use:   "disable",
	Short: "Turn reminder notifications off",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return setNotifyEnabled(false)
	},
}

func setNotifyEnabled(enabled bool) error {
	return withDaemon(func(d *daemon.Daemon) error {
		if enabled {
			granted, err := d.Scheduler.RequestAuthorization()
			if err != nil {
				return fmt.Errorf("request notification authorization: %w", err)
			}
			if !granted {
				return fmt.Errorf("notification authorization denied")
			}
		}
		d.Engine.SetNotificationsEnabled(enabled)
		return d.Planner.Rebuild()
	})
}

var notifyFrequencyCmd = &cobra.Command{
	Use:   "frequency <once|twice_daily|three_times_daily>",
	Short: "Set how many reminders fire per day",
	Args:  cobra.ExactArgs(1),
	RunE:  runNotifyFrequency,
}

func runNotifyFrequency(cmd *cobra.Command, args []string) error {
	return withDaemon(func(d *daemon.Daemon) error {
		if err := d.Engine.SetReminderFrequency(domain.ReminderFrequency(args[0])); err != nil {
			return err
		}
		return d.Planner.Rebuild()
	})
}

var notifyTimeCmd = &cobra.Command{
	Use:   "time <index> <HH:MM>",
	Short: "Set one of the daily reminder times",
	Args:  cobra.ExactArgs(2),
	RunE:  runNotifyTime,
}

func runNotifyTime(cmd *cobra.Command, args []string) error {
	index, err := strconv.Atoi(args[0])
	if err != nil || index < 1 {
		return fmt.Errorf("index must be a positive integer, got %q", args[0])
	}
	var hour, minute int
	if _, err := fmt.Sscanf(args[1], "%d:%d", &hour, &minute); err != nil {
		return fmt.Errorf("parse time %q: %w", args[1], err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return fmt.Errorf("time %q out of range", args[1])
	}
	return withDaemon(func(d *daemon.Daemon) error {
		d.Engine.SetReminderTime(index-1, domain.ReminderTime{Hour: hour, Minute: minute})
		return d.Planner.Rebuild()
	})
}
