package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leetboo/leetboo/internal/daemon"
)

func init() {
	rootCmd.AddCommand(toggleCmd)
}

var toggleCmd = &cobra.Command{
	Use:   "toggle <type>",
	Short: "Enable or disable an activity",
	Args:  cobra.ExactArgs(1),
	RunE:  runToggle,
}

func runToggle(cmd *cobra.Command, args []string) error {
	t, err := parseTypeArg(args[0])
	if err != nil {
		return err
	}
	return withDaemon(func(d *daemon.Daemon) error {
		if err := d.Engine.ToggleActivity(t); err != nil {
			return err
		}
		data := d.Engine.Snapshot()
		a := data.Activity(t)
		state := "disabled"
		if a != nil && a.IsEnabled {
			state = "enabled"
		}
		fmt.Printf("%s is now %s\n", t.Info().Title, state)
		return d.Planner.Rebuild()
	})
}
