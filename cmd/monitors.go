package cmd

import (
	"github.com/hyprland-community/hyprmon/internal/state"
	"github.com/spf13/cobra"
)

var monitorsCmd = &cobra.Command{
	Use:   "monitors",
	Short: "Watch changes in monitors",
	RunE:  runMonitors,
}

func init() {
	rootCmd.AddCommand(monitorsCmd)
}

func runMonitors(cmd *cobra.Command, args []string) error {
	once, _ := cmd.Flags().GetBool("once")

	w := &watcher{
		kind: state.Monitors,
		once: once,
	}
	return w.run()
}
