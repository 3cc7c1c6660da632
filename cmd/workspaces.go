package cmd

import (
	"github.com/hyprland-community/hyprmon/internal/hypr"
	"github.com/hyprland-community/hyprmon/internal/state"
	"github.com/spf13/cobra"
)

var workspacesCmd = &cobra.Command{
	Use:   "workspaces",
	Short: "Watch changes in workspaces",
	Long: `Watch changes in workspaces. Each workspace is annotated with shown
(assigned to a monitor) and active (the focused workspace of its
monitor). With --config, workspaces declared in hyprland.conf are
merged in: declared-but-absent workspaces appear with exists=false,
and live workspaces without a declaration are marked dynamic=true.`,
	RunE: runWorkspaces,
}

func init() {
	rootCmd.AddCommand(workspacesCmd)
	workspacesCmd.Flags().StringP("monitor", "m", "", "Only watch workspaces on this monitor")
	workspacesCmd.Flags().BoolP("special", "s", false, "Only watch special workspaces (--special=false for only regular ones)")
	workspacesCmd.Flags().BoolP("config", "c", false, "Merge in workspaces declared in hyprland.conf")
}

func runWorkspaces(cmd *cobra.Command, args []string) error {
	once, _ := cmd.Flags().GetBool("once")
	monitor, _ := cmd.Flags().GetString("monitor")
	special, _ := cmd.Flags().GetBool("special")
	withConfig, _ := cmd.Flags().GetBool("config")

	w := &watcher{
		kind: state.Workspaces,
		workspace: state.WorkspaceFilter{
			Monitor: monitor,
			Special: specialFilter(cmd.Flags().Changed("special"), special),
		},
		once: once,
	}

	if withConfig {
		rules, err := loadRules()
		if err != nil {
			return err
		}
		if rules == nil {
			rules = []hypr.WorkspaceRule{}
		}
		w.rules = rules
	}

	return w.run()
}
