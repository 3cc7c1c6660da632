package cmd

import (
	"github.com/hyprland-community/hyprmon/internal/state"
	"github.com/spf13/cobra"
)

var clientsCmd = &cobra.Command{
	Use:   "clients",
	Short: "Watch changes in clients (windows)",
	Long: `Watch changes in clients (windows). Each client gains a monitorName
field resolved from its monitor id. The --workspace filter takes a
bare workspace id ("3") or a name ("name:web").`,
	RunE: runClients,
}

func init() {
	rootCmd.AddCommand(clientsCmd)
	clientsCmd.Flags().StringP("monitor", "m", "", "Only watch clients on this monitor")
	clientsCmd.Flags().StringP("workspace", "w", "", "Only watch clients on this workspace")
}

func runClients(cmd *cobra.Command, args []string) error {
	once, _ := cmd.Flags().GetBool("once")
	monitor, _ := cmd.Flags().GetString("monitor")
	workspace, _ := cmd.Flags().GetString("workspace")

	w := &watcher{
		kind: state.Clients,
		client: state.ClientFilter{
			Monitor:   monitor,
			Workspace: workspace,
		},
		once: once,
	}
	return w.run()
}
