package cmd

import (
	"fmt"
	"os"

	"github.com/hyprland-community/hyprmon/internal/output"
	"github.com/hyprland-community/hyprmon/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hyprmon",
	Short: "Watch Hyprland monitors, workspaces and clients over IPC",
	Long: `hyprmon queries the Hyprland IPC sockets for monitor, workspace and
client state, enriches it with derived fields, and re-emits the result
as one JSON document whenever a relevant compositor event fires.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().BoolP("once", "o", false, "Query only once, don't listen for events")
	rootCmd.PersistentFlags().BoolP("pretty", "p", false, "Pretty-print each emitted document")
	rootCmd.PersistentFlags().String("format", "json", "Output format: json, yaml")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		format, _ := rootCmd.PersistentFlags().GetString("format")
		switch format {
		case "json":
			output.OutputFormat = output.FormatJSON
		case "yaml":
			output.OutputFormat = output.FormatYAML
		default:
			return fmt.Errorf("unsupported format: %s (use json or yaml)", format)
		}

		pretty, _ := rootCmd.PersistentFlags().GetBool("pretty")
		output.PrettyOutput = pretty
		return nil
	}
}
