// internal/commands/show.go
package localingo

import (
	"github.com/spf13/cobra"

	"github.com/mwiater/localingo/internal/appconfig"
)

// showCmd represents the 'show' command group for displaying resources.
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Group commands for displaying resources",
	Long:  `The 'show' command groups subcommands that display information related to localingo.`,
}

// showConfigCmd prints the effective configuration after file, env and flags are merged.
var showConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show config settings",
	Long:  `Show config settings ensuring that the config file is loaded properly and overridden by flags accordingly.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := GetConfig()
		appconfig.ShowConfig(cmd.OutOrStdout(), cfg.ConfigPath, *cfg)
	},
}

func init() {
	showCmd.AddCommand(showConfigCmd)
	rootCmd.AddCommand(showCmd)
}
