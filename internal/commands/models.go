// internal/commands/models.go
package localingo

import (
	"github.com/spf13/cobra"

	"github.com/mwiater/localingo/internal/models"
	"github.com/mwiater/localingo/internal/providers/ollama"
)

// modelsCmd implements 'models', which lists the models installed on the
// configured Ollama host and marks the one localingo will use.
var modelsCmd = &cobra.Command{
	Use:          "models",
	Short:        "List models on the Ollama host",
	Long:         `The 'models' command lists installed models, marks loaded ones with (loaded) and the configured model with *.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		return models.List(cmd.Context(), cmd.OutOrStdout(), ollama.New(cfg), cfg.ModelName())
	},
}

// pullModelCmd implements 'models pull'.
var pullModelCmd = &cobra.Command{
	Use:          "pull",
	Short:        "Pull the configured model onto the Ollama host",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		return models.Pull(cmd.Context(), cmd.OutOrStdout(), ollama.New(cfg), cfg.ModelName())
	},
}

// unloadModelCmd implements 'models unload'.
var unloadModelCmd = &cobra.Command{
	Use:          "unload",
	Short:        "Unload the configured model from memory",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		return models.Unload(cmd.Context(), cmd.OutOrStdout(), ollama.New(cfg), cfg.ModelName())
	},
}

func init() {
	modelsCmd.AddCommand(pullModelCmd)
	modelsCmd.AddCommand(unloadModelCmd)
	rootCmd.AddCommand(modelsCmd)
}
