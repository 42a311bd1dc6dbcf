// internal/commands/run.go
package localingo

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mwiater/localingo/internal/metrics"
	"github.com/mwiater/localingo/internal/pipeline"
	"github.com/mwiater/localingo/internal/providers/ollama"
)

var errPipelineFailed = errors.New("pipeline did not complete")

var runContext string

// runCmd implements 'run', a one-shot pipeline without the terminal UI.
var runCmd = &cobra.Command{
	Use:   "run [TEXT...]",
	Short: "Correct, translate and rephrase TEXT once and print the results",
	Long: `The 'run' command sends TEXT (or standard input when no TEXT is given)
through the correction, translation and variants stages and prints each result.
The exit status is non-zero when the input is empty or any stage fails.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		original := strings.Join(args, " ")
		if len(args) == 0 {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}
			original = string(data)
		}

		cfg := GetConfig()
		client := ollama.New(cfg)
		agg := metrics.NewAggregator(client.Model())
		sink := newConsoleSink(cmd.OutOrStdout(), cmd.ErrOrStderr())
		orch := pipeline.New(metrics.NewProvider(client, agg), sink)

		disposition := orch.Run(cmd.Context(), pipeline.NewInput(runContext, original))
		if cfg != nil && cfg.Debug {
			fmt.Fprintln(cmd.ErrOrStderr(), agg.Snapshot().Summary())
		}
		if disposition == pipeline.Rejected || sink.Failed() {
			// The sink already printed the reason.
			cmd.SilenceErrors = true
			return errPipelineFailed
		}
		return nil
	},
}

func init() {
	runCmd.Flags().StringVar(&runContext, "context", "", "optional context that helps the proofreading stage")
	rootCmd.AddCommand(runCmd)
}
