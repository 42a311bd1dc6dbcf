// internal/commands/list_commands.go
package localingo

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// listCmd groups listing subcommands.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Group commands for listing resources",
}

// commandsCmd implements 'list commands', which prints the available
// commands and subcommands in a hierarchical, indented, two-column format.
var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "List all commands and subcommands in two columns",
	Run: func(cmd *cobra.Command, args []string) {
		runListCommands(cmd.OutOrStdout(), rootCmd)
	},
}

func init() {
	listCmd.AddCommand(commandsCmd)
	rootCmd.AddCommand(listCmd)
}

// commandInfo holds the path and description of a command for display.
type commandInfo struct {
	path        string
	description string
}

// runListCommands prints the command tree in a two-column layout.
func runListCommands(out io.Writer, root *cobra.Command) {
	commandData := collectCommandData(root, "", "")

	maxPathLength := 0
	for _, data := range commandData {
		if len(data.path) > maxPathLength {
			maxPathLength = len(data.path)
		}
	}

	fmt.Fprintln(out, "Commands and Subcommands:")
	for _, data := range commandData {
		if strings.Contains(data.path, "completion") || strings.Contains(data.path, " help") {
			continue
		}
		fmt.Fprintf(out, "  %s%s%s\n", data.path, strings.Repeat(" ", maxPathLength-len(data.path)+2), data.description)
	}
}

// collectCommandData walks the command tree depth-first.
func collectCommandData(cmd *cobra.Command, currentPath string, indent string) []commandInfo {
	fullPath := cmd.Name()
	if currentPath != "" {
		fullPath = currentPath + " " + cmd.Name()
	}

	all := []commandInfo{{path: indent + fullPath, description: cmd.Short}}
	for _, sub := range cmd.Commands() {
		all = append(all, collectCommandData(sub, fullPath, indent+"  ")...)
	}
	return all
}
