package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/codepeek/codepeek/constants/lipgloss"
	"github.com/codepeek/codepeek/report"
	"github.com/spf13/cobra"
)

// showCmd: codepeek show <file> <line>
var showCmd = &cobra.Command{
	Use:   "show [file] [line]",
	Short: "Extract and render the excerpt around one source line",
	Long: `The 'show' subcommand extracts the excerpt around a single target line and
renders it with gutter line numbers. The window is widened toward the opposite
side when the target sits near a file boundary, and pulled back to the nearest
enclosing declaration header when the budget allows it.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShow(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	rootDependencies := handleRootCommand(cmd)
	if rootDependencies == nil {
		return fmt.Errorf("failed to initialize dependencies")
	}

	filePath := args[0]
	targetLine, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid line number %q: %w", args[1], err)
	}

	snippet, ok := rootDependencies.Extractor.Extract(filePath, targetLine, rootDependencies.Config.ContextRadius)
	if !ok {
		fmt.Println(lipgloss.Yellow.Render(fmt.Sprintf("No snippet available for %s:%d", filePath, targetLine)))
		return nil
	}

	if rootDependencies.Config.Output == "json" {
		data, err := json.MarshalIndent(snippet, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode snippet: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Println(lipgloss.Info.Render(fmt.Sprintf("%s:%d", filePath, targetLine)))
	fmt.Print(report.RenderSnippet(snippet, rootDependencies.Config.Theme))

	return nil
}
