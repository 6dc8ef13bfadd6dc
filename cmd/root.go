package cmd

import (
	"fmt"
	"os"

	"github.com/codepeek/codepeek/config"
	"github.com/codepeek/codepeek/constants/lipgloss"
	"github.com/codepeek/codepeek/snippet"
	"github.com/codepeek/codepeek/snippet/contracts"
	"github.com/spf13/cobra"
)

// RootDependencies holds the wiring shared by all subcommands.
type RootDependencies struct {
	Config    *config.Config
	Extractor contracts.ISnippetExtractor
	Cwd       string
}

var rootCmd = &cobra.Command{
	Use:   "codepeek",
	Short: "Extract bounded source-code excerpts around diagnostic locations.",
	Long: `codepeek extracts a bounded, human-readable excerpt of source lines around a
reported diagnostic location, for display in analysis reports. The excerpt is
edge-compensated at file boundaries and expanded backward, within a strict
budget, to include the header of the enclosing declaration when the naive
window would otherwise start mid-body.`,
	Run: func(cmd *cobra.Command, args []string) {
		if version, _ := cmd.Flags().GetBool("version"); version {
			fmt.Println(config.DefaultConfig.Version)
			return
		}
		_ = cmd.Help()
	},
}

// Execute runs the root command.
func Execute() {
	config.InitFlags(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("%v", err)))
		os.Exit(1)
	}
}

// handleRootCommand loads the configuration and builds the shared dependencies.
func handleRootCommand(cmd *cobra.Command) *RootDependencies {
	cwd, err := os.Getwd()
	if err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("Error getting current directory: %v", err)))
		return nil
	}

	cfg := config.LoadConfigs(rootCmd, cwd)

	return &RootDependencies{
		Config:    cfg,
		Extractor: snippet.NewSnippetExtractor(cfg.EnableCache),
		Cwd:       cwd,
	}
}
