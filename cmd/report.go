package cmd

import (
	"fmt"

	"github.com/codepeek/codepeek/constants/lipgloss"
	"github.com/codepeek/codepeek/report"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// reportCmd: codepeek report <findings.json>
var reportCmd = &cobra.Command{
	Use:   "report [findings-file]",
	Short: "Enrich an analyzer findings file with source excerpts",
	Long: `The 'report' subcommand reads a JSON findings file produced by an analyzer,
attaches a source excerpt to every issue whose file is readable, and renders
the enriched report to the terminal or writes it as JSON. Issues whose files
are missing or unreadable keep their place in the report without an excerpt.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReport(cmd, args)
	},
}

func init() {
	reportCmd.Flags().String("out", "", "Write the enriched report as JSON to this path instead of rendering it")
	reportCmd.Flags().BoolP("stats", "s", false, "Show line-cache statistics after the batch")

	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	rootDependencies := handleRootCommand(cmd)
	if rootDependencies == nil {
		return fmt.Errorf("failed to initialize dependencies")
	}

	outPath, _ := cmd.Flags().GetString("out")
	showStats, _ := cmd.Flags().GetBool("stats")

	issues, err := report.LoadIssues(args[0])
	if err != nil {
		return err
	}

	spinner := pterm.DefaultSpinner.WithStyle(pterm.NewStyle(pterm.FgLightBlue)).WithSequence("⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏").WithDelay(100).WithRemoveWhenDone(true)

	spinnerEnrich, _ := spinner.Start(fmt.Sprintf("Extracting excerpts for %d issues...", len(issues)))
	enriched := report.Enrich(issues, rootDependencies.Extractor, rootDependencies.Config.ContextRadius)
	spinnerEnrich.Stop()
	fmt.Print("\r")

	if outPath != "" {
		if err := enriched.Write(outPath); err != nil {
			return err
		}
		fmt.Println(lipgloss.Green.Render(fmt.Sprintf("✓ Report written to %s", outPath)))
	} else {
		for _, detail := range enriched.Issues {
			fmt.Println(report.RenderIssue(detail, rootDependencies.Config.Theme))
		}
	}

	if showStats {
		stats := rootDependencies.Extractor.CacheStats()
		if enabled, ok := stats["cache_enabled"].(bool); !ok || !enabled {
			fmt.Println(lipgloss.Gray.Render("Line cache is disabled"))
			return nil
		}

		statsInfo := fmt.Sprintf("Cached files: %v - Hits: %v - Misses: %v - Hit rate: %.1f%%",
			stats["cached_files"], stats["cache_hits"], stats["cache_misses"], stats["hit_rate_percent"])
		fmt.Println(lipgloss.BoxStyle.Render(statsInfo))
	}

	return nil
}
