package report

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	charmgloss "github.com/charmbracelet/lipgloss"
	"github.com/codepeek/codepeek/constants/lipgloss"
	"github.com/codepeek/codepeek/snippet/models"
)

// RenderSnippet renders the excerpt with gutter line numbers, a marker on the
// target line, and syntax highlighting for the remaining lines.
func RenderSnippet(snippet *models.Snippet, theme string) string {
	var builder strings.Builder

	language := languageFromPath(snippet.FilePath)
	numbers := snippet.LineNumbers()

	gutterWidth := 0
	for _, n := range numbers {
		if width := len(fmt.Sprint(n)); width > gutterWidth {
			gutterWidth = width
		}
	}

	for _, n := range numbers {
		text := snippet.Lines[n]

		if n == snippet.TargetLine {
			gutter := fmt.Sprintf("> %*d | ", gutterWidth, n)
			builder.WriteString(lipgloss.Yellow.Render(gutter + text))
			builder.WriteByte('\n')
			continue
		}

		builder.WriteString(lipgloss.Gray.Render(fmt.Sprintf("  %*d | ", gutterWidth, n)))
		builder.WriteString(highlightLine(text, language, theme))
		builder.WriteByte('\n')
	}

	return builder.String()
}

// RenderIssue renders a single enriched issue: a severity-styled header, the
// location, and the excerpt when one is attached.
func RenderIssue(detail IssueDetail, theme string) string {
	var builder strings.Builder

	header := fmt.Sprintf("[%s] %s", strings.ToUpper(string(detail.Severity)), detail.RuleID)
	builder.WriteString(severityStyle(detail.Severity).Render(header))
	builder.WriteByte('\n')
	builder.WriteString(detail.Message)
	builder.WriteByte('\n')
	builder.WriteString(lipgloss.Gray.Render(fmt.Sprintf("%s:%d", detail.Location.FilePath, detail.Location.Line)))
	builder.WriteByte('\n')

	if detail.Snippet != nil {
		builder.WriteString(RenderSnippet(detail.Snippet, theme))
	}

	return builder.String()
}

// highlightLine runs a single line through chroma, falling back to the raw
// text when highlighting fails.
func highlightLine(text string, language string, theme string) string {
	var buf bytes.Buffer
	if err := quick.Highlight(&buf, text, language, "terminal256", theme); err != nil {
		return text
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

// languageFromPath maps a file extension to a chroma lexer name.
func languageFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".php":
		return "php"
	case ".go":
		return "go"
	case ".js":
		return "javascript"
	case ".ts":
		return "typescript"
	case ".py":
		return "python"
	case ".java":
		return "java"
	case ".cs":
		return "csharp"
	case ".rb":
		return "ruby"
	default:
		return ""
	}
}

func severityStyle(severity Severity) charmgloss.Style {
	switch severity {
	case SeverityError:
		return lipgloss.Red
	case SeverityWarning:
		return lipgloss.Yellow
	default:
		return lipgloss.Info
	}
}
