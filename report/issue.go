package report

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/codepeek/codepeek/snippet/contracts"
	"github.com/codepeek/codepeek/snippet/models"
)

// Severity classifies how serious a reported issue is.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Location points at the source line a diagnostic refers to.
type Location struct {
	FilePath string `json:"file_path"`
	Line     int    `json:"line"`
}

// Issue is a single diagnostic produced by an analyzer.
type Issue struct {
	RuleID   string   `json:"rule_id"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	Location Location `json:"location"`
}

// IssueDetail is an issue enriched with a source excerpt around its location.
// The snippet is omitted when extraction failed; the issue still renders.
type IssueDetail struct {
	Issue
	Snippet *models.Snippet `json:"snippet,omitempty"`
}

// Report is the serializable result of enriching a findings file.
type Report struct {
	GeneratedAt time.Time     `json:"generated_at"`
	Issues      []IssueDetail `json:"issues"`
}

// LoadIssues reads a findings file containing a JSON array of issues.
func LoadIssues(path string) ([]Issue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read findings file: %w", err)
	}

	var issues []Issue
	if err := json.Unmarshal(data, &issues); err != nil {
		return nil, fmt.Errorf("failed to parse findings file: %w", err)
	}

	return issues, nil
}

// Enrich attaches a source excerpt to every issue whose file can be read.
func Enrich(issues []Issue, extractor contracts.ISnippetExtractor, contextRadius int) *Report {
	report := &Report{
		GeneratedAt: time.Now(),
		Issues:      make([]IssueDetail, 0, len(issues)),
	}

	for _, issue := range issues {
		detail := IssueDetail{Issue: issue}
		if snippet, ok := extractor.Extract(issue.Location.FilePath, issue.Location.Line, contextRadius); ok {
			detail.Snippet = snippet
		}
		report.Issues = append(report.Issues, detail)
	}

	return report
}

// Write serializes the report as indented JSON to the given path.
func (r *Report) Write(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write report file: %w", err)
	}

	return nil
}
