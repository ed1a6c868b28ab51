// Package report aggregates the guard's result streams into a single
// pass/fail report and serializes it for export.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/i18ngate/i18ngate/internal/docs"
	"github.com/i18ngate/i18ngate/internal/locale"
	"github.com/i18ngate/i18ngate/internal/scan"
)

// Report is the aggregated outcome of one guard run.
type Report struct {
	Passed      bool                `json:"passed"`
	LocaleDiffs []locale.DiffResult `json:"locale_diffs,omitempty"`
	Findings    []scan.Finding      `json:"findings,omitempty"`
	DocIssues   []docs.Issue        `json:"doc_issues,omitempty"`
	Timestamp   time.Time           `json:"timestamp"`
}

// New assembles a Report from the three result streams and computes the
// overall verdict.
func New(diffs []locale.DiffResult, findings []scan.Finding, docIssues []docs.Issue) *Report {
	r := &Report{
		LocaleDiffs: diffs,
		Findings:    findings,
		DocIssues:   docIssues,
		Timestamp:   time.Now(),
	}
	r.Passed = r.IssueCount() == 0
	return r
}

// IssueCount returns the total number of reported problems.
func (r *Report) IssueCount() int {
	count := len(r.Findings) + len(r.DocIssues)
	for _, d := range r.LocaleDiffs {
		if len(d.Missing) > 0 {
			count++
		}
		if len(d.Extra) > 0 {
			count++
		}
	}
	return count
}

// Export writes the report as indented JSON to the given path.
func (r *Report) Export(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}
	return nil
}
