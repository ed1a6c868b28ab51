package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/i18ngate/i18ngate/internal/docs"
	"github.com/i18ngate/i18ngate/internal/locale"
	"github.com/i18ngate/i18ngate/internal/scan"
)

func TestNewCleanReportPasses(t *testing.T) {
	t.Parallel()

	rep := New([]locale.DiffResult{{Locale: "zh-CN"}}, nil, nil)
	if !rep.Passed {
		t.Error("report with no issues should pass")
	}
	if rep.IssueCount() != 0 {
		t.Errorf("IssueCount() = %d, want 0", rep.IssueCount())
	}
}

func TestNewFailingReport(t *testing.T) {
	t.Parallel()

	diffs := []locale.DiffResult{
		{Locale: "zh-CN", Missing: []string{"a.c"}, Extra: []string{"a.d"}},
	}
	findings := []scan.Finding{
		{File: "src/views/home.rs", Line: 10, Literal: "Loading", Site: scan.SiteUI},
	}
	docIssues := []docs.Issue{{File: "README_zh-CN.md"}}

	rep := New(diffs, findings, docIssues)
	if rep.Passed {
		t.Error("report with issues should fail")
	}
	// One missing group, one extra group, one finding, one doc issue.
	if got := rep.IssueCount(); got != 4 {
		t.Errorf("IssueCount() = %d, want 4", got)
	}
}

func TestExport(t *testing.T) {
	t.Parallel()

	rep := New(nil, []scan.Finding{
		{File: "cli.rs", Line: 3, Literal: "oops english", Site: scan.SiteCLI},
	}, nil)

	path := filepath.Join(t.TempDir(), "report.json")
	if err := rep.Export(path); err != nil {
		t.Fatalf("Export() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	var decoded Report
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("exported report is not valid JSON: %v", err)
	}
	if decoded.Passed {
		t.Error("decoded report should fail")
	}
	if len(decoded.Findings) != 1 || decoded.Findings[0].Literal != "oops english" {
		t.Errorf("decoded findings = %+v", decoded.Findings)
	}
}
