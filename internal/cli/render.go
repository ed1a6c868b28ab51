package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/i18ngate/i18ngate/internal/locale"
	"github.com/i18ngate/i18ngate/internal/report"
	"github.com/i18ngate/i18ngate/internal/scan"
)

// maxKeyExamples bounds how many missing/extra keys a diff line quotes.
const maxKeyExamples = 5

// renderReport prints the aggregated report: a success line when clean,
// or a bordered card listing every issue.
func renderReport(cmd *cobra.Command, env *guardEnv, rep *report.Report) {
	out := cmd.OutOrStdout()
	if rep.Passed {
		fmt.Fprintln(out, env.theme.Success.Render(env.t("check_passed", nil)))
		return
	}

	var lines []string
	lines = append(lines, diffLines(env, rep.LocaleDiffs)...)
	lines = append(lines, findingLines(env, rep.Findings)...)
	for _, issue := range rep.DocIssues {
		if issue.MissingLink == "" {
			lines = append(lines, env.t("doc_missing", map[string]any{"File": issue.File}))
			continue
		}
		lines = append(lines, env.t("doc_link_missing", map[string]any{
			"File": issue.File,
			"Link": issue.MissingLink,
		}))
	}

	header := env.theme.Failure.Render(env.t("check_failed", nil))
	body := "- " + strings.Join(lines, "\n- ")
	fmt.Fprintln(out, env.theme.Card(header, body))
}

func diffLines(env *guardEnv, diffs []locale.DiffResult) []string {
	var lines []string
	for _, d := range diffs {
		if len(d.Missing) > 0 {
			lines = append(lines, env.t("missing_keys", map[string]any{
				"Locale":   d.Locale,
				"Count":    len(d.Missing),
				"Examples": keyExamples(d.Missing),
			}))
		}
		if len(d.Extra) > 0 {
			lines = append(lines, env.t("extra_keys", map[string]any{
				"Locale":   d.Locale,
				"Count":    len(d.Extra),
				"Examples": keyExamples(d.Extra),
			}))
		}
	}
	return lines
}

func findingLines(env *guardEnv, findings []scan.Finding) []string {
	var lines []string
	for _, f := range findings {
		key := "suspect_ui"
		if f.Site == scan.SiteCLI {
			key = "suspect_cli"
		}
		lines = append(lines, env.t(key, map[string]any{
			"File":    f.File,
			"Line":    f.Line,
			"Literal": f.Literal,
		}))
	}
	return lines
}

func keyExamples(keys []string) string {
	if len(keys) > maxKeyExamples {
		keys = keys[:maxKeyExamples]
	}
	return strings.Join(keys, ", ")
}
