package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/i18ngate/i18ngate/internal/config"
	"github.com/i18ngate/i18ngate/internal/docs"
	"github.com/i18ngate/i18ngate/internal/locale"
	"github.com/i18ngate/i18ngate/internal/report"
	"github.com/i18ngate/i18ngate/internal/scan"
	"github.com/i18ngate/i18ngate/internal/ui"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run the full localization guard",
	Long: `Run every guard pass: locale key-set consistency, hardcoded-literal
scan over the UI and CLI surfaces, and documentation entry points.
Exits non-zero when any issue is found.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("json", "", "export the report as JSON to the given path")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, _ []string) error {
	env, err := loadEnv(cmd)
	if err != nil {
		return err
	}

	spin := ui.NewSpinner(env.theme, env.headless, env.t("scanning", nil))

	diffs, err := runKeyCheck(env.cfg)
	if err != nil {
		spin.Stop()
		return err
	}
	findings, err := runLiteralScan(env.cfg)
	if err != nil {
		spin.Stop()
		return err
	}
	docIssues, err := docs.Check(docs.Config{
		Entrypoints:   env.cfg.Docs.Entrypoints,
		Index:         env.cfg.Docs.Index,
		RequiredLinks: env.cfg.Docs.RequiredLinks,
	})
	spin.Stop()
	if err != nil {
		return err
	}

	rep := report.New(diffs, findings, docIssues)

	if jsonPath, _ := cmd.Flags().GetString("json"); jsonPath != "" {
		if err := rep.Export(jsonPath); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), env.t("report_exported", map[string]any{"Path": jsonPath}))
	}

	renderReport(cmd, env, rep)
	if !rep.Passed {
		cmd.SilenceErrors = true
		return errIssuesFound
	}
	return nil
}

// runKeyCheck loads the reference and target catalogs and diffs their
// key sets. A malformed catalog aborts the run.
func runKeyCheck(cfg *config.Config) ([]locale.DiffResult, error) {
	reference, err := locale.Load(cfg.ReferencePath())
	if err != nil {
		return nil, err
	}
	targets := make([]*locale.Catalog, 0, len(cfg.Locales.Targets))
	for _, path := range cfg.TargetPaths() {
		target, err := locale.Load(path)
		if err != nil {
			return nil, err
		}
		targets = append(targets, target)
	}
	return locale.CompareAll(reference, targets), nil
}

// runLiteralScan walks the configured UI and CLI targets.
func runLiteralScan(cfg *config.Config) ([]scan.Finding, error) {
	return scan.NewScanner(cfg.ScannerConfig()).Scan()
}
