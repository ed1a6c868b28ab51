package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan UI and CLI sources for hardcoded literals only",
	RunE:  runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, _ []string) error {
	env, err := loadEnv(cmd)
	if err != nil {
		return err
	}

	findings, err := runLiteralScan(env.cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(findings) == 0 {
		fmt.Fprintln(out, env.theme.Success.Render(env.t("check_passed", nil)))
		return nil
	}

	for _, line := range findingLines(env, findings) {
		fmt.Fprintln(out, "- "+line)
	}
	cmd.SilenceErrors = true
	return errIssuesFound
}
