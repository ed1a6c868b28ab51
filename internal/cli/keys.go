package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Check locale key-set consistency only",
	RunE:  runKeys,
}

func init() {
	rootCmd.AddCommand(keysCmd)
}

func runKeys(cmd *cobra.Command, _ []string) error {
	env, err := loadEnv(cmd)
	if err != nil {
		return err
	}

	diffs, err := runKeyCheck(env.cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	clean := true
	for _, d := range diffs {
		if d.Clean() {
			fmt.Fprintln(out, env.theme.Muted.Render(env.t("keys_clean", map[string]any{"Locale": d.Locale})))
			continue
		}
		clean = false
	}
	if clean {
		fmt.Fprintln(out, env.theme.Success.Render(env.t("check_passed", nil)))
		return nil
	}

	for _, line := range diffLines(env, diffs) {
		fmt.Fprintln(out, "- "+line)
	}
	cmd.SilenceErrors = true
	return errIssuesFound
}
