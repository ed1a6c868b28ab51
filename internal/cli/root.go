// Package cli wires the i18ngate commands: check, keys, scan, docs
// and init.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/i18ngate/i18ngate/pkg/version"
)

// errIssuesFound signals a completed run that found localization
// issues. The report has already been rendered; main only needs the
// non-zero exit status.
var errIssuesFound = errors.New("localization issues found")

var rootCmd = &cobra.Command{
	Use:   "i18ngate",
	Short: "i18ngate: localization-consistency guard",
	Long: `i18ngate guards a repository's localization surface.

It verifies that every locale catalog carries the same key set as the
reference catalog, and scans configured UI and CLI source files for
suspected hardcoded literals that bypassed the translation mechanism.`,
	Version:       version.GetVersion(),
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("i18ngate %s\n", version.GetVersion()))

	rootCmd.PersistentFlags().String("config", "", "configuration file (default .i18ngate.yaml)")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable styled output")
	rootCmd.PersistentFlags().String("lang", "", "language of guard messages (overrides config)")
}
