package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/i18ngate/i18ngate/internal/config"
	"github.com/i18ngate/i18ngate/internal/ui"
)

// errInitCancelled signals that the user aborted the init wizard.
var errInitCancelled = errors.New("init cancelled")

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a .i18ngate.yaml configuration file",
	Long: `Interactively scaffold the guard configuration. Without a TTY the
defaults are written as-is; edit the file afterwards to list your scan
targets and required documentation links.`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().Bool("force", false, "overwrite an existing configuration file")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultConfigFile
	}
	force, _ := cmd.Flags().GetBool("force")
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	cfg := config.NewDefaultConfig()
	if !ui.NewHeadlessManager().IsHeadless() {
		if err := runInitWizard(cfg); err != nil {
			if errors.Is(err, errInitCancelled) {
				return nil
			}
			return err
		}
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal configuration: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	return nil
}

// runInitWizard asks for the catalog layout and output language.
// Each question runs as its own independent huh.Form to sidestep
// huh v0.8.x viewport scrolling issues with multi-group forms.
func runInitWizard(cfg *config.Config) error {
	targets := strings.Join(cfg.Locales.Targets, ", ")

	groups := []*huh.Group{
		huh.NewGroup(huh.NewInput().
			Title("Locales directory").
			Value(&cfg.Locales.Dir)),
		huh.NewGroup(huh.NewInput().
			Title("Reference catalog file").
			Description("every target locale is compared against this file").
			Value(&cfg.Locales.Reference)),
		huh.NewGroup(huh.NewInput().
			Title("Target catalog files").
			Description("comma-separated, e.g. zh-CN.yml, zh-HK.yml").
			Value(&targets)),
		huh.NewGroup(huh.NewSelect[string]().
			Title("Guard output language").
			Options(
				huh.NewOption("English", "en"),
				huh.NewOption("简体中文", "zh-CN"),
			).
			Value(&cfg.Output.Language)),
	}

	for _, g := range groups {
		if err := huh.NewForm(g).Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return errInitCancelled
			}
			return fmt.Errorf("init wizard: %w", err)
		}
	}

	cfg.Locales.Targets = cfg.Locales.Targets[:0]
	for _, target := range strings.Split(targets, ",") {
		if target = strings.TrimSpace(target); target != "" {
			cfg.Locales.Targets = append(cfg.Locales.Targets, target)
		}
	}
	return nil
}
