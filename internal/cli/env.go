package cli

import (
	"github.com/spf13/cobra"

	"github.com/i18ngate/i18ngate/internal/config"
	"github.com/i18ngate/i18ngate/internal/msg"
	"github.com/i18ngate/i18ngate/internal/ui"
)

// guardEnv bundles the per-run collaborators every command needs.
type guardEnv struct {
	cfg      *config.Config
	theme    *ui.Theme
	headless *ui.HeadlessManager
	tr       *msg.Translator
	lang     string
}

// loadEnv resolves flags and configuration into a guardEnv.
func loadEnv(cmd *cobra.Command) (*guardEnv, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultConfigFile
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	noColor, _ := cmd.Flags().GetBool("no-color")
	lang, _ := cmd.Flags().GetString("lang")
	if lang == "" {
		lang = cfg.Output.Language
	}

	return &guardEnv{
		cfg:      cfg,
		theme:    ui.NewTheme(noColor || cfg.Output.NoColor),
		headless: ui.NewHeadlessManager(),
		tr:       msg.NewTranslator(config.DefaultLanguage),
		lang:     lang,
	}, nil
}

// t localizes one of the guard's own messages.
func (e *guardEnv) t(key string, data map[string]any) string {
	return e.tr.T(e.lang, key, data)
}
