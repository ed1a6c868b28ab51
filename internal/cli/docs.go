package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/i18ngate/i18ngate/internal/docs"
)

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Check localized documentation entry points",
	RunE:  runDocsCheck,
}

var docsPreviewCmd = &cobra.Command{
	Use:   "preview <file>",
	Short: "Render a markdown document in the terminal",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocsPreview,
}

func init() {
	docsCmd.AddCommand(docsPreviewCmd)
	rootCmd.AddCommand(docsCmd)
}

func runDocsCheck(cmd *cobra.Command, _ []string) error {
	env, err := loadEnv(cmd)
	if err != nil {
		return err
	}

	issues, err := docs.Check(docs.Config{
		Entrypoints:   env.cfg.Docs.Entrypoints,
		Index:         env.cfg.Docs.Index,
		RequiredLinks: env.cfg.Docs.RequiredLinks,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(issues) == 0 {
		fmt.Fprintln(out, env.theme.Success.Render(env.t("check_passed", nil)))
		return nil
	}
	for _, issue := range issues {
		if issue.MissingLink == "" {
			fmt.Fprintln(out, "- "+env.t("doc_missing", map[string]any{"File": issue.File}))
			continue
		}
		fmt.Fprintln(out, "- "+env.t("doc_link_missing", map[string]any{
			"File": issue.File,
			"Link": issue.MissingLink,
		}))
	}
	cmd.SilenceErrors = true
	return errIssuesFound
}

func runDocsPreview(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read document %s: %w", args[0], err)
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return fmt.Errorf("create markdown renderer: %w", err)
	}
	rendered, err := renderer.Render(string(data))
	if err != nil {
		return fmt.Errorf("render document %s: %w", args[0], err)
	}
	fmt.Fprint(cmd.OutOrStdout(), rendered)
	return nil
}
