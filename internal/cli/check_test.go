package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/i18ngate/i18ngate/internal/config"
)

// writeGuardedRepo lays out a small repository fixture with a locale
// catalog pair and one UI source file, returning the config file path.
func writeGuardedRepo(t *testing.T, enYAML, zhYAML, viewSrc string) string {
	t.Helper()
	dir := t.TempDir()
	localesDir := filepath.Join(dir, "locales")
	if err := os.MkdirAll(localesDir, 0o755); err != nil {
		t.Fatalf("mkdir locales: %v", err)
	}
	files := map[string]string{
		filepath.Join(localesDir, "en.yml"):    enYAML,
		filepath.Join(localesDir, "zh-CN.yml"): zhYAML,
		filepath.Join(dir, "view.rs"):          viewSrc,
	}
	for path, content := range files {
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write fixture %s: %v", path, err)
		}
	}

	cfgContent := `
locales:
  dir: ` + localesDir + `
  reference: en.yml
  targets: [zh-CN.yml]
scan:
  ui_targets: ["` + filepath.Join(dir, "view.rs") + `"]
output:
  no_color: true
`
	cfgPath := filepath.Join(dir, ".i18ngate.yaml")
	if err := os.WriteFile(cfgPath, []byte(cfgContent), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return cfgPath
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	rootCmd.SetArgs(nil)

	// Reset sticky flag state so one test's flags never leak into the next.
	_ = rootCmd.PersistentFlags().Set("config", "")
	_ = rootCmd.PersistentFlags().Set("lang", "")
	_ = rootCmd.PersistentFlags().Set("no-color", "false")
	_ = checkCmd.Flags().Set("json", "")

	return out.String(), err
}

func TestCheckCleanRepo(t *testing.T) {
	cfgPath := writeGuardedRepo(t,
		"app:\n  title: Title\n",
		"app:\n  title: 标题\n",
		"Paragraph::new(t!(\"app.title\"))\n",
	)

	out, err := execute(t, "check", "--config", cfgPath)
	if err != nil {
		t.Fatalf("check on a clean repo failed: %v\noutput: %s", err, out)
	}
	if !strings.Contains(out, "passed") {
		t.Errorf("output = %q, want pass message", out)
	}
}

func TestCheckFindsKeyDriftAndLiterals(t *testing.T) {
	cfgPath := writeGuardedRepo(t,
		"app:\n  title: Title\n  subtitle: Sub\n",
		"app:\n  title: 标题\n  slogan: 口号\n",
		"Paragraph::new(\"Loading\")\n",
	)

	out, err := execute(t, "check", "--config", cfgPath)
	if !errors.Is(err, errIssuesFound) {
		t.Fatalf("check error = %v, want errIssuesFound\noutput: %s", err, out)
	}
	for _, want := range []string{"app.subtitle", "app.slogan", "Loading"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestCheckChineseOutput(t *testing.T) {
	cfgPath := writeGuardedRepo(t,
		"app:\n  title: Title\n",
		"app: {}\n",
		"",
	)

	out, err := execute(t, "check", "--config", cfgPath, "--lang", "zh-CN")
	if !errors.Is(err, errIssuesFound) {
		t.Fatalf("check error = %v, want errIssuesFound\noutput: %s", err, out)
	}
	if !strings.Contains(out, "缺失") {
		t.Errorf("output = %q, want localized Chinese missing-keys message", out)
	}
}

func TestCheckExportsJSON(t *testing.T) {
	cfgPath := writeGuardedRepo(t,
		"app:\n  title: Title\n",
		"app:\n  title: 标题\n",
		"Paragraph::new(\"Loading\")\n",
	)
	jsonPath := filepath.Join(t.TempDir(), "report.json")

	out, err := execute(t, "check", "--config", cfgPath, "--json", jsonPath)
	if !errors.Is(err, errIssuesFound) {
		t.Fatalf("check error = %v, want errIssuesFound\noutput: %s", err, out)
	}
	if _, statErr := os.Stat(jsonPath); statErr != nil {
		t.Errorf("exported report missing: %v", statErr)
	}
}

func TestCheckMalformedCatalogIsFatal(t *testing.T) {
	cfgPath := writeGuardedRepo(t,
		"app: [unterminated\n",
		"app: {}\n",
		"",
	)

	if _, err := execute(t, "check", "--config", cfgPath); err == nil {
		t.Fatal("check with a malformed reference catalog should fail")
	}
}

func TestRunKeyCheck(t *testing.T) {
	cfgPath := writeGuardedRepo(t,
		"a:\n  b: x\n  c: y\n",
		"a:\n  b: x\n  d: z\n",
		"",
	)
	cfg, err := config.Load(cfgPath)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	diffs, err := runKeyCheck(cfg)
	if err != nil {
		t.Fatalf("runKeyCheck() error: %v", err)
	}
	if len(diffs) != 1 {
		t.Fatalf("runKeyCheck() = %d diffs, want 1", len(diffs))
	}
	d := diffs[0]
	if len(d.Missing) != 1 || d.Missing[0] != "a.c" {
		t.Errorf("missing = %v, want [a.c]", d.Missing)
	}
	if len(d.Extra) != 1 || d.Extra[0] != "a.d" {
		t.Errorf("extra = %v, want [a.d]", d.Extra)
	}
}
