package config

import (
	"path/filepath"

	"github.com/i18ngate/i18ngate/internal/scan"
)

// Default configuration values.
const (
	// DefaultConfigFile is the configuration file name looked up in the
	// working directory.
	DefaultConfigFile = ".i18ngate.yaml"

	// DefaultLocalesDir is the catalog directory.
	DefaultLocalesDir = "locales"

	// DefaultReference is the reference catalog file.
	DefaultReference = "en.yml"

	// DefaultLanguage is the locale of the guard's own messages.
	DefaultLanguage = "en"
)

// DefaultUIMarkers identify widget/paragraph/line/span/cell constructors
// and title setters of a ratatui-style rendering layer. Override per
// project.
var DefaultUIMarkers = []string{
	"Paragraph::new(",
	"Line::from(",
	"Line::styled(",
	"Span::raw(",
	"Span::styled(",
	"Cell::from(",
	".title(",
}

// DefaultCLIMarkers identify help-text emitters, message fields and
// format invocations on the CLI surface.
var DefaultCLIMarkers = []string{
	"help_text(",
	"message:",
	"format!(",
}

// DefaultI18nMarkers are the translation-call tokens masked before
// literal extraction.
var DefaultI18nMarkers = []string{"t!"}

// NewDefaultConfig returns a Config with all defaults applied.
func NewDefaultConfig() *Config {
	return &Config{
		Locales: LocalesConfig{
			Dir:       DefaultLocalesDir,
			Reference: DefaultReference,
			Targets:   []string{"zh-CN.yml"},
		},
		Scan: ScanConfig{
			UIMarkers:   append([]string(nil), DefaultUIMarkers...),
			CLIMarkers:  append([]string(nil), DefaultCLIMarkers...),
			I18nMarkers: append([]string(nil), DefaultI18nMarkers...),
		},
		Output: OutputConfig{
			Language: DefaultLanguage,
		},
	}
}

// ReferencePath returns the reference catalog path.
func (c *Config) ReferencePath() string {
	return filepath.Join(c.Locales.Dir, c.Locales.Reference)
}

// TargetPaths returns the target catalog paths in configured order.
func (c *Config) TargetPaths() []string {
	paths := make([]string, 0, len(c.Locales.Targets))
	for _, target := range c.Locales.Targets {
		paths = append(paths, filepath.Join(c.Locales.Dir, target))
	}
	return paths
}

// AllowedTokens resolves the effective allowed-token list: the built-in
// list unless replaced, plus any project-specific extras.
func (c *Config) AllowedTokens() []string {
	base := scan.DefaultAllowedTokens
	if len(c.Scan.AllowedTokens) > 0 {
		base = c.Scan.AllowedTokens
	}
	tokens := make([]string, 0, len(base)+len(c.Scan.ExtraAllowedTokens))
	tokens = append(tokens, base...)
	tokens = append(tokens, c.Scan.ExtraAllowedTokens...)
	return tokens
}

// ScannerConfig assembles the scan.Config for this guard run.
func (c *Config) ScannerConfig() scan.Config {
	return scan.Config{
		UITargets:     c.Scan.UITargets,
		CLITargets:    c.Scan.CLITargets,
		UIMarkers:     c.Scan.UIMarkers,
		CLIMarkers:    c.Scan.CLIMarkers,
		I18nMarkers:   c.Scan.I18nMarkers,
		AllowedTokens: c.AllowedTokens(),
	}
}
