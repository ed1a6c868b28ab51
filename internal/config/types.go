package config

// Config is the root configuration aggregate read from .i18ngate.yaml.
// All values are static for the lifetime of a guard run.
type Config struct {
	Locales LocalesConfig `yaml:"locales"`
	Scan    ScanConfig    `yaml:"scan"`
	Docs    DocsConfig    `yaml:"docs"`
	Output  OutputConfig  `yaml:"output"`
}

// LocalesConfig describes the translation catalog to verify.
type LocalesConfig struct {
	// Dir is the directory holding the catalog files.
	Dir string `yaml:"dir"`

	// Reference is the catalog file every target is compared against.
	Reference string `yaml:"reference"`

	// Targets are the catalog files whose key sets must match the
	// reference.
	Targets []string `yaml:"targets"`
}

// ScanConfig describes the hardcoded-literal scan surface.
type ScanConfig struct {
	// UITargets and CLITargets are source files to scan, as paths or
	// glob patterns relative to the working directory.
	UITargets  []string `yaml:"ui_targets"`
	CLITargets []string `yaml:"cli_targets"`

	// UIMarkers and CLIMarkers are the call-site marker substrings; a
	// source line is only inspected when it contains one.
	UIMarkers  []string `yaml:"ui_markers"`
	CLIMarkers []string `yaml:"cli_markers"`

	// I18nMarkers are translation-call tokens masked before extraction.
	I18nMarkers []string `yaml:"i18n_markers"`

	// AllowedTokens replaces the built-in allowed Latin token list when
	// non-empty; ExtraAllowedTokens appends to whichever list is active.
	AllowedTokens      []string `yaml:"allowed_tokens"`
	ExtraAllowedTokens []string `yaml:"extra_allowed_tokens"`
}

// DocsConfig describes the documentation entry-point check.
type DocsConfig struct {
	Entrypoints   []string `yaml:"entrypoints"`
	Index         string   `yaml:"index"`
	RequiredLinks []string `yaml:"required_links"`
}

// OutputConfig controls how the guard presents its report.
type OutputConfig struct {
	// Language is the locale for the guard's own messages ("en", "zh-CN").
	Language string `yaml:"language"`

	// NoColor disables styled terminal output.
	NoColor bool `yaml:"no_color"`
}
