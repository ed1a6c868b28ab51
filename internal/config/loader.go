package config

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads the configuration file at path and returns a Config with
// defaults applied for missing fields. A missing file yields the full
// default configuration; invalid YAML is an error.
func Load(path string) (*Config, error) {
	cfg := NewDefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Warn("configuration file not found, using defaults", "path", path)
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, ErrInvalidYAML)
	}

	applyDefaults(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyDefaults fills fields the file left empty. List fields keep the
// built-in defaults only when absent entirely; an explicit empty list
// in the file disables that surface.
func applyDefaults(cfg *Config) {
	if cfg.Locales.Dir == "" {
		cfg.Locales.Dir = DefaultLocalesDir
	}
	if cfg.Locales.Reference == "" {
		cfg.Locales.Reference = DefaultReference
	}
	if cfg.Scan.UIMarkers == nil {
		cfg.Scan.UIMarkers = append([]string(nil), DefaultUIMarkers...)
	}
	if cfg.Scan.CLIMarkers == nil {
		cfg.Scan.CLIMarkers = append([]string(nil), DefaultCLIMarkers...)
	}
	if cfg.Scan.I18nMarkers == nil {
		cfg.Scan.I18nMarkers = append([]string(nil), DefaultI18nMarkers...)
	}
	if cfg.Output.Language == "" {
		cfg.Output.Language = DefaultLanguage
	}
}
