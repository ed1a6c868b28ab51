package config

import "golang.org/x/text/language"

// Validate checks the configuration for values that would make a guard
// run meaningless. It returns a *ValidationErrors collecting every
// problem, or nil when the configuration is usable.
func Validate(cfg *Config) error {
	var errs []ValidationError

	if cfg.Locales.Reference == "" {
		errs = append(errs, ValidationError{
			Field:   "locales.reference",
			Message: "reference catalog must be set",
			Wrapped: ErrInvalidConfig,
		})
	}
	for _, target := range cfg.Locales.Targets {
		if target == cfg.Locales.Reference {
			errs = append(errs, ValidationError{
				Field:   "locales.targets",
				Message: "reference catalog listed as its own target",
				Value:   target,
				Wrapped: ErrInvalidConfig,
			})
		}
	}
	if _, err := language.Parse(cfg.Output.Language); err != nil {
		errs = append(errs, ValidationError{
			Field:   "output.language",
			Message: "not a recognizable language tag",
			Value:   cfg.Output.Language,
			Wrapped: ErrInvalidConfig,
		})
	}

	if len(errs) == 0 {
		return nil
	}
	return &ValidationErrors{Errors: errs}
}
