package config

import (
	"errors"
	"testing"
)

func TestValidateDefaultsPass(t *testing.T) {
	t.Parallel()

	if err := Validate(NewDefaultConfig()); err != nil {
		t.Errorf("Validate(defaults) = %v, want nil", err)
	}
}

func TestValidateErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{
			name:   "empty reference",
			mutate: func(c *Config) { c.Locales.Reference = "" },
		},
		{
			name:   "reference listed as target",
			mutate: func(c *Config) { c.Locales.Targets = []string{c.Locales.Reference} },
		},
		{
			name:   "unparseable output language",
			mutate: func(c *Config) { c.Output.Language = "not a tag" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := NewDefaultConfig()
			tt.mutate(cfg)
			err := Validate(cfg)
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig via errors.Is", err)
			}
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	t.Parallel()

	ve := &ValidationError{Field: "locales.reference", Message: "must be set", Wrapped: ErrInvalidConfig}
	if got := ve.Error(); got == "" {
		t.Error("Error() should not be empty")
	}
	if !errors.Is(ve, ErrInvalidConfig) {
		t.Error("ValidationError should unwrap to ErrInvalidConfig")
	}
}
