package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is the singleton validator instance.
var validate = validator.New()

// Validate checks the configuration against its struct tags.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return formatValidationError(err)
	}

	if cfg.Analysis.RecentDays >= cfg.Analysis.StaleDays {
		return fmt.Errorf("analysis: recent_days (%d) must be smaller than stale_days (%d)",
			cfg.Analysis.RecentDays, cfg.Analysis.StaleDays)
	}

	return nil
}

// formatValidationError converts validator errors into user-friendly
// messages.
func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return err
	}

	e := validationErrs[0]

	return fmt.Errorf("%s: validation failed on '%s' tag (value: %v)",
		e.Namespace(), e.Tag(), e.Value())
}
