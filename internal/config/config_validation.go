package config

import (
	"errors"
	"fmt"
)

// validate checks the merged configuration for values the application
// cannot run without.
func (c *StructuredConfig) validate() error {
	var errs error

	if c.Storage.DB.DSN == "" {
		errs = errors.Join(errs, fmt.Errorf("%w: database DSN is required", errInvalidConfig))
	}

	if c.Server.HTTPAddress == "" {
		errs = errors.Join(errs, fmt.Errorf("%w: HTTP address is required", errInvalidConfig))
	}

	if c.App.BcryptCost < minBcryptCost || c.App.BcryptCost > maxBcryptCost {
		errs = errors.Join(errs, fmt.Errorf("%w: bcrypt cost %d outside [%d, %d]",
			errInvalidConfig, c.App.BcryptCost, minBcryptCost, maxBcryptCost))
	}

	return errs
}
