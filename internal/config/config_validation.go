// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// startup invariants. Every violated group is reported, joined into one error.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	switch cfg.App.Env {
	case EnvDevelopment, EnvProduction:
	default:
		errs = append(errs, fmt.Errorf("%w: unknown environment %q", ErrInvalidAppConfigs, cfg.App.Env))
	}
	if cfg.App.TokenSignKey == "" {
		errs = append(errs, fmt.Errorf("%w: token sign key is required in production", ErrInvalidAppConfigs))
	}
	if cfg.App.IsProduction() && cfg.App.UsesDevTokenSignKey() {
		errs = append(errs, fmt.Errorf("%w: development token sign key used in production", ErrInvalidAppConfigs))
	}
	if cfg.App.TokenDuration <= 0 {
		errs = append(errs, fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs))
	}
	if cfg.App.PasswordHashCost < bcrypt.MinCost || cfg.App.PasswordHashCost > bcrypt.MaxCost {
		errs = append(errs, fmt.Errorf("%w: password hash cost must be within %d..%d",
			ErrInvalidAppConfigs, bcrypt.MinCost, bcrypt.MaxCost))
	}

	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		errs = append(errs, fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver))
	}
	if cfg.Storage.DB.DSN == "" {
		errs = append(errs, fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs))
	}

	if cfg.Server.RequestTimeout <= 0 || cfg.Server.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Errorf("%w: timeouts must be positive", ErrInvalidServerConfigs))
	}

	if cfg.RateLimit.Enabled() && (cfg.RateLimit.MaxRequests < 1 || cfg.RateLimit.Window <= 0) {
		errs = append(errs, fmt.Errorf("%w: max requests and window must be positive", ErrInvalidRateLimitConfigs))
	}

	return errors.Join(errs...)
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
