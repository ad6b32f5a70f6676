// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
//
// The legacy JWT_SECRET and DATABASE_URL variables are applied when their
// structured counterparts are empty.
func parseEnv(cfg *StructuredConfig) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	if cfg.App.TokenSignKey == "" {
		cfg.App.TokenSignKey = cfg.LegacyJWTSecret
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = cfg.LegacyDatabaseURL
	}

	return nil
}
