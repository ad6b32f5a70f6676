// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// DefaultVersion is reported by builds that set no version.
const DefaultVersion = "dev"

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Env:              EnvDevelopment,
			TokenIssuer:      "agromatch",
			TokenDuration:    7 * 24 * time.Hour,
			PasswordHashCost: 10,
			Version:          DefaultVersion,
			LogLevel:         "info",
		},
		Storage: Storage{
			DB: DB{
				Driver:       DriverPostgres,
				MaxOpenConns: 10,
			},
		},
		Server: Server{
			HTTPAddress:     ":8080",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		RateLimit: RateLimit{
			MaxRequests: 10,
			Window:      time.Minute,
		},
		Adapter: Adapter{
			HTTPAddress:    "http://localhost:8080",
			RequestTimeout: 10 * time.Second,
		},
	}
}

// resolveTokenSignKey falls back to the development secret when no key is
// configured outside production.
func (cfg *StructuredConfig) resolveTokenSignKey() {
	if cfg.App.TokenSignKey == "" && !cfg.App.IsProduction() {
		cfg.App.TokenSignKey = DevTokenSignKey
	}
}
