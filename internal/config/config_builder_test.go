// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilderFailsWithoutDSN(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

func TestBuild_AppliesDefaults(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Storage: Storage{DB: DB{DSN: "postgres://localhost/agromatch"}}})

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.App.Env)
	assert.Equal(t, "agromatch", cfg.App.TokenIssuer)
	assert.Equal(t, 168*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 10, cfg.App.PasswordHashCost)
	assert.Equal(t, DriverPostgres, cfg.Storage.DB.Driver)
	assert.Equal(t, ":8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 10, cfg.RateLimit.MaxRequests)
	assert.False(t, cfg.RateLimit.Enabled())
}

func TestBuild_DevelopmentFallsBackToDevSignKey(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Storage: Storage{DB: DB{DSN: "dsn"}}})

	cfg, err := b.build()
	require.NoError(t, err)
	assert.True(t, cfg.App.UsesDevTokenSignKey())
}

func TestBuild_ProductionRequiresSignKey(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		App:     App{Env: EnvProduction},
		Storage: Storage{DB: DB{DSN: "dsn"}},
	})

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_LaterConfigsOverride(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "1.0.0", TokenIssuer: "env-issuer"}, Storage: Storage{DB: DB{DSN: "dsn"}}},
		&StructuredConfig{App: App{TokenIssuer: "flag-issuer"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "flag-issuer", cfg.App.TokenIssuer)
}

// ── withEnv / withFlags / withJSON ────────────────────────────────────────────

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnv(t, map[string]string{
		"APP_VERSION":      "env-version",
		"APP_TOKEN_ISSUER": "env-issuer",
	})

	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, "env-issuer", b.configs[0].App.TokenIssuer)
}

func TestWithEnv_InvalidValueSetsError(t *testing.T) {
	setEnv(t, map[string]string{"APP_TOKEN_DURATION": "forever"})

	b := newConfigBuilder().withEnv()
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithFlags_InvalidFlagSetsError(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-unknown"})
	assert.Error(t, b.err)
}

func TestWithJSON_SkippedWithoutPath(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()
	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_MissingFileSetsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: filepath.Join(t.TempDir(), "missing.json")})

	b.withJSON()
	assert.Error(t, b.err)
}

// ── full pipeline ─────────────────────────────────────────────────────────────

func TestPipeline_PriorityOrder(t *testing.T) {
	jsonPath := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{"version": "json-version"},
	})
	setEnv(t, map[string]string{
		"STORAGE_DB_DATABASE_URI": "postgres://env/db",
		"APP_TOKEN_ISSUER":        "env-issuer",
		"APP_VERSION":             "env-version",
		"CONFIG":                  jsonPath,
	})

	cfg, err := newConfigBuilder().
		withEnv().
		withFlags([]string{"-token-issuer", "flag-issuer", "-a", "localhost:9000"}).
		withJSON().
		build()
	require.NoError(t, err)

	assert.Equal(t, "postgres://env/db", cfg.Storage.DB.DSN)
	assert.Equal(t, "flag-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, "localhost:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, "json-version", cfg.App.Version)
}

func TestPipeline_DotEnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DATABASE_URL=postgres://dotenv/db\nJWT_SECRET=dotenv-secret\n"), 0o600))
	t.Cleanup(func() {
		_ = os.Unsetenv("DATABASE_URL")
		_ = os.Unsetenv("JWT_SECRET")
	})

	cfg, err := newConfigBuilder().withDotEnv(path).withEnv().build()
	require.NoError(t, err)

	assert.Equal(t, "postgres://dotenv/db", cfg.Storage.DB.DSN)
	assert.Equal(t, "dotenv-secret", cfg.App.TokenSignKey)
}

func TestWithDotEnv_MissingFileIgnored(t *testing.T) {
	b := newConfigBuilder().withDotEnv(filepath.Join(t.TempDir(), "nope.env"))
	assert.NoError(t, b.err)
}
