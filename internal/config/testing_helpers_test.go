// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

var configEnvKeys = []string{
	"CONFIG", "JWT_SECRET", "DATABASE_URL",
	"APP_ENV", "APP_TOKEN_SIGN_KEY", "APP_TOKEN_ISSUER", "APP_TOKEN_DURATION",
	"APP_PASSWORD_HASH_COST", "APP_VERSION", "APP_LOG_LEVEL",
	"STORAGE_DB_DRIVER", "STORAGE_DB_DATABASE_URI", "STORAGE_DB_MAX_OPEN_CONNS",
	"SERVER_ADDRESS", "SERVER_REQUEST_TIMEOUT", "SERVER_SHUTDOWN_TIMEOUT",
	"RATE_LIMIT_REDIS_ADDRESS", "RATE_LIMIT_REDIS_PASSWORD", "RATE_LIMIT_REDIS_DB",
	"RATE_LIMIT_MAX_REQUESTS", "RATE_LIMIT_WINDOW",
	"ADAPTER_ADDRESS", "ADAPTER_REQUEST_TIMEOUT", "ADAPTER_TOKEN",
}

// clearEnv unsets every variable the config reads and restores them after
// the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configEnvKeys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func setEnv(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnv(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}
