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
	"CONFIG",

	"APP_TOKEN_SIGN_KEY",
	"APP_TOKEN_ISSUER",
	"APP_TOKEN_DURATION",
	"APP_PASSWORD_HASH_COST",

	"STORAGE_DB_DRIVER",
	"STORAGE_DB_DATABASE_URI",
	"STORAGE_FILES_TEMP_DIR",
	"STORAGE_FILES_MAX_UPLOAD_SIZE",
	"STORAGE_FILES_TEMP_FILE_TTL",

	"SERVER_ADDRESS",
	"SERVER_REQUEST_TIMEOUT",

	"ADAPTER_MEDIA_BASE_URL",
	"ADAPTER_MEDIA_CLOUD_NAME",
	"ADAPTER_MEDIA_API_KEY",
	"ADAPTER_MEDIA_API_SECRET",
	"ADAPTER_MEDIA_REQUEST_TIMEOUT",

	"WORKERS_TEMP_SWEEP_INTERVAL",
}

// clearEnvVars unsets every configuration variable for the duration of the
// test and restores the previous values afterwards.
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, k := range configEnvKeys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
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

// validConfig returns a config that passes validate after applyDefaults.
func validConfig() *StructuredConfig {
	return &StructuredConfig{
		App:     App{TokenSignKey: "secret"},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/blog"}},
		Adapter: Adapter{Media: Media{CloudName: "demo", APIKey: "key", APISecret: "shh"}},
	}
}
