// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_TOKEN_SIGN_KEY":     "jwt_secret",
		"APP_TOKEN_ISSUER":       "test_issuer",
		"APP_TOKEN_DURATION":     "2h",
		"APP_PASSWORD_HASH_COST": "12",

		"STORAGE_DB_DRIVER":             "sqlite",
		"STORAGE_DB_DATABASE_URI":       "file:blog.db",
		"STORAGE_FILES_TEMP_DIR":        "/var/tmp/uploads",
		"STORAGE_FILES_MAX_UPLOAD_SIZE": "1048576",
		"STORAGE_FILES_TEMP_FILE_TTL":   "30m",

		"SERVER_ADDRESS":         "localhost:8080",
		"SERVER_REQUEST_TIMEOUT": "30s",

		"ADAPTER_MEDIA_BASE_URL":        "http://media.local",
		"ADAPTER_MEDIA_CLOUD_NAME":      "demo",
		"ADAPTER_MEDIA_API_KEY":         "key",
		"ADAPTER_MEDIA_API_SECRET":      "shh",
		"ADAPTER_MEDIA_REQUEST_TIMEOUT": "5s",

		"WORKERS_TEMP_SWEEP_INTERVAL": "1m",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "test_issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 12, cfg.App.PasswordHashCost)

	assert.Equal(t, "sqlite", cfg.Storage.DB.Driver)
	assert.Equal(t, "file:blog.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/var/tmp/uploads", cfg.Storage.Files.TempDir)
	assert.Equal(t, int64(1048576), cfg.Storage.Files.MaxUploadSize)
	assert.Equal(t, 30*time.Minute, cfg.Storage.Files.TempFileTTL)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)

	assert.Equal(t, Media{
		BaseURL:        "http://media.local",
		CloudName:      "demo",
		APIKey:         "key",
		APISecret:      "shh",
		RequestTimeout: 5 * time.Second,
	}, cfg.Adapter.Media)

	assert.Equal(t, time.Minute, cfg.Workers.TempSweepInterval)
}

func TestParseEnv_Empty(t *testing.T) {
	clearEnvVars(t)

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidNumber(t *testing.T) {
	setEnvVars(t, map[string]string{"APP_PASSWORD_HASH_COST": "high"})

	err := parseEnv(&StructuredConfig{})
	assert.Error(t, err)
}
