// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	p := filepath.Join(t.TempDir(), "config.json")
	jsonBody := `{
		"app": {
			"token_sign_key": "jwt_secret",
			"token_issuer": "test_issuer",
			"token_duration": "1h",
			"password_hash_cost": 12
		},
		"server": {
			"http_address": "localhost:8080",
			"request_timeout": "30s"
		},
		"storage": {
			"db": { "driver": "sqlite", "dsn": "file:blog.db" },
			"files": { "temp_dir": "/var/tmp", "max_upload_size": 4096, "temp_file_ttl": "15m" }
		},
		"adapter": {
			"media": {
				"base_url": "http://media.local",
				"cloud_name": "demo",
				"api_key": "key",
				"api_secret": "shh",
				"request_timeout": "10s"
			}
		},
		"workers": { "temp_sweep_interval": "2m" }
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "test_issuer", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 12, cfg.App.PasswordHashCost)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)

	assert.Equal(t, "sqlite", cfg.Storage.DB.Driver)
	assert.Equal(t, "file:blog.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/var/tmp", cfg.Storage.Files.TempDir)
	assert.Equal(t, int64(4096), cfg.Storage.Files.MaxUploadSize)
	assert.Equal(t, 15*time.Minute, cfg.Storage.Files.TempFileTTL)

	assert.Equal(t, "demo", cfg.Adapter.Media.CloudName)
	assert.Equal(t, 10*time.Second, cfg.Adapter.Media.RequestTimeout)
	assert.Equal(t, 2*time.Minute, cfg.Workers.TempSweepInterval)

	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"app":{"token_duration":"forever"}}`), 0o600))

	_, err := parseJSON(p)
	assert.Error(t, err)
}

func TestDuration_JSON(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`"90s"`), &d))
	assert.Equal(t, 90*time.Second, time.Duration(d))

	require.NoError(t, json.Unmarshal([]byte(`1000000000`), &d))
	assert.Equal(t, time.Second, time.Duration(d))

	assert.Error(t, json.Unmarshal([]byte(`true`), &d))

	out, err := json.Marshal(Duration(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, `"1m0s"`, string(out))
}
