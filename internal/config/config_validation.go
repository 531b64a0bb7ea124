// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Supported values of DB.Driver.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

const (
	defaultTokenIssuer       = "go-blog"
	defaultTokenDuration     = time.Hour
	defaultPasswordHashCost  = 10
	defaultHTTPAddress       = ":8080"
	defaultMaxUploadSize     = 10 << 20
	defaultTempFileTTL       = time.Hour
	defaultMediaBaseURL      = "https://api.cloudinary.com"
	defaultMediaTimeout      = 30 * time.Second
	defaultTempSweepInterval = 10 * time.Minute
)

// applyDefaults fills optional fields left empty by every source.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}
	if cfg.App.PasswordHashCost == 0 {
		cfg.App.PasswordHashCost = defaultPasswordHashCost
	}
	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = DriverPostgres
	}
	if cfg.Storage.Files.TempDir == "" {
		cfg.Storage.Files.TempDir = filepath.Join(os.TempDir(), "go-blog-uploads")
	}
	if cfg.Storage.Files.MaxUploadSize == 0 {
		cfg.Storage.Files.MaxUploadSize = defaultMaxUploadSize
	}
	if cfg.Storage.Files.TempFileTTL == 0 {
		cfg.Storage.Files.TempFileTTL = defaultTempFileTTL
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Adapter.Media.BaseURL == "" {
		cfg.Adapter.Media.BaseURL = defaultMediaBaseURL
	}
	if cfg.Adapter.Media.RequestTimeout == 0 {
		cfg.Adapter.Media.RequestTimeout = defaultMediaTimeout
	}
	if cfg.Workers.TempSweepInterval == 0 {
		cfg.Workers.TempSweepInterval = defaultTempSweepInterval
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenDuration < 0 {
		return fmt.Errorf("%w: token sign key is required and token duration must be positive", ErrInvalidAppConfigs)
	}

	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}
	if cfg.Storage.Files.MaxUploadSize < 0 || cfg.Storage.Files.TempFileTTL < 0 {
		return fmt.Errorf("%w: upload limits must be positive", ErrInvalidStorageConfigs)
	}

	media := cfg.Adapter.Media
	if media.CloudName == "" || media.APIKey == "" || media.APISecret == "" {
		return fmt.Errorf("%w: media cloud name, api key and api secret are required", ErrInvalidAdapterConfigs)
	}

	if cfg.Workers.TempSweepInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
