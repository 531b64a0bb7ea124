// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for JSON files. Durations
// are written as strings ("1h", "30s").
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey     string   `json:"token_sign_key"`
		TokenIssuer      string   `json:"token_issuer"`
		TokenDuration    Duration `json:"token_duration"`
		PasswordHashCost int      `json:"password_hash_cost"`
	} `json:"app"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db"`

		Files struct {
			TempDir       string   `json:"temp_dir"`
			MaxUploadSize int64    `json:"max_upload_size"`
			TempFileTTL   Duration `json:"temp_file_ttl"`
		} `json:"files"`
	} `json:"storage"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server"`

	Adapter struct {
		Media struct {
			BaseURL        string   `json:"base_url"`
			CloudName      string   `json:"cloud_name"`
			APIKey         string   `json:"api_key"`
			APISecret      string   `json:"api_secret"`
			RequestTimeout Duration `json:"request_timeout"`
		} `json:"media"`
	} `json:"adapter"`

	Workers struct {
		TempSweepInterval Duration `json:"temp_sweep_interval"`
	} `json:"workers"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:     jsonCfg.App.TokenSignKey,
			TokenIssuer:      jsonCfg.App.TokenIssuer,
			TokenDuration:    time.Duration(jsonCfg.App.TokenDuration),
			PasswordHashCost: jsonCfg.App.PasswordHashCost,
		},
		Storage: Storage{
			DB: DB{
				Driver: jsonCfg.Storage.DB.Driver,
				DSN:    jsonCfg.Storage.DB.DSN,
			},
			Files: Files{
				TempDir:       jsonCfg.Storage.Files.TempDir,
				MaxUploadSize: jsonCfg.Storage.Files.MaxUploadSize,
				TempFileTTL:   time.Duration(jsonCfg.Storage.Files.TempFileTTL),
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			Media: Media{
				BaseURL:        jsonCfg.Adapter.Media.BaseURL,
				CloudName:      jsonCfg.Adapter.Media.CloudName,
				APIKey:         jsonCfg.Adapter.Media.APIKey,
				APISecret:      jsonCfg.Adapter.Media.APISecret,
				RequestTimeout: time.Duration(jsonCfg.Adapter.Media.RequestTimeout),
			},
		},
		Workers: Workers{
			TempSweepInterval: time.Duration(jsonCfg.Workers.TempSweepInterval),
		},
	}, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as plain nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
