// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations holds the embedded goose migrations for every supported
// SQL dialect.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// ErrUnsupportedDialect is returned for a driver name without migrations.
var ErrUnsupportedDialect = errors.New("unsupported migration dialect")

// gooseDialects maps config driver names to goose dialects.
var gooseDialects = map[string]string{
	"postgres": "postgres",
	"sqlite":   "sqlite3",
}

// Migrate applies every pending migration of driver ("postgres" or "sqlite")
// to db.
func Migrate(db *sql.DB, driver string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	dialect, ok := gooseDialects[driver]
	if !ok {
		return fmt.Errorf("migration error: %w: %q", ErrUnsupportedDialect, driver)
	}

	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, driver); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
