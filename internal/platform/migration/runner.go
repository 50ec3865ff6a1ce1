// Copyright (c) 2026 Bookly. All rights reserved.

// Package migration runs database schema migrations at application startup.
//
// Migrations are plain SQL files under data/migrations, applied with
// golang-migrate using the pgx/v5 driver.
package migration

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// RunUp applies all pending migrations from the given path against the
// database identified by dsn. A database that is already up to date is not
// an error.
func RunUp(dsn, path string, logger *slog.Logger) error {
	// golang-migrate selects its driver from the URL scheme; the pgx/v5
	// driver registers itself as "pgx5".
	migrateDSN := strings.Replace(dsn, "postgres://", "pgx5://", 1)
	sourceURL := "file://" + path

	migrator, err := migrate.New(sourceURL, migrateDSN)
	if err != nil {
		return fmt.Errorf("migration: failed to initialize: %w", err)
	}
	defer migrator.Close()

	migrator.Log = &migrateLogger{logger: logger}

	if err := migrator.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Info("migrations up to date")
			return nil
		}
		return fmt.Errorf("migration: failed to apply: %w", err)
	}

	version, dirty, err := migrator.Version()
	if err != nil {
		return fmt.Errorf("migration: failed to read version: %w", err)
	}

	logger.Info("migrations applied", slog.Uint64("version", uint64(version)), slog.Bool("dirty", dirty))

	return nil
}

// migrateLogger adapts slog to the migrate.Logger interface.
type migrateLogger struct {
	logger *slog.Logger
}

func (m *migrateLogger) Printf(format string, args ...any) {
	m.logger.Info("migrate: " + strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (m *migrateLogger) Verbose() bool { return false }
