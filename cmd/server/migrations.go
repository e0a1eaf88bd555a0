package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/endorsa/endorsa-api/internal/platform/postgres"
	"github.com/jmoiron/sqlx"
)

// handleMigrations runs one goose command against the embedded migrations.
func handleMigrations(ctx context.Context, db *sqlx.DB, migrateCmd string, logger *slog.Logger) error {
	logger.Info("Executing migrations", "command", migrateCmd)

	if err := postgres.Migrate(ctx, db.DB, migrateCmd, logger); err != nil {
		return fmt.Errorf("migration %q failed: %w", migrateCmd, err)
	}
	return nil
}
