// Package main implements the entry point for the Endorsa API server,
// which stores profiles, skills and the endorsements between them.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/endorsa/endorsa-api/internal/redact"
)

func main() {
	migrateCmd := flag.String("migrate", "",
		"run a database migration command (up, down, reset, status, version) and exit")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *migrateCmd); err != nil {
		log.Printf("endorsa-api: %s", redact.Error(err))
		stop()
		os.Exit(1)
	}
}

// run loads configuration, connects to the database and either executes a
// migration command or serves HTTP until ctx is cancelled.
func run(ctx context.Context, migrateCmd string) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	logger, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}

	db, err := setupAppDatabase(ctx, cfg, logger)
	if err != nil {
		return err
	}

	if migrateCmd != "" {
		defer func() { _ = db.Close() }()
		return handleMigrations(ctx, db, migrateCmd, logger)
	}

	if cfg.Database.AutoMigrate {
		if err := handleMigrations(ctx, db, "up", logger); err != nil {
			_ = db.Close()
			return err
		}
	}

	app, err := newApplication(cfg, logger, db)
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}
