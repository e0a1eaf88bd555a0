package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/endorsa/endorsa-api/internal/config"
	"github.com/endorsa/endorsa-api/internal/platform/postgres"
	"github.com/endorsa/endorsa-api/internal/redact"
	"github.com/endorsa/endorsa-api/internal/service"
	"github.com/endorsa/endorsa-api/internal/service/auth"
	"github.com/endorsa/endorsa-api/internal/store"
	"github.com/jmoiron/sqlx"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sqlx.DB

	profileStore     store.ProfileStore
	skillStore       store.SkillStore
	endorsementStore store.EndorsementStore

	jwtService         auth.JWTService
	profileService     service.ProfileService
	skillService       service.SkillService
	endorsementService service.EndorsementService
}

// newApplication wires stores, services and the token verifier around an
// already connected database.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sqlx.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT verification initialized", "algorithm", cfg.Auth.Algorithm)

	app.profileStore = postgres.NewPostgresProfileStore(db, logger)
	app.skillStore = postgres.NewPostgresSkillStore(db, logger)
	app.endorsementStore = postgres.NewPostgresEndorsementStore(db, logger)

	app.profileService, err = service.NewProfileService(db, app.profileStore, app.endorsementStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile service: %w", err)
	}

	app.skillService, err = service.NewSkillService(db, app.skillStore, app.endorsementStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create skill service: %w", err)
	}

	app.endorsementService, err = service.NewEndorsementService(db, app.endorsementStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create endorsement service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", redact.Attr(err))
		}
	}

	app.logger.Info("Application shutdown completed")
}
