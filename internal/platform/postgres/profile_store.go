package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/endorsa/endorsa-api/internal/domain"
	"github.com/endorsa/endorsa-api/internal/platform/logger"
	"github.com/endorsa/endorsa-api/internal/store"
	"github.com/jmoiron/sqlx"
)

const profileColumns = `id, first_name, last_name, location, description, contact`

// PostgresProfileStore implements the store.ProfileStore interface
// using a PostgreSQL database as the storage backend.
type PostgresProfileStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresProfileStore creates a new PostgreSQL implementation of the ProfileStore interface.
// It accepts a connection pool or transaction that is managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresProfileStore(db store.DBTX, logger *slog.Logger) *PostgresProfileStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresProfileStore{
		db:     db,
		logger: logger.With(slog.String("component", "profile_store")),
	}
}

// Ensure PostgresProfileStore implements store.ProfileStore interface
var _ store.ProfileStore = (*PostgresProfileStore)(nil)

// WithTx implements store.ProfileStore.WithTx
func (s *PostgresProfileStore) WithTx(tx *sqlx.Tx) store.ProfileStore {
	return &PostgresProfileStore{db: tx, logger: s.logger}
}

// Create implements store.ProfileStore.Create
func (s *PostgresProfileStore) Create(ctx context.Context, profile *domain.Profile) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := profile.Validate(); err != nil {
		log.Warn("profile validation failed during create", slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO profiles (first_name, last_name, location, description, contact)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := s.db.QueryRowxContext(
		ctx,
		query,
		profile.FirstName,
		profile.LastName,
		profile.Location,
		profile.Description,
		profile.Contact,
	).Scan(&profile.ID)
	if err != nil {
		if IsNotNullViolation(err) {
			log.Warn("missing required column during profile creation", slog.String("error", err.Error()))
		} else {
			log.Error("failed to create profile", slog.String("error", err.Error()))
		}
		return store.NewStoreError("profile", "create", "insert failed", MapError(err))
	}

	log.Info("profile created successfully", slog.Int64("profile_id", profile.ID))
	return nil
}

// GetByID implements store.ProfileStore.GetByID
func (s *PostgresProfileStore) GetByID(ctx context.Context, id int64) (*domain.Profile, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var profile domain.Profile
	err := s.db.GetContext(ctx, &profile, `SELECT `+profileColumns+` FROM profiles WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("profile not found", slog.Int64("profile_id", id))
			return nil, store.ErrProfileNotFound
		}
		log.Error("failed to get profile by ID",
			slog.String("error", err.Error()),
			slog.Int64("profile_id", id))
		return nil, err
	}

	return &profile, nil
}

// List implements store.ProfileStore.List
func (s *PostgresProfileStore) List(ctx context.Context) ([]*domain.Profile, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	profiles := []*domain.Profile{}
	if err := s.db.SelectContext(ctx, &profiles, `SELECT `+profileColumns+` FROM profiles ORDER BY id`); err != nil {
		log.Error("failed to list profiles", slog.String("error", err.Error()))
		return nil, err
	}

	log.Debug("listed profiles", slog.Int("count", len(profiles)))
	return profiles, nil
}

// Update implements store.ProfileStore.Update
func (s *PostgresProfileStore) Update(ctx context.Context, profile *domain.Profile) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := profile.Validate(); err != nil {
		log.Warn("profile validation failed during update",
			slog.String("error", err.Error()),
			slog.Int64("profile_id", profile.ID))
		return err
	}

	query := `
		UPDATE profiles
		SET first_name = $1, last_name = $2, location = $3, description = $4, contact = $5
		WHERE id = $6
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		profile.FirstName,
		profile.LastName,
		profile.Location,
		profile.Description,
		profile.Contact,
		profile.ID,
	)
	if err != nil {
		log.Error("failed to update profile",
			slog.String("error", err.Error()),
			slog.Int64("profile_id", profile.ID))
		return store.NewStoreError("profile", "update", "update failed", MapError(err))
	}

	if err := CheckRowsAffected(result, store.ErrProfileNotFound); err != nil {
		log.Debug("profile not updated",
			slog.String("error", err.Error()),
			slog.Int64("profile_id", profile.ID))
		return err
	}

	log.Info("profile updated successfully", slog.Int64("profile_id", profile.ID))
	return nil
}

// Delete implements store.ProfileStore.Delete
func (s *PostgresProfileStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM profiles WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete profile",
			slog.String("error", err.Error()),
			slog.Int64("profile_id", id))
		return store.NewStoreError("profile", "delete", "delete failed", MapError(err))
	}

	if err := CheckRowsAffected(result, store.ErrProfileNotFound); err != nil {
		return err
	}

	log.Info("profile deleted successfully", slog.Int64("profile_id", id))
	return nil
}

// DeleteAll implements store.ProfileStore.DeleteAll
func (s *PostgresProfileStore) DeleteAll(ctx context.Context) (int64, error) {
	return deleteAll(ctx, s.db, logger.FromContextOrDefault(ctx, s.logger), "profiles")
}

// Count implements store.ProfileStore.Count
func (s *PostgresProfileStore) Count(ctx context.Context) (int64, error) {
	return count(ctx, s.db, "profiles")
}
