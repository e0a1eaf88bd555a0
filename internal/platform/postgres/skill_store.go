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

// PostgresSkillStore implements the store.SkillStore interface.
type PostgresSkillStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresSkillStore creates a new PostgreSQL implementation of the SkillStore interface.
func NewPostgresSkillStore(db store.DBTX, logger *slog.Logger) *PostgresSkillStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresSkillStore{
		db:     db,
		logger: logger.With(slog.String("component", "skill_store")),
	}
}

var _ store.SkillStore = (*PostgresSkillStore)(nil)

// WithTx implements store.SkillStore.WithTx
func (s *PostgresSkillStore) WithTx(tx *sqlx.Tx) store.SkillStore {
	return &PostgresSkillStore{db: tx, logger: s.logger}
}

// Create implements store.SkillStore.Create
func (s *PostgresSkillStore) Create(ctx context.Context, skill *domain.Skill) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := skill.Validate(); err != nil {
		log.Warn("skill validation failed during create", slog.String("error", err.Error()))
		return err
	}

	err := s.db.QueryRowxContext(
		ctx,
		`INSERT INTO skills (name, description) VALUES ($1, $2) RETURNING id`,
		skill.Name,
		skill.Description,
	).Scan(&skill.ID)
	if err != nil {
		if IsNotNullViolation(err) {
			log.Warn("missing required column during skill creation", slog.String("error", err.Error()))
		} else {
			log.Error("failed to create skill", slog.String("error", err.Error()))
		}
		return store.NewStoreError("skill", "create", "insert failed", MapError(err))
	}

	log.Info("skill created successfully", slog.Int64("skill_id", skill.ID))
	return nil
}

// GetByID implements store.SkillStore.GetByID
func (s *PostgresSkillStore) GetByID(ctx context.Context, id int64) (*domain.Skill, error) {
	var skill domain.Skill
	err := s.db.GetContext(ctx, &skill, `SELECT id, name, description FROM skills WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrSkillNotFound
		}
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to get skill by ID",
			slog.String("error", err.Error()),
			slog.Int64("skill_id", id))
		return nil, err
	}
	return &skill, nil
}

// List implements store.SkillStore.List
func (s *PostgresSkillStore) List(ctx context.Context) ([]*domain.Skill, error) {
	skills := []*domain.Skill{}
	if err := s.db.SelectContext(ctx, &skills, `SELECT id, name, description FROM skills ORDER BY id`); err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list skills",
			slog.String("error", err.Error()))
		return nil, err
	}
	return skills, nil
}

// Update implements store.SkillStore.Update
func (s *PostgresSkillStore) Update(ctx context.Context, skill *domain.Skill) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := skill.Validate(); err != nil {
		return err
	}

	result, err := s.db.ExecContext(
		ctx,
		`UPDATE skills SET name = $1, description = $2 WHERE id = $3`,
		skill.Name,
		skill.Description,
		skill.ID,
	)
	if err != nil {
		log.Error("failed to update skill",
			slog.String("error", err.Error()),
			slog.Int64("skill_id", skill.ID))
		return store.NewStoreError("skill", "update", "update failed", MapError(err))
	}

	if err := CheckRowsAffected(result, store.ErrSkillNotFound); err != nil {
		return err
	}

	log.Info("skill updated successfully", slog.Int64("skill_id", skill.ID))
	return nil
}

// Delete implements store.SkillStore.Delete
func (s *PostgresSkillStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM skills WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete skill",
			slog.String("error", err.Error()),
			slog.Int64("skill_id", id))
		return store.NewStoreError("skill", "delete", "delete failed", MapError(err))
	}

	if err := CheckRowsAffected(result, store.ErrSkillNotFound); err != nil {
		return err
	}

	log.Info("skill deleted successfully", slog.Int64("skill_id", id))
	return nil
}

// DeleteAll implements store.SkillStore.DeleteAll
func (s *PostgresSkillStore) DeleteAll(ctx context.Context) (int64, error) {
	return deleteAll(ctx, s.db, logger.FromContextOrDefault(ctx, s.logger), "skills")
}

// Count implements store.SkillStore.Count
func (s *PostgresSkillStore) Count(ctx context.Context) (int64, error) {
	return count(ctx, s.db, "skills")
}
