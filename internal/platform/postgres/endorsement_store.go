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

// detailSelect joins an endorsement to both of its profiles and its skill.
// profiles appears twice, so each side gets its own alias.
const detailSelect = `
	SELECT
		e.id, e.giver_id, e.receiver_id, e.skill_id, e.creation_date,
		giver.first_name    AS giver_first_name,
		giver.last_name     AS giver_last_name,
		receiver.first_name AS receiver_first_name,
		receiver.last_name  AS receiver_last_name,
		s.name              AS skill_name
	FROM endorsements e
	JOIN profiles giver    ON giver.id = e.giver_id
	JOIN profiles receiver ON receiver.id = e.receiver_id
	JOIN skills s          ON s.id = e.skill_id
`

// PostgresEndorsementStore implements the store.EndorsementStore interface.
type PostgresEndorsementStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresEndorsementStore creates a new PostgreSQL implementation of the EndorsementStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresEndorsementStore(db store.DBTX, logger *slog.Logger) *PostgresEndorsementStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresEndorsementStore{
		db:     db,
		logger: logger.With(slog.String("component", "endorsement_store")),
	}
}

var _ store.EndorsementStore = (*PostgresEndorsementStore)(nil)

// WithTx implements store.EndorsementStore.WithTx
func (s *PostgresEndorsementStore) WithTx(tx *sqlx.Tx) store.EndorsementStore {
	return &PostgresEndorsementStore{db: tx, logger: s.logger}
}

// Create implements store.EndorsementStore.Create
// The creation date comes from the database clock, never from the caller.
// Returns store.ErrInvalidEntity if a referenced profile or skill doesn't exist.
func (s *PostgresEndorsementStore) Create(ctx context.Context, endorsement *domain.Endorsement) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := endorsement.Validate(); err != nil {
		log.Warn("endorsement validation failed during create", slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO endorsements (giver_id, receiver_id, skill_id, creation_date)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, creation_date
	`
	err := s.db.QueryRowxContext(
		ctx,
		query,
		endorsement.GiverID,
		endorsement.ReceiverID,
		endorsement.SkillID,
	).Scan(&endorsement.ID, &endorsement.CreationDate)
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during endorsement creation",
				slog.String("error", err.Error()),
				slog.Int64("giver_id", endorsement.GiverID),
				slog.Int64("receiver_id", endorsement.ReceiverID),
				slog.Int64("skill_id", endorsement.SkillID))
		} else {
			log.Error("failed to create endorsement", slog.String("error", err.Error()))
		}
		return store.NewStoreError("endorsement", "create", "insert failed", MapError(err))
	}

	endorsement.CreationDate = endorsement.CreationDate.UTC()

	log.Info("endorsement created successfully",
		slog.Int64("endorsement_id", endorsement.ID),
		slog.Int64("giver_id", endorsement.GiverID),
		slog.Int64("receiver_id", endorsement.ReceiverID),
		slog.Int64("skill_id", endorsement.SkillID))
	return nil
}

// GetByID implements store.EndorsementStore.GetByID
func (s *PostgresEndorsementStore) GetByID(ctx context.Context, id int64) (*domain.Endorsement, error) {
	var endorsement domain.Endorsement
	err := s.db.GetContext(ctx, &endorsement, `
		SELECT id, giver_id, receiver_id, skill_id, creation_date
		FROM endorsements
		WHERE id = $1
	`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrEndorsementNotFound
		}
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to get endorsement by ID",
			slog.String("error", err.Error()),
			slog.Int64("endorsement_id", id))
		return nil, err
	}
	return &endorsement, nil
}

// GetDetailedByID implements store.EndorsementStore.GetDetailedByID
func (s *PostgresEndorsementStore) GetDetailedByID(ctx context.Context, id int64) (*domain.EndorsementDetail, error) {
	var detail domain.EndorsementDetail
	if err := s.db.GetContext(ctx, &detail, detailSelect+` WHERE e.id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrEndorsementNotFound
		}
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to get endorsement detail",
			slog.String("error", err.Error()),
			slog.Int64("endorsement_id", id))
		return nil, err
	}
	return &detail, nil
}

// ListDetailed implements store.EndorsementStore.ListDetailed
func (s *PostgresEndorsementStore) ListDetailed(ctx context.Context) ([]*domain.EndorsementDetail, error) {
	details := []*domain.EndorsementDetail{}
	if err := s.db.SelectContext(ctx, &details, detailSelect+` ORDER BY e.id`); err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list endorsements",
			slog.String("error", err.Error()))
		return nil, err
	}
	return details, nil
}

// ListReceivedByProfile implements store.EndorsementStore.ListReceivedByProfile
func (s *PostgresEndorsementStore) ListReceivedByProfile(
	ctx context.Context,
	profileID int64,
) ([]*domain.ReceivedEndorsement, error) {
	query := `
		SELECT e.giver_id, e.skill_id, e.creation_date, giver.first_name, giver.last_name, s.name
		FROM endorsements e
		JOIN profiles giver ON giver.id = e.giver_id
		JOIN skills s       ON s.id = e.skill_id
		WHERE e.receiver_id = $1
		ORDER BY e.id
	`
	received := []*domain.ReceivedEndorsement{}
	if err := s.db.SelectContext(ctx, &received, query, profileID); err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list received endorsements",
			slog.String("error", err.Error()),
			slog.Int64("profile_id", profileID))
		return nil, err
	}
	return received, nil
}

// ListGivenByProfile implements store.EndorsementStore.ListGivenByProfile
func (s *PostgresEndorsementStore) ListGivenByProfile(
	ctx context.Context,
	profileID int64,
) ([]*domain.GivenEndorsement, error) {
	query := `
		SELECT e.receiver_id, e.skill_id, e.creation_date, receiver.first_name, receiver.last_name, s.name
		FROM endorsements e
		JOIN profiles receiver ON receiver.id = e.receiver_id
		JOIN skills s          ON s.id = e.skill_id
		WHERE e.giver_id = $1
		ORDER BY e.id
	`
	given := []*domain.GivenEndorsement{}
	if err := s.db.SelectContext(ctx, &given, query, profileID); err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list given endorsements",
			slog.String("error", err.Error()),
			slog.Int64("profile_id", profileID))
		return nil, err
	}
	return given, nil
}

// ListBySkill implements store.EndorsementStore.ListBySkill
func (s *PostgresEndorsementStore) ListBySkill(
	ctx context.Context,
	skillID int64,
) ([]*domain.SkillEndorsement, error) {
	query := `
		SELECT
			e.id,
			e.giver_id,
			giver.first_name    AS giver_first_name,
			giver.last_name     AS giver_last_name,
			e.receiver_id,
			receiver.first_name AS receiver_first_name,
			receiver.last_name  AS receiver_last_name,
			e.creation_date
		FROM endorsements e
		JOIN profiles giver    ON giver.id = e.giver_id
		JOIN profiles receiver ON receiver.id = e.receiver_id
		WHERE e.skill_id = $1
		ORDER BY e.id
	`
	endorsements := []*domain.SkillEndorsement{}
	if err := s.db.SelectContext(ctx, &endorsements, query, skillID); err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list skill endorsements",
			slog.String("error", err.Error()),
			slog.Int64("skill_id", skillID))
		return nil, err
	}
	return endorsements, nil
}

// Delete implements store.EndorsementStore.Delete
func (s *PostgresEndorsementStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM endorsements WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete endorsement",
			slog.String("error", err.Error()),
			slog.Int64("endorsement_id", id))
		return store.NewStoreError("endorsement", "delete", "delete failed", MapError(err))
	}

	if err := CheckRowsAffected(result, store.ErrEndorsementNotFound); err != nil {
		return err
	}

	log.Info("endorsement deleted successfully", slog.Int64("endorsement_id", id))
	return nil
}

// DeleteAll implements store.EndorsementStore.DeleteAll
func (s *PostgresEndorsementStore) DeleteAll(ctx context.Context) (int64, error) {
	return deleteAll(ctx, s.db, logger.FromContextOrDefault(ctx, s.logger), "endorsements")
}

// Count implements store.EndorsementStore.Count
func (s *PostgresEndorsementStore) Count(ctx context.Context) (int64, error) {
	return count(ctx, s.db, "endorsements")
}
