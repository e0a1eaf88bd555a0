package service

import (
	"context"
	"log/slog"

	"github.com/endorsa/endorsa-api/internal/domain"
	"github.com/endorsa/endorsa-api/internal/platform/logger"
	"github.com/endorsa/endorsa-api/internal/store"
	"github.com/jmoiron/sqlx"
)

// EndorsementService provides endorsement operations.
type EndorsementService interface {
	// ListEndorsements returns every endorsement with profile and skill names.
	// Returns ErrEmptyCollection when there are none.
	ListEndorsements(ctx context.Context) ([]*domain.EndorsementDetail, error)

	// GetEndorsement returns one endorsement with profile and skill names.
	GetEndorsement(ctx context.Context, id int64) (*domain.EndorsementDetail, error)

	// CreateEndorsement persists a new endorsement. Its ID and CreationDate
	// are assigned on insert.
	CreateEndorsement(ctx context.Context, endorsement *domain.Endorsement) error

	// DeleteEndorsement removes an endorsement, returning it as it was.
	DeleteEndorsement(ctx context.Context, id int64) (*domain.Endorsement, error)

	// DeleteAllEndorsements removes every endorsement and returns how many were deleted.
	DeleteAllEndorsements(ctx context.Context) (int64, error)
}

type endorsementServiceImpl struct {
	db               *sqlx.DB
	endorsementStore store.EndorsementStore
	logger           *slog.Logger
}

// NewEndorsementService creates a new EndorsementService.
func NewEndorsementService(
	db *sqlx.DB,
	endorsementStore store.EndorsementStore,
	logger *slog.Logger,
) (EndorsementService, error) {
	if db == nil {
		return nil, domain.NewValidationError("db", "cannot be nil", domain.ErrValidation)
	}
	if endorsementStore == nil {
		return nil, domain.NewValidationError("endorsementStore", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &endorsementServiceImpl{
		db:               db,
		endorsementStore: endorsementStore,
		logger:           logger.With(slog.String("component", "endorsement_service")),
	}, nil
}

func (s *endorsementServiceImpl) ListEndorsements(ctx context.Context) ([]*domain.EndorsementDetail, error) {
	endorsements, err := s.endorsementStore.ListDetailed(ctx)
	if err != nil {
		return nil, err
	}
	if len(endorsements) == 0 {
		return nil, ErrEmptyCollection
	}
	return endorsements, nil
}

func (s *endorsementServiceImpl) GetEndorsement(ctx context.Context, id int64) (*domain.EndorsementDetail, error) {
	return s.endorsementStore.GetDetailedByID(ctx, id)
}

// CreateEndorsement implements EndorsementService.CreateEndorsement
// A reference to a missing profile or skill fails with store.ErrInvalidEntity.
func (s *endorsementServiceImpl) CreateEndorsement(ctx context.Context, endorsement *domain.Endorsement) error {
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sqlx.Tx) error {
		return s.endorsementStore.WithTx(tx).Create(ctx, endorsement)
	})
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Warn("failed to create endorsement",
			slog.String("error", err.Error()),
			slog.Int64("giver_id", endorsement.GiverID),
			slog.Int64("receiver_id", endorsement.ReceiverID),
			slog.Int64("skill_id", endorsement.SkillID))
		return mutationError(store.ErrCreateFailed, err)
	}
	return nil
}

func (s *endorsementServiceImpl) DeleteEndorsement(ctx context.Context, id int64) (*domain.Endorsement, error) {
	var deleted *domain.Endorsement
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sqlx.Tx) error {
		txStore := s.endorsementStore.WithTx(tx)

		endorsement, err := txStore.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := txStore.Delete(ctx, id); err != nil {
			return err
		}

		deleted = endorsement
		return nil
	})
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Warn("failed to delete endorsement",
			slog.String("error", err.Error()),
			slog.Int64("endorsement_id", id))
		return nil, mutationError(store.ErrDeleteFailed, err)
	}
	return deleted, nil
}

func (s *endorsementServiceImpl) DeleteAllEndorsements(ctx context.Context) (int64, error) {
	return deleteAll(ctx, s.db, logger.FromContextOrDefault(ctx, s.logger), bulkDeleter{
		deleteAll: func(ctx context.Context, tx *sqlx.Tx) (int64, error) {
			return s.endorsementStore.WithTx(tx).DeleteAll(ctx)
		},
		count: s.endorsementStore.Count,
	})
}
