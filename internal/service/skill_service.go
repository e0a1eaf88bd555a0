package service

import (
	"context"
	"log/slog"

	"github.com/endorsa/endorsa-api/internal/domain"
	"github.com/endorsa/endorsa-api/internal/platform/logger"
	"github.com/endorsa/endorsa-api/internal/store"
	"github.com/jmoiron/sqlx"
)

// SkillDetail is a skill together with its endorsements.
type SkillDetail struct {
	Skill        *domain.Skill
	Endorsements []*domain.SkillEndorsement
}

// SkillService provides skill operations.
type SkillService interface {
	// ListSkills returns every skill in storage order.
	// Returns ErrEmptyCollection when there are none.
	ListSkills(ctx context.Context) ([]*domain.Skill, error)

	// CreateSkill persists a new skill and assigns its ID.
	CreateSkill(ctx context.Context, skill *domain.Skill) error

	// GetSkill returns a skill with its endorsements.
	GetSkill(ctx context.Context, id int64) (*SkillDetail, error)

	// UpdateSkill applies patch to the stored skill and returns the result.
	UpdateSkill(ctx context.Context, id int64, patch domain.SkillPatch) (*domain.Skill, error)

	// DeleteSkill removes a skill and its endorsements, returning the skill as it was.
	DeleteSkill(ctx context.Context, id int64) (*domain.Skill, error)

	// DeleteAllSkills removes every skill and returns how many were deleted.
	DeleteAllSkills(ctx context.Context) (int64, error)
}

type skillServiceImpl struct {
	db               *sqlx.DB
	skillStore       store.SkillStore
	endorsementStore store.EndorsementStore
	logger           *slog.Logger
}

// NewSkillService creates a new SkillService.
func NewSkillService(
	db *sqlx.DB,
	skillStore store.SkillStore,
	endorsementStore store.EndorsementStore,
	logger *slog.Logger,
) (SkillService, error) {
	if db == nil {
		return nil, domain.NewValidationError("db", "cannot be nil", domain.ErrValidation)
	}
	if skillStore == nil {
		return nil, domain.NewValidationError("skillStore", "cannot be nil", domain.ErrValidation)
	}
	if endorsementStore == nil {
		return nil, domain.NewValidationError("endorsementStore", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &skillServiceImpl{
		db:               db,
		skillStore:       skillStore,
		endorsementStore: endorsementStore,
		logger:           logger.With(slog.String("component", "skill_service")),
	}, nil
}

func (s *skillServiceImpl) ListSkills(ctx context.Context) ([]*domain.Skill, error) {
	skills, err := s.skillStore.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(skills) == 0 {
		return nil, ErrEmptyCollection
	}
	return skills, nil
}

func (s *skillServiceImpl) CreateSkill(ctx context.Context, skill *domain.Skill) error {
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sqlx.Tx) error {
		return s.skillStore.WithTx(tx).Create(ctx, skill)
	})
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Warn("failed to create skill",
			slog.String("error", err.Error()))
		return mutationError(store.ErrCreateFailed, err)
	}
	return nil
}

func (s *skillServiceImpl) GetSkill(ctx context.Context, id int64) (*SkillDetail, error) {
	skill, err := s.skillStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	endorsements, err := s.endorsementStore.ListBySkill(ctx, id)
	if err != nil {
		return nil, err
	}

	return &SkillDetail{Skill: skill, Endorsements: endorsements}, nil
}

func (s *skillServiceImpl) UpdateSkill(
	ctx context.Context,
	id int64,
	patch domain.SkillPatch,
) (*domain.Skill, error) {
	var updated *domain.Skill
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sqlx.Tx) error {
		txStore := s.skillStore.WithTx(tx)

		skill, err := txStore.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if skill.Apply(patch) {
			if err := txStore.Update(ctx, skill); err != nil {
				return err
			}
		}

		updated = skill
		return nil
	})
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Warn("failed to update skill",
			slog.String("error", err.Error()),
			slog.Int64("skill_id", id))
		return nil, mutationError(store.ErrUpdateFailed, err)
	}
	return updated, nil
}

func (s *skillServiceImpl) DeleteSkill(ctx context.Context, id int64) (*domain.Skill, error) {
	var deleted *domain.Skill
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sqlx.Tx) error {
		txStore := s.skillStore.WithTx(tx)

		skill, err := txStore.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := txStore.Delete(ctx, id); err != nil {
			return err
		}

		deleted = skill
		return nil
	})
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Warn("failed to delete skill",
			slog.String("error", err.Error()),
			slog.Int64("skill_id", id))
		return nil, mutationError(store.ErrDeleteFailed, err)
	}
	return deleted, nil
}

func (s *skillServiceImpl) DeleteAllSkills(ctx context.Context) (int64, error) {
	return deleteAll(ctx, s.db, logger.FromContextOrDefault(ctx, s.logger), bulkDeleter{
		deleteAll: func(ctx context.Context, tx *sqlx.Tx) (int64, error) {
			return s.skillStore.WithTx(tx).DeleteAll(ctx)
		},
		count: s.skillStore.Count,
	})
}
