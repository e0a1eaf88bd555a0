package service

import (
	"context"
	"log/slog"

	"github.com/endorsa/endorsa-api/internal/domain"
	"github.com/endorsa/endorsa-api/internal/platform/logger"
	"github.com/endorsa/endorsa-api/internal/store"
	"github.com/jmoiron/sqlx"
)

// ProfileDetail is a profile together with the endorsements it received and gave.
type ProfileDetail struct {
	Profile  *domain.Profile
	Received []*domain.ReceivedEndorsement
	Given    []*domain.GivenEndorsement
}

// ProfileService provides profile operations.
type ProfileService interface {
	// ListProfiles returns every profile in storage order.
	// Returns ErrEmptyCollection when there are none.
	ListProfiles(ctx context.Context) ([]*domain.Profile, error)

	// CreateProfile persists a new profile and assigns its ID.
	CreateProfile(ctx context.Context, profile *domain.Profile) error

	// GetProfile returns a profile with its received and given endorsements.
	GetProfile(ctx context.Context, id int64) (*ProfileDetail, error)

	// UpdateProfile applies patch to the stored profile and returns the result.
	UpdateProfile(ctx context.Context, id int64, patch domain.ProfilePatch) (*domain.Profile, error)

	// DeleteProfile removes a profile, and through the cascade its
	// endorsements, returning the profile as it was.
	DeleteProfile(ctx context.Context, id int64) (*domain.Profile, error)

	// DeleteAllProfiles removes every profile and returns how many were deleted.
	DeleteAllProfiles(ctx context.Context) (int64, error)
}

type profileServiceImpl struct {
	db               *sqlx.DB
	profileStore     store.ProfileStore
	endorsementStore store.EndorsementStore
	logger           *slog.Logger
}

// NewProfileService creates a new ProfileService.
// It returns an error if any of the required dependencies are nil.
func NewProfileService(
	db *sqlx.DB,
	profileStore store.ProfileStore,
	endorsementStore store.EndorsementStore,
	logger *slog.Logger,
) (ProfileService, error) {
	if db == nil {
		return nil, domain.NewValidationError("db", "cannot be nil", domain.ErrValidation)
	}
	if profileStore == nil {
		return nil, domain.NewValidationError("profileStore", "cannot be nil", domain.ErrValidation)
	}
	if endorsementStore == nil {
		return nil, domain.NewValidationError("endorsementStore", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &profileServiceImpl{
		db:               db,
		profileStore:     profileStore,
		endorsementStore: endorsementStore,
		logger:           logger.With(slog.String("component", "profile_service")),
	}, nil
}

// ListProfiles implements ProfileService.ListProfiles
func (s *profileServiceImpl) ListProfiles(ctx context.Context) ([]*domain.Profile, error) {
	profiles, err := s.profileStore.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(profiles) == 0 {
		return nil, ErrEmptyCollection
	}
	return profiles, nil
}

// CreateProfile implements ProfileService.CreateProfile
func (s *profileServiceImpl) CreateProfile(ctx context.Context, profile *domain.Profile) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sqlx.Tx) error {
		return s.profileStore.WithTx(tx).Create(ctx, profile)
	})
	if err != nil {
		log.Warn("failed to create profile", slog.String("error", err.Error()))
		return mutationError(store.ErrCreateFailed, err)
	}
	return nil
}

// GetProfile implements ProfileService.GetProfile
func (s *profileServiceImpl) GetProfile(ctx context.Context, id int64) (*ProfileDetail, error) {
	profile, err := s.profileStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	received, err := s.endorsementStore.ListReceivedByProfile(ctx, id)
	if err != nil {
		return nil, err
	}
	given, err := s.endorsementStore.ListGivenByProfile(ctx, id)
	if err != nil {
		return nil, err
	}

	return &ProfileDetail{Profile: profile, Received: received, Given: given}, nil
}

// UpdateProfile implements ProfileService.UpdateProfile
// Fields absent from the patch, or present but empty or zero, keep their value.
func (s *profileServiceImpl) UpdateProfile(
	ctx context.Context,
	id int64,
	patch domain.ProfilePatch,
) (*domain.Profile, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var updated *domain.Profile
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sqlx.Tx) error {
		txStore := s.profileStore.WithTx(tx)

		profile, err := txStore.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if profile.Apply(patch) {
			if err := txStore.Update(ctx, profile); err != nil {
				return err
			}
		} else {
			log.Debug("patch leaves profile unchanged", slog.Int64("profile_id", id))
		}

		updated = profile
		return nil
	})
	if err != nil {
		log.Warn("failed to update profile",
			slog.String("error", err.Error()),
			slog.Int64("profile_id", id))
		return nil, mutationError(store.ErrUpdateFailed, err)
	}
	return updated, nil
}

// DeleteProfile implements ProfileService.DeleteProfile
func (s *profileServiceImpl) DeleteProfile(ctx context.Context, id int64) (*domain.Profile, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var deleted *domain.Profile
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sqlx.Tx) error {
		txStore := s.profileStore.WithTx(tx)

		profile, err := txStore.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := txStore.Delete(ctx, id); err != nil {
			return err
		}

		deleted = profile
		return nil
	})
	if err != nil {
		log.Warn("failed to delete profile",
			slog.String("error", err.Error()),
			slog.Int64("profile_id", id))
		return nil, mutationError(store.ErrDeleteFailed, err)
	}
	return deleted, nil
}

// DeleteAllProfiles implements ProfileService.DeleteAllProfiles
func (s *profileServiceImpl) DeleteAllProfiles(ctx context.Context) (int64, error) {
	return deleteAll(ctx, s.db, logger.FromContextOrDefault(ctx, s.logger), bulkDeleter{
		deleteAll: func(ctx context.Context, tx *sqlx.Tx) (int64, error) {
			return s.profileStore.WithTx(tx).DeleteAll(ctx)
		},
		count: s.profileStore.Count,
	})
}
