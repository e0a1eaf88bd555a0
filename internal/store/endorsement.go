package store

import (
	"context"

	"github.com/endorsa/endorsa-api/internal/domain"
	"github.com/jmoiron/sqlx"
)

// EndorsementStore defines the interface for endorsement persistence and
// the joined read views built on top of it.
type EndorsementStore interface {
	// Create inserts the endorsement, setting its ID and CreationDate.
	// Returns ErrInvalidEntity when a referenced profile or skill does not exist.
	Create(ctx context.Context, endorsement *domain.Endorsement) error

	// GetByID retrieves an endorsement by ID.
	// Returns ErrEndorsementNotFound if it does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Endorsement, error)

	// GetDetailedByID is GetByID joined with profile and skill names.
	GetDetailedByID(ctx context.Context, id int64) (*domain.EndorsementDetail, error)

	// ListDetailed returns every endorsement joined with profile and skill names.
	ListDetailed(ctx context.Context) ([]*domain.EndorsementDetail, error)

	// ListReceivedByProfile returns the endorsements received by a profile,
	// with the giver's name and the skill name.
	ListReceivedByProfile(ctx context.Context, profileID int64) ([]*domain.ReceivedEndorsement, error)

	// ListGivenByProfile returns the endorsements given by a profile,
	// with the receiver's name and the skill name.
	ListGivenByProfile(ctx context.Context, profileID int64) ([]*domain.GivenEndorsement, error)

	// ListBySkill returns the endorsements of a skill with giver and receiver names.
	ListBySkill(ctx context.Context, skillID int64) ([]*domain.SkillEndorsement, error)

	// Delete removes an endorsement.
	// Returns ErrEndorsementNotFound if it does not exist.
	Delete(ctx context.Context, id int64) error

	// DeleteAll removes every endorsement and returns how many rows were deleted.
	DeleteAll(ctx context.Context) (int64, error)

	// Count returns the number of stored endorsements.
	Count(ctx context.Context) (int64, error)

	// WithTx returns an EndorsementStore that runs its queries on tx.
	WithTx(tx *sqlx.Tx) EndorsementStore
}
