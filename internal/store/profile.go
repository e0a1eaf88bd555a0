package store

import (
	"context"

	"github.com/endorsa/endorsa-api/internal/domain"
	"github.com/jmoiron/sqlx"
)

// ProfileStore defines the interface for profile data persistence.
type ProfileStore interface {
	// Create inserts the profile and sets its ID.
	// Returns domain validation errors if required fields are missing.
	Create(ctx context.Context, profile *domain.Profile) error

	// GetByID retrieves a profile by ID.
	// Returns ErrProfileNotFound if the profile does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Profile, error)

	// List returns every profile in storage order. An empty store yields an empty slice.
	List(ctx context.Context) ([]*domain.Profile, error)

	// Update persists all mutable fields of profile.
	// Returns ErrProfileNotFound if the profile does not exist.
	Update(ctx context.Context, profile *domain.Profile) error

	// Delete removes a profile; endorsements referencing it are removed by cascade.
	// Returns ErrProfileNotFound if the profile does not exist.
	Delete(ctx context.Context, id int64) error

	// DeleteAll removes every profile and returns how many rows were deleted.
	DeleteAll(ctx context.Context) (int64, error)

	// Count returns the number of stored profiles.
	Count(ctx context.Context) (int64, error)

	// WithTx returns a ProfileStore that runs its queries on tx.
	WithTx(tx *sqlx.Tx) ProfileStore
}
