package store

import (
	"context"

	"github.com/endorsa/endorsa-api/internal/domain"
	"github.com/jmoiron/sqlx"
)

// SkillStore defines the interface for skill data persistence.
// Its methods mirror ProfileStore.
type SkillStore interface {
	Create(ctx context.Context, skill *domain.Skill) error
	GetByID(ctx context.Context, id int64) (*domain.Skill, error)
	List(ctx context.Context) ([]*domain.Skill, error)
	Update(ctx context.Context, skill *domain.Skill) error
	Delete(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) (int64, error)
	Count(ctx context.Context) (int64, error)
	WithTx(tx *sqlx.Tx) SkillStore
}
