package service

import (
	"context"
	"log/slog"

	"github.com/endorsa/endorsa-api/internal/store"
	"github.com/jmoiron/sqlx"
)

// bulkDeleter binds the two store calls a bulk delete needs.
type bulkDeleter struct {
	deleteAll func(ctx context.Context, tx *sqlx.Tx) (int64, error)
	count     func(ctx context.Context) (int64, error)
}

// deleteAll removes every row in one transaction, then checks after commit
// that the table really is empty.
func deleteAll(ctx context.Context, db *sqlx.DB, log *slog.Logger, d bulkDeleter) (int64, error) {
	var deleted int64
	err := store.RunInTransaction(ctx, db, func(ctx context.Context, tx *sqlx.Tx) error {
		n, err := d.deleteAll(ctx, tx)
		if err != nil {
			return err
		}
		deleted = n
		return nil
	})
	if err != nil {
		log.Warn("bulk delete failed", slog.String("error", err.Error()))
		return 0, mutationError(store.ErrDeleteFailed, err)
	}

	remaining, err := d.count(ctx)
	if err != nil {
		return 0, mutationError(store.ErrDeleteFailed, err)
	}
	if remaining > 0 {
		log.Error("rows remain after bulk delete",
			slog.Int64("deleted", deleted),
			slog.Int64("remaining", remaining))
		return 0, ErrResidualRows
	}

	log.Info("bulk delete completed", slog.Int64("deleted", deleted))
	return deleted, nil
}
