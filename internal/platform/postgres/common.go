package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/endorsa/endorsa-api/internal/store"
)

// deleteAll removes every row of table and reports how many were deleted.
// table is always one of the package's constant table names.
func deleteAll(ctx context.Context, db store.DBTX, log *slog.Logger, table string) (int64, error) {
	result, err := db.ExecContext(ctx, `DELETE FROM `+table)
	if err != nil {
		log.Error("failed to delete all rows",
			slog.String("table", table),
			slog.String("error", err.Error()))
		return 0, store.NewStoreError(table, "delete all", "delete failed", MapError(err))
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	log.Info("deleted all rows", slog.String("table", table), slog.Int64("count", deleted))
	return deleted, nil
}

func count(ctx context.Context, db store.DBTX, table string) (int64, error) {
	var n int64
	if err := db.GetContext(ctx, &n, `SELECT COUNT(*) FROM `+table); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", table, err)
	}
	return n, nil
}
