package postgres

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/endorsa/endorsa-api/internal/platform/logger"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

// newMockDB returns a sqlx handle backed by sqlmock. Expectations are
// verified when the test finishes.
func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return sqlx.NewDb(db, "sqlmock"), mock
}

func strPtr(s string) *string { return &s }

func int64Ptr(v int64) *int64 { return &v }

var testLogger, _ = logger.NewTestLogger()
