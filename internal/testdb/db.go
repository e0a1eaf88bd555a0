package testdb

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/endorsa/endorsa-api/internal/platform/postgres"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver
	"github.com/jmoiron/sqlx"
)

const connectTimeout = 5 * time.Second

// GetTestDBWithT opens the test database and migrates it to the latest
// version. The test is skipped when no database is configured and fails
// when one is configured but unreachable.
func GetTestDBWithT(t *testing.T) *sqlx.DB {
	t.Helper()

	dbURL := GetTestDatabaseURL()
	if dbURL == "" {
		t.Skip("DATABASE_URL not set, skipping PostgreSQL integration test")
	}

	db, err := sqlx.Open("pgx", dbURL)
	if err != nil {
		t.Fatalf("failed to open test database %s: %v", maskDatabaseURL(dbURL), err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("Warning: failed to close test database: %v", err)
		}
	})

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		t.Fatalf("failed to reach test database %s: %v", maskDatabaseURL(dbURL), err)
	}

	if err := postgres.Migrate(context.Background(), db.DB, postgres.MigrateUp, nil); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

// CleanupDB empties every table and restarts the id sequences.
func CleanupDB(t *testing.T, db *sqlx.DB) {
	t.Helper()
	_, err := db.ExecContext(context.Background(),
		`TRUNCATE endorsements, skills, profiles RESTART IDENTITY CASCADE`)
	if err != nil {
		t.Fatalf("failed to clean test database: %v", err)
	}
}

// WithTx runs fn inside a transaction that is rolled back afterwards,
// including when fn panics or fails the test.
func WithTx(t *testing.T, db *sqlx.DB, fn func(t *testing.T, tx *sqlx.Tx)) {
	t.Helper()

	tx, err := db.BeginTxx(context.Background(), nil)
	if err != nil {
		t.Fatalf("failed to begin transaction: %v", err)
	}

	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			t.Logf("Warning: failed to rollback transaction: %v", err)
		}
	}()

	fn(t, tx)
}
