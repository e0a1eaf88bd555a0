// Package testdb provides helpers for tests that run against a real
// PostgreSQL database.
//
// Tests call GetTestDBWithT, which skips the test when no database URL is
// configured, applies the embedded migrations and closes the pool when the
// test ends. WithTx runs a test body inside a transaction that is always
// rolled back, so tests see their own writes without persisting them.
//
// # Basic Usage
//
//	func TestSomething(t *testing.T) {
//		db := testdb.GetTestDBWithT(t)
//		testdb.WithTx(t, db, func(t *testing.T, tx *sqlx.Tx) {
//			profiles := postgres.NewPostgresProfileStore(tx, nil)
//			// ...
//		})
//	}
package testdb
