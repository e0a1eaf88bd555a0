package testdb

import (
	"os"

	"github.com/endorsa/endorsa-api/internal/redact"
)

// databaseURLEnvVars are consulted in order; the first non-empty one wins.
var databaseURLEnvVars = []string{"ENDORSA_DATABASE_URL", "DATABASE_URL"}

// GetTestDatabaseURL returns the database URL configured for tests, or an
// empty string when none is set.
func GetTestDatabaseURL() string {
	for _, name := range databaseURLEnvVars {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}

// ShouldSkipDatabaseTest reports whether no test database is configured.
func ShouldSkipDatabaseTest() bool {
	return GetTestDatabaseURL() == ""
}

// maskDatabaseURL hides credentials so the URL can appear in test output.
func maskDatabaseURL(dbURL string) string {
	return redact.String(dbURL)
}
