// Package postgres provides PostgreSQL-specific implementations for the data
// storage interfaces defined in the internal/store package.
// Queries run through sqlx on top of the pgx stdlib driver; schema changes
// are goose migrations embedded in the migrations subpackage.
package postgres
