// Package postgres provides PostgreSQL implementations of the store
// interfaces over database/sql with the pgx driver, together with the
// embedded goose migrations that create the schema they expect.
package postgres
