// Package orm provides gorm implementations of the store interfaces on top of
// SQLite. It backs local development without a PostgreSQL server and the
// in-memory databases used by handler tests.
package orm
