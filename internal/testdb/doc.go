// Package testdb provides helpers for tests that need a real PostgreSQL
// database. Tests skip themselves when DATABASE_URL is not set.
package testdb
