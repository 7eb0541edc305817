// Package logger provides structured logging functionality for the application
// using Go's standard library log/slog package. Loggers travel through
// request contexts so that trace ids and component names follow a request
// from the router down into the stores.
package logger
