// Package config handles configuration loading, parsing, and validation
// from various sources (config file, environment variables, command-line
// flags). It provides type-safe access to application settings while keeping
// configuration details separate from business logic.
package config
