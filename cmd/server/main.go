// Package main implements the entry point for the folder task manager web
// server. It loads configuration, sets up logging and the database, wires the
// stores, services and handlers together, and serves HTTP until interrupted.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/phrazzld/foldertasks/internal/config"
	"github.com/spf13/pflag"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:]))
}

// run executes the server or a migration command and returns the exit code.
func run(ctx context.Context, args []string) int {
	fs := pflag.NewFlagSet("server", pflag.ContinueOnError)
	config.RegisterFlags(fs)
	migrateCmd := fs.String("migrate", "",
		"run a migration command (up, down, reset, status, version) and exit")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	cfg, err := loadAppConfig(fs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		return 1
	}

	logger, err := setupAppLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logger: %v\n", err)
		return 1
	}

	if *migrateCmd != "" {
		if err := runMigrations(ctx, cfg, *migrateCmd, logger); err != nil {
			logger.Error("migration failed", "command", *migrateCmd, "error", err)
			return 1
		}
		return 0
	}

	db, err := setupAppDatabase(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to set up database", "error", err)
		return 1
	}

	app, err := newApplication(cfg, logger, db)
	if err != nil {
		logger.Error("failed to initialize application", "error", err)
		_ = db.Close()
		return 1
	}

	return app.serve(ctx)
}
