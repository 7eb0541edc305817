package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/foldertasks/internal/config"
	"github.com/phrazzld/foldertasks/internal/service"
	"github.com/phrazzld/foldertasks/internal/service/auth"
	"github.com/phrazzld/foldertasks/internal/view"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *appDatabase

	stores appStores

	jwtService    auth.JWTService
	passwords     *auth.BcryptVerifier
	userService   service.UserService
	folderService service.FolderService
	taskService   service.TaskService

	renderer view.Renderer
}

// newApplication wires stores, services and views on top of an open database.
func newApplication(cfg *config.Config, logger *slog.Logger, db *appDatabase) (*application, error) {
	app := &application{
		config:    cfg,
		logger:    logger,
		db:        db,
		stores:    db.stores(logger),
		passwords: auth.NewBcryptVerifier(),
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("session token service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	app.userService, err = service.NewUserService(app.stores.users, app.passwords, app.passwords, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}

	app.folderService, err = service.NewFolderService(app.stores.folders, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create folder service: %w", err)
	}

	app.taskService, err = service.NewTaskService(app.stores.folders, app.stores.tasks, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}

	app.renderer, err = view.NewTemplateRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	return app, nil
}

// cleanup releases application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", "error", err)
		}
	}
	app.logger.Info("application shutdown completed")
}
