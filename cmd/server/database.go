package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/phrazzld/foldertasks/internal/config"
	"github.com/phrazzld/foldertasks/internal/platform/orm"
	"github.com/phrazzld/foldertasks/internal/platform/postgres"
	"github.com/phrazzld/foldertasks/internal/store"
	"gorm.io/gorm"
)

// appDatabase is the open database behind the stores.
type appDatabase struct {
	driver string
	// sqlDB is always set; it serves health checks and is closed on shutdown.
	sqlDB *sql.DB
	// gormDB is only set for the sqlite driver.
	gormDB *gorm.DB
}

// appStores groups the store implementations of one driver.
type appStores struct {
	users   store.UserStore
	folders store.FolderStore
	tasks   store.TaskStore
}

// setupAppDatabase opens the configured database and verifies the connection.
func setupAppDatabase(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*appDatabase, error) {
	switch cfg.Database.Driver {
	case config.DriverPostgres:
		db, err := sql.Open("pgx", cfg.Database.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to open database connection: %w", err)
		}

		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := db.PingContext(pingCtx); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to ping database: %w", err)
		}

		logger.Info("database connection established", "driver", cfg.Database.Driver)
		return &appDatabase{driver: cfg.Database.Driver, sqlDB: db}, nil

	case config.DriverSQLite:
		gdb, err := orm.Open(cfg.Database.URL)
		if err != nil {
			return nil, err
		}
		sqlDB, err := gdb.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get sql.DB: %w", err)
		}

		logger.Info("database connection established", "driver", cfg.Database.Driver)
		return &appDatabase{driver: cfg.Database.Driver, sqlDB: sqlDB, gormDB: gdb}, nil

	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
}

// stores builds the store implementations matching the driver.
func (d *appDatabase) stores(logger *slog.Logger) appStores {
	if d.gormDB != nil {
		return appStores{
			users:   orm.NewUserStore(d.gormDB, logger),
			folders: orm.NewFolderStore(d.gormDB, logger),
			tasks:   orm.NewTaskStore(d.gormDB, logger),
		}
	}
	return appStores{
		users:   postgres.NewPostgresUserStore(d.sqlDB, logger),
		folders: postgres.NewPostgresFolderStore(d.sqlDB, logger),
		tasks:   postgres.NewPostgresTaskStore(d.sqlDB, logger),
	}
}

// Close releases the connection pool.
func (d *appDatabase) Close() error {
	return d.sqlDB.Close()
}

// errSQLiteMigrations is returned when migrations are requested for sqlite,
// whose schema is created when the database is opened.
var errSQLiteMigrations = errors.New("migrations apply to the postgres driver; sqlite migrates on startup")

// runMigrations executes a goose migration command against the configured
// postgres database.
func runMigrations(ctx context.Context, cfg *config.Config, command string, logger *slog.Logger) error {
	if cfg.Database.Driver != config.DriverPostgres {
		return errSQLiteMigrations
	}

	db, err := setupAppDatabase(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("failed to close database connection", "error", err)
		}
	}()

	logger.Info("executing migrations", "command", command)
	return postgres.Migrate(ctx, db.sqlDB, command, logger)
}
