package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/foldertasks/internal/config"
	"github.com/phrazzld/foldertasks/internal/platform/logger"
	"github.com/spf13/pflag"
)

// loadAppConfig loads the configuration from flags, environment variables
// and an optional config file.
func loadAppConfig(fs *pflag.FlagSet) (*config.Config, error) {
	cfg, err := config.Load(fs)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// setupAppLogger configures the application logger from the server settings.
func setupAppLogger(cfg *config.Config) (*slog.Logger, error) {
	l, err := logger.Setup(logger.LoggerConfig{Level: cfg.Server.LogLevel})
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"db_driver", cfg.Database.Driver)
	return l, nil
}
