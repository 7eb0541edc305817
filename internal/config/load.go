package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. TASKS_SERVER_PORT.
const EnvPrefix = "TASKS"

var defaults = map[string]any{
	"server.port":                     8080,
	"server.log_level":                "info",
	"server.shutdown_timeout_seconds": 10,
	"database.driver":                 DriverPostgres,
	"database.url":                    "",
	"auth.jwt_secret":                 "",
	"auth.token_lifetime_minutes":     120,
	"auth.cookie_name":                "tasks_session",
	"auth.cookie_secure":              false,
}

// flagKeys maps command-line flag names onto configuration keys.
var flagKeys = map[string]string{
	"port":         "server.port",
	"log-level":    "server.log_level",
	"db-driver":    "database.driver",
	"database-url": "database.url",
}

// RegisterFlags adds the configuration flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.Int("port", 8080, "HTTP listen port")
	fs.String("log-level", "info", "log level (debug, info, warn, error)")
	fs.String("db-driver", DriverPostgres, "database driver (postgres, sqlite)")
	fs.String("database-url", "", "database connection URL or sqlite file path")
}

// Load reads configuration with the precedence flags > environment >
// config file > defaults, then validates it. fs may be nil; only flags the
// user actually set override other sources.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for name, key := range flagKeys {
			if flag := fs.Lookup(name); flag != nil && flag.Changed {
				if err := v.BindPFlag(key, flag); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}
