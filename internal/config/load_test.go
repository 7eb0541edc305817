package config

import (
	"os"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "thisisasecretkeythatis32charslong!!"

// setupEnv sets environment variables for a test and returns a cleanup func
// restoring the previous values.
func setupEnv(t *testing.T, vars map[string]string) func() {
	t.Helper()
	orig := make(map[string]*string, len(vars))
	for k, v := range vars {
		if prev, ok := os.LookupEnv(k); ok {
			p := prev
			orig[k] = &p
		} else {
			orig[k] = nil
		}
		require.NoError(t, os.Setenv(k, v))
	}
	return func() {
		for k, prev := range orig {
			if prev == nil {
				_ = os.Unsetenv(k)
			} else {
				_ = os.Setenv(k, *prev)
			}
		}
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		"TASKS_SERVER_PORT":      "9090",
		"TASKS_SERVER_LOG_LEVEL": "debug",
		"TASKS_DATABASE_DRIVER":  "sqlite",
		"TASKS_DATABASE_URL":     "file:tasks.db",
		"TASKS_AUTH_JWT_SECRET":  testSecret,
		"TASKS_AUTH_COOKIE_NAME": "sid",
	})
	defer cleanup()

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "file:tasks.db", cfg.Database.URL)
	assert.Equal(t, testSecret, cfg.Auth.JWTSecret)
	assert.Equal(t, "sid", cfg.Auth.CookieName)
}

func TestLoad_Defaults(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		"TASKS_DATABASE_URL":    "postgres://localhost/tasks",
		"TASKS_AUTH_JWT_SECRET": testSecret,
	})
	defer cleanup()

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, 120, cfg.Auth.TokenLifetimeMinutes)
	assert.Equal(t, "tasks_session", cfg.Auth.CookieName)
	assert.False(t, cfg.Auth.CookieSecure)
	assert.Equal(t, int64(10), int64(cfg.Server.ShutdownTimeout().Seconds()))
}

func TestLoad_FlagsOverrideEnvironment(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		"TASKS_SERVER_PORT":     "9090",
		"TASKS_DATABASE_URL":    "postgres://localhost/tasks",
		"TASKS_AUTH_JWT_SECRET": testSecret,
	})
	defer cleanup()

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--port=7070"}))

	cfg, err := Load(fs)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	// Unset flags never shadow the environment.
	assert.Equal(t, "postgres://localhost/tasks", cfg.Database.URL)
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "missing database url",
			env: map[string]string{
				"TASKS_DATABASE_URL":    "",
				"TASKS_AUTH_JWT_SECRET": testSecret,
			},
		},
		{
			name: "short jwt secret",
			env: map[string]string{
				"TASKS_DATABASE_URL":    "postgres://localhost/tasks",
				"TASKS_AUTH_JWT_SECRET": "tooshort",
			},
		},
		{
			name: "unknown driver",
			env: map[string]string{
				"TASKS_DATABASE_DRIVER": "mysql",
				"TASKS_DATABASE_URL":    "postgres://localhost/tasks",
				"TASKS_AUTH_JWT_SECRET": testSecret,
			},
		},
		{
			name: "invalid log level",
			env: map[string]string{
				"TASKS_SERVER_LOG_LEVEL": "verbose",
				"TASKS_DATABASE_URL":     "postgres://localhost/tasks",
				"TASKS_AUTH_JWT_SECRET":  testSecret,
			},
		},
		{
			name: "port out of range",
			env: map[string]string{
				"TASKS_SERVER_PORT":     "70000",
				"TASKS_DATABASE_URL":    "postgres://localhost/tasks",
				"TASKS_AUTH_JWT_SECRET": testSecret,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleanup := setupEnv(t, tt.env)
			defer cleanup()

			_, err := Load(nil)
			assert.Error(t, err)
			assert.Contains(t, err.Error(), "config validation failed")
		})
	}
}
