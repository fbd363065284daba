package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8080", cfg.Server.Addr)
	assert.Equal(t, time.Duration(0), cfg.Server.RequestTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, config.DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "data/storefront.db", cfg.Database.Path)
	assert.Equal(t, 10, cfg.Database.MaxOpenConns)
	assert.Equal(t, 5*time.Minute, cfg.Database.ConnMaxIdleTime)
	assert.Equal(t, 2*time.Second, cfg.Health.Timeout)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("STOREFRONT_SERVER_ADDR", "0.0.0.0:9000")
	t.Setenv("STOREFRONT_SERVER_REQUESTTIMEOUT", "3s")
	t.Setenv("STOREFRONT_DATABASE_DRIVER", "Postgres")
	t.Setenv("STOREFRONT_DATABASE_URL", "postgres://localhost/storefront?sslmode=disable")
	t.Setenv("STOREFRONT_DATABASE_MAXOPENCONNS", "20")
	t.Setenv("STOREFRONT_LOG_LEVEL", "debug")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9000", cfg.Server.Addr)
	assert.Equal(t, 3*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, config.DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, "postgres://localhost/storefront?sslmode=disable", cfg.Database.URL)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadDatabaseURLFallback(t *testing.T) {
	t.Setenv("STOREFRONT_DATABASE_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "postgres://db/app")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres://db/app", cfg.Database.URL)
}

func TestLoadAppHostPort(t *testing.T) {
	t.Setenv("APP_HOST", "0.0.0.0")
	t.Setenv("APP_PORT", "3000")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:3000", cfg.Server.Addr)
}

func TestLoadRejectsBadAppPort(t *testing.T) {
	t.Setenv("APP_PORT", "99999")

	_, err := config.Load()

	assert.Error(t, err)
}

func TestLoadRequiresPostgresURL(t *testing.T) {
	t.Setenv("STOREFRONT_DATABASE_DRIVER", "postgres")

	_, err := config.Load()

	assert.Error(t, err)
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("STOREFRONT_DATABASE_DRIVER", "oracle")

	_, err := config.Load()

	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(
		"# local overrides\nSTOREFRONT_LOG_LEVEL=\"warn\"\nSTOREFRONT_HEALTH_TIMEOUT=5s\n",
	), 0o600))
	t.Chdir(dir)
	t.Setenv("STOREFRONT_HEALTH_TIMEOUT", "7s")
	t.Setenv("STOREFRONT_LOG_LEVEL", "")
	require.NoError(t, os.Unsetenv("STOREFRONT_LOG_LEVEL"))

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, 7*time.Second, cfg.Health.Timeout)
}
