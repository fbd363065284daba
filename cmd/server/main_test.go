package main

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/config"
)

func TestConfigureLogger(t *testing.T) {
	logger := logrus.New()
	var cfg config.Config
	cfg.Log.Level = "debug"
	cfg.Log.Format = "json"

	require.NoError(t, configureLogger(logger, cfg))
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)

	cfg.Log.Format = "xml"
	assert.Error(t, configureLogger(logger, cfg))

	cfg.Log.Level = "loud"
	assert.Error(t, configureLogger(logger, cfg))
}

func TestOpenStoreSQLite(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	var cfg config.Config
	cfg.Database.Driver = config.DriverSQLite
	cfg.Database.Path = filepath.Join(t.TempDir(), "storefront.db")

	store, err := openStore(context.Background(), cfg, logger)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	require.NoError(t, store.Init(context.Background()))
	assert.NoError(t, store.Ping(context.Background()))
}

func TestOpenStoreUnknownDriver(t *testing.T) {
	var cfg config.Config
	cfg.Database.Driver = "oracle"

	_, err := openStore(context.Background(), cfg, logrus.New())

	assert.Error(t, err)
}
