package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tour-campaigns/internal/config/configs"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, configs.StoreDriverPostgres, cfg.Store.DriverName())
	assert.Equal(t, 90, cfg.Campaign.RetentionDays)
	assert.Equal(t, 20, cfg.Campaign.DefaultPageSize)
	assert.Equal(t, 100, cfg.Campaign.MaxPageSize)
	assert.Equal(t, "campaigns", cfg.Psql.Addr.Path[1:])
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("STORE_DRIVER", " Memory ")
	t.Setenv("LOG_LEVEL", "WARN")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("CAMPAIGN_RETENTION_DAYS", "30")
	t.Setenv("PSQL_SEED", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(9090), cfg.HTTP.Port)
	assert.Equal(t, configs.StoreDriverMemory, cfg.Store.DriverName())
	assert.Equal(t, slog.LevelWarn, cfg.Log.SlogLevel())
	assert.Equal(t, "json", cfg.Log.SlogFormat())
	assert.Equal(t, 30, cfg.Campaign.RetentionDays)
	assert.True(t, cfg.Psql.Seed)
}

func TestLoadRejectsMalformedValues(t *testing.T) {
	t.Setenv("HTTP_PORT", "not-a-port")
	_, err := Load()
	require.Error(t, err)
}
