package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobtrail/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.ServerPort)
	assert.Equal(t, "./jobs.db", cfg.DatabasePath)
	assert.Equal(t, "development", cfg.AppEnv)
	assert.Empty(t, cfg.SecretKey)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_PATH", "/tmp/tracker.db")
	t.Setenv("SECRET_KEY", "abc")
	t.Setenv("APP_ENV", "production")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.ServerPort)
	assert.Equal(t, "/tmp/tracker.db", cfg.DatabasePath)
	assert.Equal(t, "abc", cfg.SecretKey)
	assert.Equal(t, "production", cfg.AppEnv)
}

func TestLoadBadPort(t *testing.T) {
	t.Setenv("PORT", "not-a-port")

	_, err := config.Load()
	assert.Error(t, err)
}
