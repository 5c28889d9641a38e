package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"badgeserver/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "http://shields.io", cfg.App.SiteURL)
	assert.Equal(t, 60*time.Second, cfg.Cache.TTL)
	assert.Equal(t, "file", cfg.Analytics.Backend)
	assert.Equal(t, "./analytics.json", cfg.Analytics.Path)
	assert.Equal(t, 10*time.Second, cfg.Analytics.SaveInterval)
	assert.False(t, cfg.Upstream.AllowPrivateIPs)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("CACHE_TTL", "2m")
	t.Setenv("ANALYTICS_BACKEND", "postgres")
	t.Setenv("UPSTREAM_NPM_REGISTRY_URL", "https://npm.internal")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 2*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, "postgres", cfg.Analytics.Backend)
	assert.Equal(t, "https://npm.internal", cfg.Upstream.NPMRegistryURL)
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("ANALYTICS_SAVE_INTERVAL", "soon")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := config.DatabaseConfig{
		Host: "db", Port: 5433, User: "u", Password: "p", DBName: "badges", SSLMode: "require",
	}
	assert.Equal(t, "host=db port=5433 user=u password=p dbname=badges sslmode=require", cfg.DSN())
}
