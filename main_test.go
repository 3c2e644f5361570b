package main

import (
	"testing"
	"time"

	"github.com/ardanlabs/conf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Defaults(t *testing.T) {
	var cfg config
	require.NoError(t, conf.Parse(nil, envPrefix, &cfg))

	assert.Equal(t, "go", cfg.Status.Language)
	assert.Equal(t, "/api/hello", cfg.Server.StatusPath)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)

	srvCfg := serverConfig(cfg)
	assert.Equal(t, "0.0.0.0:8000", srvCfg.Address)
	assert.Equal(t, "/metrics", srvCfg.MetricsPath)
	assert.Equal(t, 5*time.Second, srvCfg.ReadTimeout)
	assert.Equal(t, 60*time.Second, srvCfg.IdleTimeout)
}

func TestConfig_GivenEnvironment_ThenOverridesDefaults(t *testing.T) {
	t.Setenv("STATUS_SERVICE_SERVER_PORT", "9999")
	t.Setenv("STATUS_SERVICE_STATUS_LANGUAGE", "python")
	t.Setenv("STATUS_SERVICE_SERVER_HOST", "::1")

	var cfg config
	require.NoError(t, conf.Parse(nil, envPrefix, &cfg))

	assert.Equal(t, "python", cfg.Status.Language)
	assert.Equal(t, "[::1]:9999", serverConfig(cfg).Address)
}

func TestConfig_GivenFlags_ThenOverridesDefaults(t *testing.T) {
	var cfg config
	require.NoError(t, conf.Parse([]string{"--server-status-path=/status", "--metrics-enabled=false"}, envPrefix, &cfg))

	assert.Equal(t, "/status", cfg.Server.StatusPath)
	assert.False(t, cfg.Metrics.Enabled)
}
