package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	keys := []string{
		"SERVER_PORT", "LOG_LEVEL", "ALLOWED_ORIGINS", "ENABLE_DEV_MODE",
		"REQUEST_TIMEOUT", "SHUTDOWN_TIMEOUT", "IMAGE_WIDTH", "IMAGE_HEIGHT",
		"RENDER_WORKERS", "GRID_RESOLUTION", "MAX_CONCURRENT_JOBS",
		"JOB_RATE_LIMIT_PER_SECOND", "JOB_RATE_LIMIT_BURST", "PROFILE_DIR",
	}
	for _, k := range keys {
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.EnableDevMode)
	assert.Equal(t, 512, cfg.ImageWidth)
	assert.Equal(t, 512, cfg.ImageHeight)
	assert.Equal(t, 64, cfg.GridResolution)
	assert.Equal(t, 4, cfg.MaxConcurrentJobs)
}

func TestLoadReadsEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("IMAGE_WIDTH", "1024")
	t.Setenv("GRID_RESOLUTION", "128")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.ServerPort)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 1024, cfg.ImageWidth)
	assert.Equal(t, 128, cfg.GridResolution)
}

func TestValidateRejectsBadPort(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_PORT", "70000")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server port")
}

func TestValidateRejectsBadLogLevel(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOG_LEVEL", "verbose")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log level")
}

func TestValidateRejectsMissingOriginsInProductionMode(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENABLE_DEV_MODE", "false")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "allowed origins")
}

func TestValidateRejectsZeroGridResolution(t *testing.T) {
	clearEnv(t)
	t.Setenv("GRID_RESOLUTION", "0")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "grid resolution")
}

func TestValidateRejectsZeroConcurrentJobs(t *testing.T) {
	clearEnv(t)
	t.Setenv("MAX_CONCURRENT_JOBS", "0")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max concurrent jobs")
}

func TestOriginAllowedDevModeAllowsEverything(t *testing.T) {
	clearEnv(t)
	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.OriginAllowed("https://anything.example"))
}

func TestOriginAllowedProductionModeChecksAllowlist(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENABLE_DEV_MODE", "false")
	t.Setenv("ALLOWED_ORIGINS", "https://good.example")
	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.OriginAllowed("https://good.example"))
	assert.False(t, cfg.OriginAllowed("https://bad.example"))
}

func TestLoadDefaultTimeouts(t *testing.T) {
	clearEnv(t)
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
}
