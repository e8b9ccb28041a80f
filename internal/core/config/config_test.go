package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("LINE_CHANNEL_SECRET", "test-secret")
	t.Setenv("LINE_CHANNEL_ACCESS_TOKEN", "test-token")
}

// TestLoad_Defaults verifies that default values are used when env vars are missing.
func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("APP_ENV")
	os.Unsetenv("LOG_LEVEL")
	os.Unsetenv("SERVER_PORT")
	os.Unsetenv("OPENAI_MODEL")
	os.Unsetenv("TRACKING_API_ENABLED")
	os.Unsetenv("INTENT_CONFIDENCE_THRESHOLD")
	setRequiredEnv(t)

	cfg, err := Load(".")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 3000, cfg.ServerPort)
	assert.Equal(t, "gpt-4o-mini", cfg.AI.Model)
	assert.False(t, cfg.Tracking.APIEnabled)
	assert.Equal(t, "https://api.mysave.cc/tracking", cfg.Tracking.APIEndpoint)
	assert.Equal(t, "data/faq.md", cfg.Knowledge.FAQPath)
	assert.InDelta(t, 0.7, cfg.Intent.ConfidenceThreshold, 1e-9)
}

// TestLoad_EnvOverrides verifies that environment variables take precedence over defaults.
func TestLoad_EnvOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("SERVER_PORT", "8081")
	t.Setenv("TRACKING_API_ENABLED", "true")
	t.Setenv("INTENT_CONFIDENCE_THRESHOLD", "0.85")

	cfg, err := Load(".")
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, 8081, cfg.ServerPort)
	assert.True(t, cfg.Tracking.APIEnabled)
	assert.InDelta(t, 0.85, cfg.Intent.ConfidenceThreshold, 1e-9)
}

// TestLoad_MissingRequired verifies that missing LINE credentials fail the load.
func TestLoad_MissingRequired(t *testing.T) {
	os.Unsetenv("LINE_CHANNEL_SECRET")
	t.Setenv("LINE_CHANNEL_ACCESS_TOKEN", "test-token")

	cfg, err := Load(".")
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "LINE_CHANNEL_SECRET")
}
