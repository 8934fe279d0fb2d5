package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "https://splits-backend.vercel.app", c.ServerBaseURL)
	assert.Equal(t, 15*time.Second, c.RequestTimeout)
	assert.Equal(t, "splits.db", c.LocalDBPath)
	assert.Equal(t, "info", c.LogLevel)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "https://splits-backend.vercel.app", cfg.ServerBaseURL)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
}

func TestParseEnv(t *testing.T) {
	t.Setenv("SPLITS_API_URL", "http://localhost:3000")
	t.Setenv("SPLITS_DB", "/tmp/session.db")
	t.Setenv("LOG_LEVEL", "debug")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, "http://localhost:3000", c.ServerBaseURL)
	assert.Equal(t, "/tmp/session.db", c.LocalDBPath)
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, 15*time.Second, c.RequestTimeout, "untouched fields keep defaults")
}
