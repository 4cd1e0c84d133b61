package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	// Point config discovery at an empty directory so no real file leaks in.
	t.Chdir(t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Simulate.Count)
	assert.Equal(t, 2, cfg.Simulate.Workers)
	assert.Equal(t, 4, cfg.Simulate.Updates)
	assert.False(t, cfg.Downloads.Prompt)
	assert.NotEmpty(t, cfg.Downloads.Dir)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("GRABBY_DOWNLOADS_DIR", "/srv/incoming")
	t.Setenv("GRABBY_DOWNLOADS_PROMPT", "true")
	t.Setenv("GRABBY_SIMULATE_COUNT", "7")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "/srv/incoming", cfg.Downloads.Dir)
	assert.True(t, cfg.Downloads.Prompt)
	assert.Equal(t, 7, cfg.Simulate.Count)
}
