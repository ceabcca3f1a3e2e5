package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOverlaysDefaults(t *testing.T) {
	cfg := Default()
	err := cfg.Load(`
theme = "dark"

[dialog]
width = 72
max_visible_rows = 6

[hud]
message_timeout_ms = 1000
`)
	require.NoError(t, err)

	assert.Equal(t, "dark", cfg.Theme)
	assert.Equal(t, 72, cfg.Dialog.Width)
	assert.Equal(t, 6, cfg.Dialog.MaxVisibleRows)
	// Untouched fields keep their defaults.
	assert.Equal(t, 18, cfg.Dialog.MaxHeight)
	assert.True(t, cfg.Dialog.ShowFooter)
	assert.Equal(t, time.Second, cfg.MessageTimeout())
}

func TestLoadRejectsInvalidGeometry(t *testing.T) {
	cfg := Default()
	err := cfg.Load(`
[dialog]
min_height = 30
max_height = 10
`)
	assert.ErrorContains(t, err, "min_height")

	cfg = Default()
	err = cfg.Load(`
[dialog]
row_height = 0
`)
	assert.ErrorContains(t, err, "row_height")

	cfg = Default()
	err = cfg.Load(`
[command_bar]
visible_rows = 0
`)
	assert.ErrorContains(t, err, "visible_rows")
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	cfg := Default()
	assert.Error(t, cfg.Load("[dialog\nwidth = 72"))
}

func TestGetConfigDirHonorsEnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("RUNEBAR_CONFIG_DIR", dir)
	assert.Equal(t, dir, GetConfigDir())
}
