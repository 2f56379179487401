package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kon.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[app]
tick_rate = "100ms"
max_ticks = 20

[world]
entity_capacity = 64

[debug]
inspect = true

[logging]
level = "debug"
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 100*time.Millisecond, cfg.App.TickRate)
	assert.Equal(t, uint64(20), cfg.App.MaxTicks)
	assert.Equal(t, 64, cfg.World.EntityCapacity)
	assert.Equal(t, 256, cfg.World.StorageCapacity, "default kept")
	assert.True(t, cfg.Debug.Inspect)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "kon", cfg.App.Name)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorContains(t, err, "read config")
}

func TestLoadRejectsBadValues(t *testing.T) {
	_, err := Load(writeConfig(t, "[app]\ntick_rate = \"soon\"\n"))
	assert.ErrorContains(t, err, "parse config")

	_, err = Load(writeConfig(t, "[app]\ntick_rate = \"0s\"\n"))
	assert.ErrorContains(t, err, "tick_rate")

	_, err = Load(writeConfig(t, "[scripting]\nenabled = true\ndir = \"\"\n"))
	assert.ErrorContains(t, err, "scripting.dir")
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.validate())
	assert.Equal(t, "console", cfg.Logging.Format)
}
