package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetGlobals() {
	cfg = nil
	v = nil
}

func TestInit(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")

	configContent := `
game:
  starting_seconds: 300
  tick_interval_ms: 500
orientation:
  auto_flip: false
  flip_delay_ms: 250
ui:
  window:
    width: 1024
    height: 768
colors:
  board:
    light: "#ffffff"
    dark: "#000000"
`

	err := os.WriteFile(configFile, []byte(configContent), 0644)
	require.NoError(t, err)

	resetGlobals()

	err = Init(configFile)
	require.NoError(t, err)

	c := Get()
	assert.Equal(t, 300, c.Game.StartingSeconds)
	assert.Equal(t, 500*time.Millisecond, c.Game.TickInterval())
	assert.False(t, c.Orientation.AutoFlip)
	assert.Equal(t, 250*time.Millisecond, c.Orientation.FlipDelay())
	assert.Equal(t, 1024, c.UI.Window.Width)
	assert.Equal(t, 768, c.UI.Window.Height)
	assert.Equal(t, "#ffffff", c.Colors.Board.Light)
	assert.Equal(t, configFile, ConfigFilePath())
}

func TestInitWithDefaults(t *testing.T) {
	resetGlobals()

	// Explicit path that does not exist falls back to defaults
	err := Init(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	c := Get()
	assert.Equal(t, 600, c.Game.StartingSeconds)
	assert.Equal(t, time.Second, c.Game.TickInterval())
	assert.Equal(t, "", c.Game.StartFEN)
	assert.True(t, c.Orientation.AutoFlip)
	assert.Equal(t, 600*time.Millisecond, c.Orientation.FlipDelay())
	assert.Equal(t, "Bao Chess", c.UI.Window.Title)
	assert.Equal(t, 72, c.UI.Board.TileSize)
	assert.Equal(t, "info", c.Logging.Level)
	assert.Equal(t, "console", c.Logging.Format)
	assert.False(t, c.Development.DevEvents)
}

func TestEnvironmentVariables(t *testing.T) {
	t.Setenv("BAO_GAME_STARTING_SECONDS", "180")
	t.Setenv("BAO_ORIENTATION_AUTO_FLIP", "false")
	t.Setenv("BAO_LOGGING_LEVEL", "debug")

	resetGlobals()

	err := Init(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	c := Get()
	assert.Equal(t, 180, c.Game.StartingSeconds)
	assert.False(t, c.Orientation.AutoFlip)
	assert.Equal(t, "debug", c.Logging.Level)
}

func TestInitRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"zero allowance", "game:\n  starting_seconds: 0\n"},
		{"zero tick", "game:\n  tick_interval_ms: 0\n"},
		{"negative flip delay", "orientation:\n  flip_delay_ms: -5\n"},
		{"tiny tiles", "ui:\n  board:\n    tile_size: 4\n"},
		{"bad color", "colors:\n  board:\n    dark: \"brown\"\n"},
		{"bad format", "logging:\n  format: xml\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configFile := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(configFile, []byte(tt.content), 0644))

			resetGlobals()
			err := Init(configFile)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestSet(t *testing.T) {
	resetGlobals()

	err := Init(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	Set("game.starting_seconds", 60)
	Set("ui.window.width", 1280)

	c := Get()
	assert.Equal(t, 60, c.Game.StartingSeconds)
	assert.Equal(t, 1280, c.UI.Window.Width)
}

func TestGetHelpers(t *testing.T) {
	resetGlobals()

	err := Init(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	Set("test.string", "hello")
	Set("test.int", 42)
	Set("test.bool", true)
	Set("test.float", 3.14)

	assert.Equal(t, "hello", GetString("test.string"))
	assert.Equal(t, 42, GetInt("test.int"))
	assert.Equal(t, true, GetBool("test.bool"))
	assert.Equal(t, 3.14, GetFloat64("test.float"))
	assert.NotNil(t, GetViper())
}

func TestLoadEnvironmentConfig(t *testing.T) {
	tmpDir := t.TempDir()

	baseConfig := filepath.Join(tmpDir, "config.yaml")
	baseContent := `
game:
  starting_seconds: 600
logging:
  level: info
`
	require.NoError(t, os.WriteFile(baseConfig, []byte(baseContent), 0644))

	envConfig := filepath.Join(tmpDir, "config.blitz.yaml")
	envContent := `
game:
  starting_seconds: 180
logging:
  level: warn
  format: json
`
	require.NoError(t, os.WriteFile(envConfig, []byte(envContent), 0644))

	oldWd, _ := os.Getwd()
	_ = os.Chdir(tmpDir)
	defer func() { _ = os.Chdir(oldWd) }()

	resetGlobals()

	require.NoError(t, Init(baseConfig))
	require.NoError(t, LoadEnvironmentConfig("blitz"))

	c := Get()
	assert.Equal(t, 180, c.Game.StartingSeconds)
	assert.Equal(t, "warn", c.Logging.Level)
	assert.Equal(t, "json", c.Logging.Format)
	assert.Equal(t, 1000, c.Game.TickIntervalMs)
}

func TestLoadEnvironmentConfigEmpty(t *testing.T) {
	resetGlobals()
	require.NoError(t, Init(filepath.Join(t.TempDir(), "missing.yaml")))
	assert.NoError(t, LoadEnvironmentConfig(""))
}

func TestLoadEnvironmentConfigMissingOverlay(t *testing.T) {
	tmpDir := t.TempDir()
	baseConfig := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(baseConfig, []byte("game:\n  starting_seconds: 240\n"), 0644))

	resetGlobals()
	require.NoError(t, Init(baseConfig))
	require.NoError(t, LoadEnvironmentConfig("staging"))

	assert.Equal(t, 240, Get().Game.StartingSeconds)
	assert.Equal(t, baseConfig, ConfigFilePath())
}
