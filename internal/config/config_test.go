package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/neoncircuit/internal/circuit"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, WindowWidth, cfg.Window.Width)
	assert.Equal(t, WindowHeight, cfg.Window.Height)
	assert.Equal(t, SectionCount, cfg.Theme.Sections)
	assert.Equal(t, Unpinned, cfg.Theme.PinnedHue)
	assert.True(t, cfg.Sound.Enabled)
	require.NoError(t, cfg.Validate())
}

func TestDefaultCircuitMatchesPackageDefaults(t *testing.T) {
	assert.Equal(t, circuit.DefaultConfig(), DefaultConfig().CircuitConfig())
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "neoncircuit.yml")

	original := DefaultConfig()
	original.Seed = 1234
	original.Theme.Sections = 4
	original.Theme.PinnedHue = 200
	original.Circuit.HoldMS = 5000
	original.Circuit.SerializeWires = true
	original.Sound.Volume = 0.5
	require.NoError(t, original.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, original, loaded)
	assert.Equal(t, 5*time.Second, loaded.CircuitConfig().Hold)
	assert.True(t, loaded.CircuitConfig().SerializeWires)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "neoncircuit.yml")
	data := "log_level: debug\ncircuit:\n  min_nodes: 3\n  max_nodes: 4\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 3, cfg.Circuit.MinNodes)
	assert.Equal(t, 4, cfg.Circuit.MaxNodes)
	assert.Equal(t, MaxAttempts, cfg.Circuit.MaxAttempts)
	assert.Equal(t, WindowWidth, cfg.Window.Width)
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nonexistent.yml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	require.NoError(t, os.WriteFile(path, []byte("window: [1, 2\n"), 0644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("NEONCIRCUIT_LOG_LEVEL", "warn")
	t.Setenv("NEONCIRCUIT_SEED", "77")
	t.Setenv("NEONCIRCUIT_CIRCUIT__HOLD_MS", "1500")
	t.Setenv("NEONCIRCUIT_SOUND__ENABLED", "false")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, uint64(77), cfg.Seed)
	assert.Equal(t, 1500, cfg.Circuit.HoldMS)
	assert.False(t, cfg.Sound.Enabled)
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "log_level", envKey("NEONCIRCUIT_LOG_LEVEL"))
	assert.Equal(t, "circuit.glyph_delay_ms", envKey("NEONCIRCUIT_CIRCUIT__GLYPH_DELAY_MS"))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"log level", func(c *Config) { c.LogLevel = "chatty" }},
		{"tiny window", func(c *Config) { c.Window.Width = 100 }},
		{"fps", func(c *Config) { c.Terminal.FPS = 0 }},
		{"no sections", func(c *Config) { c.Theme.Sections = 0 }},
		{"hue", func(c *Config) { c.Theme.PinnedHue = 360 }},
		{"regenerate", func(c *Config) { c.Theme.RegenerateSec = -1 }},
		{"min nodes", func(c *Config) { c.Circuit.MinNodes = 0 }},
		{"node range", func(c *Config) { c.Circuit.MaxNodes = 2 }},
		{"attempts", func(c *Config) { c.Circuit.MaxAttempts = 0 }},
		{"distance", func(c *Config) { c.Circuit.MinDistX = -1 }},
		{"glyph delay", func(c *Config) { c.Circuit.GlyphDelayMS = 0 }},
		{"timing", func(c *Config) { c.Circuit.HoldMS = -1 }},
		{"sample rate", func(c *Config) { c.Sound.SampleRate = 100 }},
		{"volume", func(c *Config) { c.Sound.Volume = 1.5 }},
		{"blip length", func(c *Config) { c.Sound.LengthMS = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestDurations(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 500*time.Millisecond, cfg.NodeFade())
	assert.Equal(t, time.Second, cfg.FadeOut())
	assert.Zero(t, cfg.RegenerateEvery())
	cfg.Theme.RegenerateSec = 30
	assert.Equal(t, 30*time.Second, cfg.RegenerateEvery())
	assert.Equal(t, 40*time.Millisecond, cfg.BlipInterval())
	assert.Equal(t, 60*time.Millisecond, cfg.BlipLength())
}
