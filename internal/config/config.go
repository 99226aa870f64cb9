package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/iburimskiy/neoncircuit/internal/circuit"
)

// EnvPrefix marks environment overrides. A double underscore separates
// nested keys: NEONCIRCUIT_CIRCUIT__HOLD_MS sets circuit.hold_ms.
const EnvPrefix = "NEONCIRCUIT_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (NEONCIRCUIT_*). A missing file or an
// empty path leaves the defaults in place.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := c.YAML()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// YAML marshals the configuration.
func (c *Config) YAML() ([]byte, error) {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshalling config: %w", err)
	}
	return data, nil
}

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log_level %q: must be one of debug, info, warn, error", c.LogLevel)
	}

	if c.Window.Width < 320 || c.Window.Height < 240 {
		return fmt.Errorf("window must be at least 320x240, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Terminal.FPS < 1 || c.Terminal.FPS > 120 {
		return fmt.Errorf("terminal.fps must be between 1 and 120")
	}

	if c.Theme.Sections < 1 || c.Theme.Sections > 64 {
		return fmt.Errorf("theme.sections must be between 1 and 64")
	}
	if c.Theme.PinnedHue < Unpinned || c.Theme.PinnedHue > 359 {
		return fmt.Errorf("theme.pinned_hue must be -1 or a hue in [0, 359]")
	}
	if c.Theme.RegenerateSec < 0 {
		return fmt.Errorf("theme.regenerate_sec must be non-negative")
	}

	cc := c.Circuit
	if cc.MinNodes < 1 {
		return fmt.Errorf("circuit.min_nodes must be at least 1")
	}
	if cc.MaxNodes < cc.MinNodes {
		return fmt.Errorf("circuit.max_nodes (%d) must not be below min_nodes (%d)", cc.MaxNodes, cc.MinNodes)
	}
	if cc.MaxAttempts < 1 {
		return fmt.Errorf("circuit.max_attempts must be at least 1")
	}
	if cc.Margin < 0 || cc.TopBand < 0 || cc.BottomBand < 0 || cc.MinDistX < 0 || cc.MinDistY < 0 {
		return fmt.Errorf("circuit distances must be non-negative")
	}
	if cc.GlyphDelayMS < 1 {
		return fmt.Errorf("circuit.glyph_delay_ms must be at least 1")
	}
	if cc.ShowDelayMS < 0 || cc.NodeFadeMS < 0 || cc.SettleMS < 0 || cc.HoldMS < 0 || cc.FadeMS < 0 {
		return fmt.Errorf("circuit timings must be non-negative")
	}

	if c.Sound.SampleRate < 8000 || c.Sound.SampleRate > 192000 {
		return fmt.Errorf("sound.sample_rate must be between 8000 and 192000")
	}
	if c.Sound.Volume < 0 || c.Sound.Volume > 1 {
		return fmt.Errorf("sound.volume must be between 0 and 1")
	}
	if c.Sound.IntervalMS < 0 || c.Sound.LengthMS < 1 {
		return fmt.Errorf("sound.interval_ms must be non-negative and length_ms positive")
	}

	return nil
}

// CircuitConfig converts the circuit settings for the circuit package.
func (c *Config) CircuitConfig() circuit.Config {
	cc := c.Circuit
	return circuit.Config{
		MinNodes:       cc.MinNodes,
		MaxNodes:       cc.MaxNodes,
		MaxAttempts:    cc.MaxAttempts,
		Margin:         cc.Margin,
		TopBand:        cc.TopBand,
		BottomBand:     cc.BottomBand,
		MinDistX:       cc.MinDistX,
		MinDistY:       cc.MinDistY,
		GlyphDelay:     ms(cc.GlyphDelayMS),
		NodeFadeIn:     ms(cc.ShowDelayMS),
		Settle:         ms(cc.SettleMS),
		Hold:           ms(cc.HoldMS),
		Fade:           ms(cc.FadeMS),
		SerializeWires: cc.SerializeWires,
	}
}

// NodeFade is how long a node takes to appear.
func (c *Config) NodeFade() time.Duration { return ms(c.Circuit.NodeFadeMS) }

// FadeOut is how long a finished circuit takes to disappear.
func (c *Config) FadeOut() time.Duration { return ms(c.Circuit.FadeMS) }

// RegenerateEvery is the automatic scheme change period, zero when off.
func (c *Config) RegenerateEvery() time.Duration {
	return time.Duration(c.Theme.RegenerateSec) * time.Second
}

// BlipInterval is the shortest gap between two wire ticks.
func (c *Config) BlipInterval() time.Duration { return ms(c.Sound.IntervalMS) }

// BlipLength is how long one wire tick rings.
func (c *Config) BlipLength() time.Duration { return ms(c.Sound.LengthMS) }

func ms(v int) time.Duration {
	return time.Duration(v) * time.Millisecond
}
