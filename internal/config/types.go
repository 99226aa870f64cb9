package config

// Config is the top-level neoncircuit configuration, corresponding to neoncircuit.yml.
type Config struct {
	LogLevel string         `yaml:"log_level" koanf:"log_level"`
	Seed     uint64         `yaml:"seed" koanf:"seed"`
	Window   WindowConfig   `yaml:"window" koanf:"window"`
	Terminal TerminalConfig `yaml:"terminal" koanf:"terminal"`
	Theme    ThemeConfig    `yaml:"theme" koanf:"theme"`
	Circuit  CircuitConfig  `yaml:"circuit" koanf:"circuit"`
	Sound    SoundConfig    `yaml:"sound" koanf:"sound"`
}

// WindowConfig holds desktop window settings.
type WindowConfig struct {
	Width  int    `yaml:"width" koanf:"width"`
	Height int    `yaml:"height" koanf:"height"`
	Title  string `yaml:"title" koanf:"title"`
}

// TerminalConfig holds terminal frontend settings.
type TerminalConfig struct {
	FPS int `yaml:"fps" koanf:"fps"`
}

// ThemeConfig controls scheme generation. PinnedHue is -1 when the
// primary hue is random. RegenerateSec of 0 keeps a scheme until asked.
type ThemeConfig struct {
	Sections      int  `yaml:"sections" koanf:"sections"`
	PinnedHue     int  `yaml:"pinned_hue" koanf:"pinned_hue"`
	Glitch        bool `yaml:"glitch" koanf:"glitch"`
	RegenerateSec int  `yaml:"regenerate_sec" koanf:"regenerate_sec"`
}

// CircuitConfig controls layout and animation. Distances are pixels and
// timings are milliseconds.
type CircuitConfig struct {
	MinNodes       int     `yaml:"min_nodes" koanf:"min_nodes"`
	MaxNodes       int     `yaml:"max_nodes" koanf:"max_nodes"`
	MaxAttempts    int     `yaml:"max_attempts" koanf:"max_attempts"`
	Margin         float64 `yaml:"margin" koanf:"margin"`
	TopBand        float64 `yaml:"top_band" koanf:"top_band"`
	BottomBand     float64 `yaml:"bottom_band" koanf:"bottom_band"`
	MinDistX       float64 `yaml:"min_dist_x" koanf:"min_dist_x"`
	MinDistY       float64 `yaml:"min_dist_y" koanf:"min_dist_y"`
	GlyphDelayMS   int     `yaml:"glyph_delay_ms" koanf:"glyph_delay_ms"`
	ShowDelayMS    int     `yaml:"show_delay_ms" koanf:"show_delay_ms"`
	NodeFadeMS     int     `yaml:"node_fade_ms" koanf:"node_fade_ms"`
	SettleMS       int     `yaml:"settle_ms" koanf:"settle_ms"`
	HoldMS         int     `yaml:"hold_ms" koanf:"hold_ms"`
	FadeMS         int     `yaml:"fade_ms" koanf:"fade_ms"`
	SerializeWires bool    `yaml:"serialize_wires" koanf:"serialize_wires"`
}

// SoundConfig holds the wire tick settings.
type SoundConfig struct {
	Enabled    bool    `yaml:"enabled" koanf:"enabled"`
	SampleRate int     `yaml:"sample_rate" koanf:"sample_rate"`
	Volume     float64 `yaml:"volume" koanf:"volume"`
	IntervalMS int     `yaml:"interval_ms" koanf:"interval_ms"`
	LengthMS   int     `yaml:"length_ms" koanf:"length_ms"`
	Scope      bool    `yaml:"scope" koanf:"scope"`
}
