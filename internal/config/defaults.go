package config

const (
	WindowWidth  = 1024
	WindowHeight = 768
	WindowTitle  = "neoncircuit - Space: pause, R: new theme, C: pick hue, Esc/Q: quit"

	// Terminal frame rate
	TerminalFPS = 30

	// Theme
	SectionCount = 8
	Unpinned     = -1

	// Layout in pixels
	MinNodes    = 6
	MaxNodes    = 10
	MaxAttempts = 150
	Margin      = 80
	TopBand     = 180
	BottomBand  = 100
	MinDistX    = 250
	MinDistY    = 280

	// Animation timing in milliseconds
	GlyphDelayMS = 20
	ShowDelayMS  = 50
	NodeFadeMS   = 500
	SettleMS     = 1000
	HoldMS       = 3000
	FadeMS       = 1000

	// Sound
	SampleRate     = 44100
	Volume         = 0.2
	BlipIntervalMS = 40
	BlipLengthMS   = 60
	ScopeSamples   = 1024
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Window: WindowConfig{
			Width:  WindowWidth,
			Height: WindowHeight,
			Title:  WindowTitle,
		},
		Terminal: TerminalConfig{
			FPS: TerminalFPS,
		},
		Theme: ThemeConfig{
			Sections:  SectionCount,
			PinnedHue: Unpinned,
			Glitch:    true,
		},
		Circuit: CircuitConfig{
			MinNodes:     MinNodes,
			MaxNodes:     MaxNodes,
			MaxAttempts:  MaxAttempts,
			Margin:       Margin,
			TopBand:      TopBand,
			BottomBand:   BottomBand,
			MinDistX:     MinDistX,
			MinDistY:     MinDistY,
			GlyphDelayMS: GlyphDelayMS,
			ShowDelayMS:  ShowDelayMS,
			NodeFadeMS:   NodeFadeMS,
			SettleMS:     SettleMS,
			HoldMS:       HoldMS,
			FadeMS:       FadeMS,
		},
		Sound: SoundConfig{
			Enabled:    true,
			SampleRate: SampleRate,
			Volume:     Volume,
			IntervalMS: BlipIntervalMS,
			LengthMS:   BlipLengthMS,
			Scope:      true,
		},
	}
}
