package sound

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

const (
	DefaultSampleRate = beep.SampleRate(44100)
	DefaultInterval   = 40 * time.Millisecond
	DefaultLength     = 60 * time.Millisecond
	DefaultVolume     = 0.2
	ScopeRingSize     = 8192
)

// Player mixes blips into a single always-on stream. Until Start succeeds
// it still mixes, but nothing reaches the speaker.
type Player struct {
	sr       beep.SampleRate
	mixer    *beep.Mixer
	tap      *Tap
	interval time.Duration
	length   time.Duration
	volume   float64
	now      func() time.Time
	logger   *log.Logger

	last time.Time
	live bool
}

// Option configures a Player.
type Option func(*Player)

func WithLogger(l *log.Logger) Option {
	return func(p *Player) { p.logger = l }
}

// WithVolume sets the blip gain, clamped to [0, 1].
func WithVolume(v float64) Option {
	return func(p *Player) { p.volume = min(max(v, 0), 1) }
}

// WithInterval sets the minimum time between two blips.
func WithInterval(d time.Duration) Option {
	return func(p *Player) { p.interval = d }
}

// WithLength sets how long one blip rings.
func WithLength(d time.Duration) Option {
	return func(p *Player) {
		if d > 0 {
			p.length = d
		}
	}
}

// WithClock replaces time.Now for rate limiting.
func WithClock(now func() time.Time) Option {
	return func(p *Player) { p.now = now }
}

// NewPlayer builds a player at sample rate sr.
func NewPlayer(sr beep.SampleRate, opts ...Option) *Player {
	if sr <= 0 {
		sr = DefaultSampleRate
	}
	mixer := &beep.Mixer{}
	p := &Player{
		sr:       sr,
		mixer:    mixer,
		tap:      NewTap(mixer, ScopeRingSize),
		interval: DefaultInterval,
		length:   DefaultLength,
		volume:   DefaultVolume,
		now:      time.Now,
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Start opens the speaker and begins streaming the mix.
func (p *Player) Start() error {
	bufferSize := p.sr.N(time.Second / 20)
	if err := speaker.Init(p.sr, bufferSize); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(p.tap)
	p.live = true
	p.logger.Debug("speaker started", "rate", int(p.sr), "buffer", bufferSize)
	return nil
}

// Live reports whether the speaker is playing the mix.
func (p *Player) Live() bool { return p.live }

// Tap is the scope tap on the mix.
func (p *Player) Tap() *Tap { return p.tap }

// Blip queues a tick for glyph unless one started less than the interval
// ago. It reports whether a tick was queued.
func (p *Player) Blip(glyph rune) bool {
	now := p.now()
	if !p.last.IsZero() && now.Sub(p.last) < p.interval {
		return false
	}
	p.last = now
	if p.volume == 0 {
		return false
	}

	s := Blip(p.sr, Pitch(glyph), p.length, p.volume)
	if p.live {
		speaker.Lock()
		p.mixer.Add(s)
		speaker.Unlock()
	} else {
		p.mixer.Add(s)
	}
	return true
}

// Stop drops every queued blip.
func (p *Player) Stop() {
	if !p.live {
		p.mixer.Clear()
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Clear()
	p.live = false
}
