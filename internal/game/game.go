// Package game is the desktop frontend: an ebiten window showing the themed
// page with the circuit animation behind it.
package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/neoncircuit/internal/circuit"
	"github.com/iburimskiy/neoncircuit/internal/config"
	"github.com/iburimskiy/neoncircuit/internal/palette"
	"github.com/iburimskiy/neoncircuit/internal/scene"
	"github.com/iburimskiy/neoncircuit/internal/sound"
	"github.com/iburimskiy/neoncircuit/internal/theme"
	"github.com/iburimskiy/neoncircuit/internal/timeline"
)

// Rand drives theme, layout and glitch randomness.
type Rand interface {
	Float64() float64
}

const scopeBands = 48

type Game struct {
	cfg    *config.Config
	logger *log.Logger

	gen    *theme.Generator
	tl     *timeline.Timeline
	scene  *scene.Scene
	cycle  *circuit.Cycle
	player *sound.Player

	// viz
	width, height int
	page          *ebiten.Image
	text          *textCache
	scope         []float64

	// state
	elapsed time.Duration
	paused  bool
	lastErr error
}

// New wires a scene and a circuit cycle to one timeline and starts both.
// player may be nil when sound is off. A circuit that cannot start is
// logged and the page runs without it.
func New(cfg *config.Config, rnd Rand, player *sound.Player, logger *log.Logger) *Game {
	g := &Game{
		cfg:    cfg,
		logger: logger,
		tl:     timeline.New(),
		player: player,
		width:  cfg.Window.Width,
		height: cfg.Window.Height,
		text:   newTextCache(),
	}

	g.gen = theme.NewGenerator(rnd, theme.WithLogger(logger.WithPrefix("theme")))
	if cfg.Theme.PinnedHue != config.Unpinned {
		g.gen.PinPrimaryHue(cfg.Theme.PinnedHue)
	}

	opts := []scene.Option{
		scene.WithLogger(logger.WithPrefix("scene")),
		scene.WithSections(cfg.Theme.Sections),
		scene.WithFades(cfg.NodeFade(), cfg.FadeOut()),
	}
	if player != nil {
		opts = append(opts, scene.WithWireHook(func(w circuit.Wire) { player.Blip(w.Glyph) }))
	}
	g.scene = scene.New(g.gen, g.tl, rnd, opts...)

	cycle, err := circuit.NewCycle(cfg.CircuitConfig(), g.viewport, g.tl, g.scene, rnd,
		circuit.WithLogger(logger.WithPrefix("circuit")))
	if err != nil {
		logger.Error("circuit disabled", "err", err)
	} else {
		g.cycle = cycle
		cycle.Start()
	}

	if cfg.Theme.Glitch {
		g.scene.Glitch()
	}
	g.scheduleRegenerate()
	return g
}

// Run opens the window and blocks until it closes.
func (g *Game) Run() error {
	ebiten.SetWindowSize(g.cfg.Window.Width, g.cfg.Window.Height)
	ebiten.SetWindowTitle(g.cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

func (g *Game) viewport() circuit.Viewport {
	return circuit.Viewport{Width: float64(g.width), Height: float64(g.height)}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.regenerate()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyU) {
		g.gen.Unpin()
		g.regenerate()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if err := g.pickHue(); err != nil {
			g.lastErr = err
			g.logger.Error("color picker failed", "err", err)
		}
	}

	g.updateScope()
	if g.paused {
		return nil
	}

	dt := time.Second / time.Duration(ebiten.TPS())
	g.scene.Step(dt)
	g.tl.Advance(dt)
	g.elapsed += dt
	return nil
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// regenerate swaps the scheme, behind a glitch when enabled.
func (g *Game) regenerate() {
	if g.cfg.Theme.Glitch {
		g.scene.Glitch()
		return
	}
	g.scene.Regenerate()
}

func (g *Game) scheduleRegenerate() {
	every := g.cfg.RegenerateEvery()
	if every <= 0 {
		return
	}
	g.tl.After(every, func() {
		g.regenerate()
		g.scheduleRegenerate()
	})
}

// pickHue pins the primary hue to a color chosen in the system picker.
func (g *Game) pickHue() error {
	current := palette.MustHex(g.scene.Scheme().Theme.Accent)
	c, err := zenity.SelectColor(
		zenity.Title("Pick a primary hue"),
		zenity.Color(current.RGBA()),
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return fmt.Errorf("select color: %w", err)
	}

	hue := palette.HueOf(c)
	g.gen.PinPrimaryHue(hue)
	g.logger.Info("primary hue pinned", "hue", hue)
	g.regenerate()
	return nil
}

func (g *Game) updateScope() {
	if g.player == nil || !g.cfg.Sound.Scope {
		return
	}
	samples := g.player.Tap().Snapshot(config.ScopeSamples)
	g.scope = sound.Bands(samples, g.scope, scopeBands, sound.SmoothingFactor)
}
