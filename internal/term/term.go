// Package term runs the scene on a terminal through tcell. Pixel positions
// from the layout map onto cells one wire step per cell.
package term

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/neoncircuit/internal/circuit"
	"github.com/iburimskiy/neoncircuit/internal/config"
	"github.com/iburimskiy/neoncircuit/internal/scene"
	"github.com/iburimskiy/neoncircuit/internal/sound"
	"github.com/iburimskiy/neoncircuit/internal/theme"
	"github.com/iburimskiy/neoncircuit/internal/timeline"
)

// Cell size in layout pixels.
const (
	CellWidth  = circuit.StepX
	CellHeight = circuit.StepY
)

// Rows reserved around the circuit.
const (
	headerRows = 4
	footerRows = 2
	marginCols = 2
)

// Rand drives theme, layout and glitch randomness.
type Rand interface {
	Float64() float64
}

type App struct {
	screen tcell.Screen
	cfg    *config.Config
	logger *log.Logger

	gen    *theme.Generator
	tl     *timeline.Timeline
	scene  *scene.Scene
	cycle  *circuit.Cycle
	player *sound.Player

	cols, rows int
	paused     bool
}

// New builds the app on an initialized screen and starts the animation.
// player may be nil. A circuit that cannot start is logged and the page
// runs without it.
func New(screen tcell.Screen, cfg *config.Config, rnd Rand, player *sound.Player, logger *log.Logger) *App {
	a := &App{
		screen: screen,
		cfg:    cfg,
		logger: logger,
		tl:     timeline.New(),
		player: player,
	}
	a.cols, a.rows = screen.Size()

	a.gen = theme.NewGenerator(rnd, theme.WithLogger(logger.WithPrefix("theme")))
	if cfg.Theme.PinnedHue != config.Unpinned {
		a.gen.PinPrimaryHue(cfg.Theme.PinnedHue)
	}

	opts := []scene.Option{
		scene.WithLogger(logger.WithPrefix("scene")),
		scene.WithSections(cfg.Theme.Sections),
		scene.WithFades(cfg.NodeFade(), cfg.FadeOut()),
	}
	if player != nil {
		opts = append(opts, scene.WithWireHook(func(w circuit.Wire) { player.Blip(w.Glyph) }))
	}
	a.scene = scene.New(a.gen, a.tl, rnd, opts...)

	cycle, err := circuit.NewCycle(LayoutConfig(cfg.CircuitConfig()), a.viewport, a.tl, a.scene, rnd,
		circuit.WithLogger(logger.WithPrefix("circuit")))
	if err != nil {
		logger.Error("circuit disabled", "err", err)
	} else {
		a.cycle = cycle
		cycle.Start()
	}

	if cfg.Theme.Glitch {
		a.scene.Glitch()
	}
	a.scheduleRegenerate()
	return a
}

// LayoutConfig fits the reserved bands and margins to the terminal rows
// and columns the page copy takes.
func LayoutConfig(c circuit.Config) circuit.Config {
	c.Margin = marginCols * CellWidth
	c.TopBand = (headerRows + 1) * CellHeight
	c.BottomBand = (footerRows + 1) * CellHeight
	return c
}

func (a *App) viewport() circuit.Viewport {
	return circuit.Viewport{
		Width:  float64(a.cols * CellWidth),
		Height: float64(a.rows * CellHeight),
	}
}

// Scene exposes the scene being drawn.
func (a *App) Scene() *scene.Scene { return a.scene }

// Run draws at the configured frame rate until ctx ends or a quit key.
func (a *App) Run(ctx context.Context) error {
	fps := max(a.cfg.Terminal.FPS, 1)
	frame := time.Second / time.Duration(fps)
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	a.Draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !a.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			if !a.paused {
				a.Step(frame)
			}
			a.Draw()
		}
	}
}

// HandleEvent applies one terminal event. It returns false to quit.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return false
			case 'r', 'R':
				a.regenerate()
			case 'u', 'U':
				a.gen.Unpin()
				a.regenerate()
			case ' ':
				a.paused = !a.paused
			}
		}
	case *tcell.EventResize:
		a.cols, a.rows = a.screen.Size()
		a.screen.Sync()
	}
	return true
}

// Step advances ramps and the timeline by dt.
func (a *App) Step(dt time.Duration) {
	a.scene.Step(dt)
	a.tl.Advance(dt)
}

func (a *App) regenerate() {
	if a.cfg.Theme.Glitch {
		a.scene.Glitch()
		return
	}
	a.scene.Regenerate()
}

func (a *App) scheduleRegenerate() {
	every := a.cfg.RegenerateEvery()
	if every <= 0 {
		return
	}
	a.tl.After(every, func() {
		a.regenerate()
		a.scheduleRegenerate()
	})
}
