// Package heroview renders the hero scene with ebiten, natively or as a
// wasm module embedded in the home page.
package heroview

import (
	"errors"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/riradoro03/sports-insights-hub/internal/hero"
)

// Config configures a Game.
type Config struct {
	Title    string
	Width    int
	Height   int
	Seed     uint64
	NoBloom  bool
	Sections []hero.Section
	Logger   *slog.Logger
}

// scrollSource reports the page scroll position and the scrollable
// height of the hero section.
type scrollSource interface {
	Read(viewportHeight int) (offset, scrollable float64)
	Close()
}

// overlay presents the hero text and HUD.
type overlay interface {
	Apply(s hero.State, o hero.Overlay)
	Draw(screen *ebiten.Image)
	Close()
}

// Game is the ebiten.Game driving one Hero.
type Game struct {
	logger  *slog.Logger
	surface *Surface
	queue   *hero.FrameQueue
	hero    *hero.Hero
	scroll  scrollSource
	overlay overlay

	width, height int
	closed        bool
}

func NewGame(cfg Config) *Game {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if len(cfg.Sections) == 0 {
		cfg.Sections = hero.DefaultSections()
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	surface := NewSurface(cfg.Logger)
	queue := &hero.FrameQueue{}
	h := hero.New(hero.Config{
		Sections: cfg.Sections,
		Seed:     cfg.Seed,
		Width:    cfg.Width,
		Height:   cfg.Height,
		NoBloom:  cfg.NoBloom,
		Logger:   cfg.Logger,
	}, surface, queue)

	return &Game{
		logger:  cfg.Logger,
		surface: surface,
		queue:   queue,
		hero:    h,
		scroll:  newScrollSource(),
		overlay: newOverlay(cfg.Sections),
		width:   cfg.Width,
		height:  cfg.Height,
	}
}

func (g *Game) Update() error {
	if g.closed {
		return ebiten.Termination
	}
	if ebiten.IsWindowBeingClosed() {
		g.Close()
		return ebiten.Termination
	}
	offset, scrollable := g.scroll.Read(g.height)
	state := g.hero.OnScroll(offset, scrollable)

	now := time.Now()
	g.queue.Fire(now)
	g.hero.Advance(now)
	g.overlay.Apply(state, g.hero.Overlay())
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.closed {
		return
	}
	g.surface.Render(screen)
	g.overlay.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.hero.OnResize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// Close tears the hero down. It is safe to call more than once.
func (g *Game) Close() {
	if g.closed {
		return
	}
	g.closed = true
	g.hero.Close()
	g.surface.Dispose()
	g.scroll.Close()
	g.overlay.Close()
	g.logger.Info("Hero stopped")
}

// Run opens the window (or canvas) and blocks until it is closed.
func Run(cfg Config) error {
	g := NewGame(cfg)
	defer g.Close()

	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	err := ebiten.RunGameWithOptions(g, &ebiten.RunGameOptions{ScreenTransparent: true})
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
