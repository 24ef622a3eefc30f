// Package client drives an ECS universe from an ebiten window loop.
package client

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/naxaras/gaemstone/ecs"
)

// Overlay draws on top of the game, bracketing each update with a frame.
// The Dear ImGui ebiten backend satisfies it.
type Overlay interface {
	BeginFrame()
	EndFrame()
	Draw(screen *ebiten.Image)
	Layout(outsideWidth, outsideHeight int)
}

// Game owns a Universe and runs it inside a window. Hooks run on the loop
// goroutine: load on the first tick, update every tick, closing when the
// window is asked to close.
type Game struct {
	*ecs.Universe

	Config     Config
	Resources  ResourceProvider
	MainCamera ecs.Entity

	// OnLoad runs after built-in processors started and the main camera exists.
	OnLoad func(g *Game) error
	// OnClosing runs before processors are stopped.
	OnClosing func(g *Game)
	// OnDraw renders the scene below the overlay.
	OnDraw func(g *Game, screen *ebiten.Image)

	processors []ecs.Processor
	overlay    Overlay
	logger     *slog.Logger
	loaded     bool
	closed     bool
}

// GameOption configures a Game.
type GameOption func(*Game)

// WithProcessors adds processors started, in order, when the game loads.
func WithProcessors(processors ...ecs.Processor) GameOption {
	return func(g *Game) {
		g.processors = append(g.processors, processors...)
	}
}

// WithOverlay sets an overlay drawn above the game.
func WithOverlay(overlay Overlay) GameOption {
	return func(g *Game) {
		g.overlay = overlay
	}
}

// WithGameLogger sets the logger shared by the game and its universe.
func WithGameLogger(logger *slog.Logger) GameOption {
	return func(g *Game) {
		g.logger = logger
	}
}

// NewGame creates a game with Transform and Camera stores registered.
func NewGame(cfg Config, resources ResourceProvider, opts ...GameOption) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	g := &Game{
		Config:    cfg,
		Resources: resources,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.Universe = ecs.NewUniverse(ecs.WithLogger(g.logger))

	if err := errors.Join(
		ecs.RegisterPacked[Transform](g.Components),
		ecs.RegisterDictionary[Camera](g.Components),
	); err != nil {
		return nil, err
	}
	return g, nil
}

// Run opens the window and blocks until the game ends.
func (g *Game) Run() error {
	ebiten.SetWindowTitle(g.Config.Title)
	ebiten.SetWindowSize(g.Config.Width, g.Config.Height)
	ebiten.SetTPS(g.Config.UpdatesPerSecond)
	ebiten.SetWindowClosingHandled(true)

	g.logger.Info("starting game", "title", g.Config.Title,
		"width", g.Config.Width, "height", g.Config.Height, "ups", g.Config.UpdatesPerSecond)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if !g.loaded {
		if err := g.load(); err != nil {
			return err
		}
	}

	if ebiten.IsWindowBeingClosed() {
		g.closing()
		return ebiten.Termination
	}

	if g.overlay != nil {
		g.overlay.BeginFrame()
	}
	g.update(1.0 / float64(ebiten.TPS()))
	if g.overlay != nil {
		g.overlay.EndFrame()
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.OnDraw != nil && g.loaded {
		g.OnDraw(g, screen)
	}
	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
}

// Layout implements ebiten.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.overlay != nil {
		g.overlay.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// ViewMatrix maps world coordinates to screen coordinates through the
// main camera: the inverse of its Transform, scaled by its Zoom.
func (g *Game) ViewMatrix() ebiten.GeoM {
	var view ebiten.GeoM
	if t, err := ecs.Get[Transform](g.Universe, g.MainCamera); err == nil && t.IsInvertible() {
		view = t.GeoM
		view.Invert()
	}
	if cam, err := ecs.Get[Camera](g.Universe, g.MainCamera); err == nil && cam.Zoom > 0 {
		view.Scale(cam.Zoom, cam.Zoom)
	}
	return view
}

// GetResourceAsString reads a resource through the game's provider.
func (g *Game) GetResourceAsString(name string) (string, error) {
	if g.Resources == nil {
		return "", fmt.Errorf("resource %q: no resource provider", name)
	}
	return GetResourceAsString(g.Resources, name)
}

// GetResourceStream opens a resource through the game's provider.
func (g *Game) GetResourceStream(name string) (io.ReadCloser, error) {
	if g.Resources == nil {
		return nil, fmt.Errorf("resource %q: no resource provider", name)
	}
	return g.Resources.GetResourceStream(name)
}

func (g *Game) load() error {
	g.loaded = true

	for _, p := range g.processors {
		if err := g.Processors.Start(p); err != nil {
			return fmt.Errorf("load: %w", err)
		}
	}

	camera, err := g.Spawn(Transform{}, DefaultCamera)
	if err != nil {
		return fmt.Errorf("load: spawn main camera: %w", err)
	}
	g.MainCamera = camera

	if g.OnLoad != nil {
		if err := g.OnLoad(g); err != nil {
			return fmt.Errorf("load: %w", err)
		}
	}

	g.logger.Info("game loaded", "processors", g.Processors.Len(), "entities", g.Entities.Len())
	return nil
}

func (g *Game) update(delta float64) {
	g.Processors.Update(delta)
}

func (g *Game) closing() {
	if g.closed {
		return
	}
	g.closed = true

	if g.OnClosing != nil {
		g.OnClosing(g)
	}
	g.Processors.StopAll()
	g.logger.Info("game closing")
}
