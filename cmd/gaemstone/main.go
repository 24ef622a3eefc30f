// Command gaemstone opens a window running a small orbiting-entities demo.
// Pass -debug to attach the Dear ImGui inspection windows.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/naxaras/gaemstone/client"
	"github.com/naxaras/gaemstone/ecs"
	"github.com/naxaras/gaemstone/ecs/debugui"
	debugui_ebiten "github.com/naxaras/gaemstone/ecs/debugui/ebiten"
)

// Orbit moves an entity on a circle around the origin.
type Orbit struct {
	Radius float64
	Speed  float64
	Angle  float64
}

// OrbitProcessor advances every Orbit and rewrites the entity's Transform.
type OrbitProcessor struct{}

func (OrbitProcessor) OnLoad(u *ecs.Universe) error {
	return ecs.RegisterPacked[Orbit](u.Components)
}

func (OrbitProcessor) OnUpdate(frame *ecs.UpdateFrame) {
	for e, row := range ecs.Each2[Orbit, client.Transform](frame.Universe) {
		orbit := row.A
		orbit.Angle = math.Mod(orbit.Angle+orbit.Speed*frame.Delta, 2*math.Pi)

		var t client.Transform
		t.Translate(orbit.Radius*math.Cos(orbit.Angle), orbit.Radius*math.Sin(orbit.Angle))

		ecs.SetLater(frame.Commands, e, orbit)
		ecs.SetLater(frame.Commands, e, t)
	}
}

func main() {
	cfg := client.DefaultConfig()
	cfg.RegisterFlags(flag.CommandLine)
	count := flag.Int("orbiters", 64, "Number of orbiting entities to spawn.")
	assets := flag.String("assets", ".", "Directory resources are read from.")
	flag.Parse()

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	opts := []client.GameOption{
		client.WithGameLogger(logger),
		client.WithProcessors(OrbitProcessor{}),
	}
	if cfg.Debug {
		opts = append(opts, debugui_ebiten.WithDebugUI(cfg))
	}

	game, err := client.NewGame(cfg, client.FSResources{FS: os.DirFS(*assets)}, opts...)
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}

	game.OnLoad = func(g *client.Game) error {
		if err := spawnOrbiters(g, *count); err != nil {
			return err
		}
		// Center the world origin on screen.
		var camera client.Transform
		camera.Translate(-float64(g.Config.Width)/2, -float64(g.Config.Height)/2)
		if err := ecs.Set(g.Universe, g.MainCamera, camera); err != nil {
			return err
		}
		if g.Config.Debug {
			_, err := g.Spawn(debugui.ImguiItem{Render: controlsWindow(g)})
			return err
		}
		return nil
	}
	game.OnDraw = drawOrbiters
	game.OnClosing = func(g *client.Game) {
		logger.Info("closing", "entities", g.Entities.Len())
	}

	if err := game.Run(); err != nil {
		log.Fatal(err)
	}
}

func spawnOrbiters(g *client.Game, n int) error {
	for i := range n {
		orbit := Orbit{
			Radius: 40 + float64(i%8)*30,
			Speed:  0.5 + float64(i%5)*0.25,
			Angle:  float64(i) * 2 * math.Pi / float64(n),
		}
		if _, err := g.Spawn(orbit, client.Transform{}); err != nil {
			return fmt.Errorf("spawn orbiter %d: %w", i, err)
		}
	}
	return nil
}

var orbiterColor = color.RGBA{R: 0x33, G: 0x99, B: 0xcc, A: 0xff}

func drawOrbiters(g *client.Game, screen *ebiten.Image) {
	view := g.ViewMatrix()
	for _, row := range ecs.Each2[Orbit, client.Transform](g.Universe) {
		x, y := view.Apply(row.B.Position())
		vector.DrawFilledRect(screen, float32(x)-4, float32(y)-4, 8, 8, orbiterColor, false)
	}
}

func controlsWindow(g *client.Game) func() {
	return func() {
		imgui.Begin("Demo")
		imgui.Text(fmt.Sprintf("Entities: %d", g.Entities.Len()))
		if imgui.Button("Add orbiters") {
			if err := spawnOrbiters(g, 8); err != nil {
				slog.Warn("spawn failed", "err", err)
			}
		}
		imgui.End()
	}
}
