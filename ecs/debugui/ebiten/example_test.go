package ebiten_test

import (
	"log"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/naxaras/gaemstone/client"
	"github.com/naxaras/gaemstone/ecs/debugui"
	debugui_ebiten "github.com/naxaras/gaemstone/ecs/debugui/ebiten"
)

func Example() {
	cfg := client.DefaultConfig()
	cfg.Title = "ECS ImGui Example"

	// The debug UI option creates the ImGui window and starts the
	// ImguiProcessor and inspection windows when the game loads.
	game, err := client.NewGame(cfg, nil, debugui_ebiten.WithDebugUI(cfg))
	if err != nil {
		log.Fatal(err)
	}

	game.OnLoad = func(g *client.Game) error {
		// Spawn entities with ImGui render functions
		_, err := g.Spawn(debugui.ImguiItem{
			Render: func() {
				imgui.Begin("Debug Window")
				imgui.Text("Hello from ECS!")
				imgui.End()
			},
		})
		return err
	}

	if err := game.Run(); err != nil {
		log.Fatal(err)
	}
}

