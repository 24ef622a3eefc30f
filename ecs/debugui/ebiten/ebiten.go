// Package ebiten provides Dear ImGui backend integration for the Ebiten game engine.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/naxaras/gaemstone/client"
	"github.com/naxaras/gaemstone/ecs/debugui"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend implementation
// as a client.Overlay, so a Game brackets every update with an ImGui frame
// and draws the result above the scene.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

var _ client.Overlay = (*ImguiBackend)(nil)

// NewImguiBackend creates the backend and its window. The imgui.ini file is
// disabled so window layouts are not written to the working directory.
func NewImguiBackend(title string, width, height int) *ImguiBackend {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")
	return &ImguiBackend{EbitenBackend: backend}
}

func (b *ImguiBackend) BeginFrame() {
	b.EbitenBackend.BeginFrame()
}

func (b *ImguiBackend) EndFrame() {
	b.EbitenBackend.EndFrame()
}

func (b *ImguiBackend) Draw(screen *ebiten.Image) {
	b.EbitenBackend.Draw(screen)
}

func (b *ImguiBackend) Layout(outsideWidth, outsideHeight int) {
	b.EbitenBackend.Layout(outsideWidth, outsideHeight)
}

// WithDebugUI installs an ImGui overlay sized from cfg together with the
// processors drawing ImguiItem entities and the inspection windows.
func WithDebugUI(cfg client.Config) client.GameOption {
	backend := NewImguiBackend(cfg.Title, cfg.Width, cfg.Height)
	return func(g *client.Game) {
		client.WithOverlay(backend)(g)
		client.WithProcessors(&debugui.ImguiProcessor{}, debugui.NewWindowsProcessor())(g)
	}
}
