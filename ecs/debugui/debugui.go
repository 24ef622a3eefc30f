// Package debugui provides immediate-mode GUI integration for ECS applications using Dear ImGui.
// It manages ImGui rendering and input state through ECS components and processors.
package debugui

import (
	"errors"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/naxaras/gaemstone/ecs"
)

// ImguiItem is a component that holds a Dear ImGui render function.
// Attach this to entities that should render ImGui widgets each frame.
type ImguiItem struct {
	Render func()
}

// ImguiInputState tracks Dear ImGui's input capture state as a singleton component.
// Use this to determine if ImGui is consuming mouse or keyboard input.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiProcessor defers the render function of every ImguiItem and keeps
// the ImguiInputState singleton current.
type ImguiProcessor struct {
	inputState *ecs.Singleton[ImguiInputState]
}

// OnLoad registers the ImguiItem store if needed and creates the input state singleton.
func (p *ImguiProcessor) OnLoad(u *ecs.Universe) error {
	if err := ecs.RegisterPacked[ImguiItem](u.Components); err != nil && !errors.Is(err, ecs.ErrDuplicateStore) {
		return err
	}
	state, err := ecs.NewSingleton[ImguiInputState](u)
	if err != nil {
		return err
	}
	p.inputState = state
	return nil
}

// OnUpdate updates input state and queues all ImGui render functions for execution.
func (p *ImguiProcessor) OnUpdate(frame *ecs.UpdateFrame) {
	io := imgui.CurrentIO()
	_ = p.inputState.Set(ImguiInputState{
		WantCaptureMouse:    io.WantCaptureMouse(),
		WantCaptureKeyboard: io.WantCaptureKeyboard(),
	})

	for _, item := range ecs.Each[ImguiItem](frame.Universe) {
		if item.Render != nil {
			frame.Commands.Defer(item.Render)
		}
	}
}
