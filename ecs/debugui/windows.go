package debugui

import (
	"time"

	"github.com/naxaras/gaemstone/ecs"
)

// WindowsProcessor draws the built-in inspection windows each frame.
type WindowsProcessor struct {
	Browser     *EntityBrowser
	Inspector   *ComponentInspector
	Stores      *StoreViewer
	Queries     *QueryDebugger
	Performance *PerformanceStats

	lastFrame time.Time
}

// NewWindowsProcessor creates the inspection windows with default settings.
func NewWindowsProcessor() *WindowsProcessor {
	return &WindowsProcessor{
		Browser:     NewEntityBrowser(100),
		Inspector:   NewComponentInspector(),
		Stores:      NewStoreViewer(),
		Queries:     NewQueryDebugger(),
		Performance: NewPerformanceStats(120),
	}
}

func (p *WindowsProcessor) OnUpdate(frame *ecs.UpdateFrame) {
	u := frame.Universe
	p.Browser.Render(u)
	p.Inspector.Render(u, p.Browser.SelectedEntity())
	if storeType := p.Stores.Render(u); storeType != "" {
		p.Browser.FilterComponent(storeType)
	}
	p.Queries.Render(u)
	p.Performance.Render(u, float32(p.frameTime(time.Now(), frame.Delta)))
}

// frameTime returns the wall time since the previous frame. Fixed-step
// loops pass a constant delta, so it only seeds the first frame.
func (p *WindowsProcessor) frameTime(now time.Time, delta float64) float64 {
	last := p.lastFrame
	p.lastFrame = now
	if last.IsZero() {
		return delta
	}
	return now.Sub(last).Seconds()
}

// Install starts the ImGui processors on u. The caller remains responsible
// for bracketing updates with the backend's BeginFrame and EndFrame.
func Install(u *ecs.Universe) error {
	if err := u.Processors.Start(&ImguiProcessor{}); err != nil {
		return err
	}
	return u.Processors.Start(NewWindowsProcessor())
}
