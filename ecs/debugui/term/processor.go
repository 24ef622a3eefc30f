package term

import (
	"time"

	"github.com/naxaras/gaemstone/ecs"
)

// InspectorProcessor redraws an Inspector at most once per Interval.
type InspectorProcessor struct {
	Inspector *Inspector
	Interval  time.Duration

	lastDraw time.Time
}

func NewInspectorProcessor(in *Inspector, interval time.Duration) *InspectorProcessor {
	return &InspectorProcessor{Inspector: in, Interval: interval}
}

func (p *InspectorProcessor) OnUpdate(frame *ecs.UpdateFrame) {
	now := time.Now()
	if now.Sub(p.lastDraw) < p.Interval {
		return
	}
	p.lastDraw = now
	p.Inspector.Draw(frame.Universe.CollectStats(), frame.Universe.Processors.Stats())
}
