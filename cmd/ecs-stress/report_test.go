package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/naxaras/gaemstone/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsFinalize(t *testing.T) {
	s := Stats{Samples: []time.Duration{3 * time.Millisecond, time.Millisecond, 2 * time.Millisecond}}
	s.Finalize()
	assert.Equal(t, time.Millisecond, s.Min)
	assert.Equal(t, 3*time.Millisecond, s.Max)
	assert.Equal(t, 2*time.Millisecond, s.Avg)

	empty := Stats{}
	empty.Finalize()
	assert.Zero(t, empty.Avg)
}

func TestReportGenerate(t *testing.T) {
	r := &Report{
		Duration:   time.Second,
		Entities:   10,
		Components: componentCount,
		Processors: 2,
		Universe: ecs.UniverseStats{
			EntityCount:    10,
			ComponentCount: 12,
			StoreBreakdown: []ecs.StoreStats{{ComponentType: "main.Position", Kind: "PackedArrayStore", Len: 7}},
		},
		ProcessorStats: &ecs.ProcessorStats{
			Processors: []ecs.ProcessorTiming{{Name: "MovementProcessor", ExecutionCount: 42}},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, r.Generate(&buf))
	out := buf.String()
	assert.Contains(t, out, "**Initial Entities:** 10")
	assert.Contains(t, out, "main.Position (PackedArrayStore): 7")
	assert.Contains(t, out, "**MovementProcessor:** 42 runs")
	assert.NotContains(t, out, "GC Pause Durations")
}
