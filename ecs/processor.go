package ecs

import (
	"context"
	"fmt"
	"iter"
	"reflect"
	"time"
)

// Processor is per-frame behavior operating on the universe.
type Processor interface {
	OnUpdate(frame *UpdateFrame)
}

// Loader is implemented by processors that need setup when started.
// A processor whose OnLoad fails is not started.
type Loader interface {
	OnLoad(u *Universe) error
}

// Unloader is implemented by processors that release state when stopped.
type Unloader interface {
	OnUnload()
}

// ProcessorStats provides statistics about processor execution.
type ProcessorStats struct {
	ProcessorCount  int
	TotalExecutions int64
	Processors      []ProcessorTiming
}

// ProcessorTiming provides execution statistics for a single processor.
type ProcessorTiming struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type processorEntry struct {
	processor      Processor
	typ            reflect.Type
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// ProcessorManager starts, stops and updates processors. Processors are
// updated in the order they were started.
type ProcessorManager struct {
	universe *Universe
	entries  []*processorEntry
	commands *Commands
}

// NewProcessorManager creates a processor manager for the given universe.
func NewProcessorManager(universe *Universe) *ProcessorManager {
	return &ProcessorManager{
		universe: universe,
		commands: NewCommands(),
	}
}

func processorType(p Processor) reflect.Type {
	t := reflect.TypeOf(p)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}

// Start loads and registers p. Only one processor per concrete type may run.
func (pm *ProcessorManager) Start(p Processor) error {
	t := processorType(p)
	if pm.indexOf(t) >= 0 {
		return fmt.Errorf("start %s: %w", t.Name(), ErrAlreadyStarted)
	}

	if loader, ok := p.(Loader); ok {
		if err := loader.OnLoad(pm.universe); err != nil {
			return fmt.Errorf("load %s: %w", t.Name(), err)
		}
	}

	pm.entries = append(pm.entries, &processorEntry{
		processor:   p,
		typ:         t,
		name:        t.Name(),
		minDuration: time.Duration(1<<63 - 1),
	})
	pm.universe.logger.Debug("processor started", "processor", t.Name())
	return nil
}

// StartNew creates a zero-valued T and starts it.
func StartNew[T any, PT interface {
	*T
	Processor
}](pm *ProcessorManager) (PT, error) {
	p := PT(new(T))
	if err := pm.Start(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Lookup returns the running processor of type T.
func Lookup[T Processor](pm *ProcessorManager) (T, bool) {
	for _, entry := range pm.entries {
		if p, ok := entry.processor.(T); ok {
			return p, true
		}
	}
	var zero T
	return zero, false
}

// Stop unloads and removes p.
func (pm *ProcessorManager) Stop(p Processor) error {
	return pm.StopType(processorType(p))
}

// StopType unloads and removes the processor of the given concrete type.
func (pm *ProcessorManager) StopType(t reflect.Type) error {
	idx := pm.indexOf(t)
	if idx < 0 {
		return fmt.Errorf("stop %s: %w", t.Name(), ErrNotStarted)
	}

	entry := pm.entries[idx]
	pm.entries = append(pm.entries[:idx], pm.entries[idx+1:]...)
	if unloader, ok := entry.processor.(Unloader); ok {
		unloader.OnUnload()
	}
	pm.universe.logger.Debug("processor stopped", "processor", entry.name)
	return nil
}

// StopAll stops every processor in reverse start order.
func (pm *ProcessorManager) StopAll() {
	for i := len(pm.entries) - 1; i >= 0; i-- {
		_ = pm.StopType(pm.entries[i].typ)
	}
}

func (pm *ProcessorManager) indexOf(t reflect.Type) int {
	for i, entry := range pm.entries {
		if entry.typ == t {
			return i
		}
	}
	return -1
}

func (pm *ProcessorManager) running(entry *processorEntry) bool {
	for _, e := range pm.entries {
		if e == entry {
			return true
		}
	}
	return false
}

// All iterates over running processors in start order.
func (pm *ProcessorManager) All() iter.Seq[Processor] {
	return func(yield func(Processor) bool) {
		for _, entry := range pm.entries {
			if !yield(entry.processor) {
				return
			}
		}
	}
}

// Len returns the number of running processors.
func (pm *ProcessorManager) Len() int {
	return len(pm.entries)
}

// Update runs every processor once with the given delta time in seconds,
// then flushes commands they queued.
func (pm *ProcessorManager) Update(dt float64) {
	frame := newUpdateFrame(dt, pm.universe, pm.commands)

	// A processor may stop others from OnUpdate; stopped ones are skipped.
	entries := append([]*processorEntry(nil), pm.entries...)
	for _, entry := range entries {
		if !pm.running(entry) {
			continue
		}
		start := time.Now()
		entry.processor.OnUpdate(frame)
		duration := time.Since(start)

		entry.executionCount++
		entry.lastDuration = duration
		entry.totalDuration += duration

		if duration < entry.minDuration {
			entry.minDuration = duration
		}
		if duration > entry.maxDuration {
			entry.maxDuration = duration
		}
	}

	if err := pm.commands.Flush(pm.universe); err != nil {
		pm.universe.logger.Warn("command flush failed", "err", err)
	}
}

// Run updates all processors at the given interval until ctx is cancelled.
func (pm *ProcessorManager) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			pm.Update(dt)
		}
	}
}

// Stats returns statistics about processor execution.
func (pm *ProcessorManager) Stats() *ProcessorStats {
	stats := &ProcessorStats{
		ProcessorCount: len(pm.entries),
		Processors:     make([]ProcessorTiming, len(pm.entries)),
	}

	var totalExecs int64
	for i, entry := range pm.entries {
		var avgDuration, minDuration time.Duration
		if entry.executionCount > 0 {
			avgDuration = entry.totalDuration / time.Duration(entry.executionCount)
			minDuration = entry.minDuration
		}

		stats.Processors[i] = ProcessorTiming{
			Name:           entry.name,
			ExecutionCount: entry.executionCount,
			MinDuration:    minDuration,
			MaxDuration:    entry.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   entry.lastDuration,
			TotalDuration:  entry.totalDuration,
		}
		totalExecs += entry.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
