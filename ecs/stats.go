package ecs

import (
	"reflect"
	"strings"
)

// UniverseStats is a point-in-time summary of a universe.
type UniverseStats struct {
	EntityCount    int
	StoreCount     int
	ComponentCount int
	ProcessorCount int
	StoreBreakdown []StoreStats
}

// StoreStats summarizes a single component store.
type StoreStats struct {
	ComponentType string
	Kind          string
	Len           int
}

// CollectStats gathers entity, store and processor counts.
func (u *Universe) CollectStats() UniverseStats {
	stats := UniverseStats{
		EntityCount:    u.Entities.Len(),
		StoreCount:     u.Components.Len(),
		ProcessorCount: u.Processors.Len(),
	}

	for store := range u.Components.Stores() {
		stats.ComponentCount += store.Len()
		stats.StoreBreakdown = append(stats.StoreBreakdown, StoreStats{
			ComponentType: store.ComponentType().String(),
			Kind:          storeKind(store),
			Len:           store.Len(),
		})
	}
	return stats
}

// storeKind names the store implementation without its type argument,
// e.g. "PackedArrayStore".
func storeKind(store ComponentStore) string {
	t := reflect.TypeOf(store)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	name := t.Name()
	if i := strings.IndexByte(name, '['); i >= 0 {
		name = name[:i]
	}
	return name
}
