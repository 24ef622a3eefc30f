package ecs_test

import (
	"testing"

	"github.com/naxaras/gaemstone/ecs"
)

func BenchmarkSpawn(b *testing.B) {
	u := newTestUniverse()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = u.Spawn(Position{X: 1.0, Y: 2.0}, Velocity{DX: 0.5, DY: 0.5})
	}
}

func BenchmarkDestroy(b *testing.B) {
	u := newTestUniverse()

	entities := make([]ecs.Entity, b.N)
	for i := 0; i < b.N; i++ {
		entities[i], _ = u.Spawn(Position{X: 1.0, Y: 2.0}, Velocity{DX: 0.5, DY: 0.5})
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = u.Destroy(entities[i])
	}
}

func BenchmarkGetPacked(b *testing.B) {
	u := newTestUniverse()
	e, _ := u.Spawn(Position{X: 1.0, Y: 2.0})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ecs.Get[Position](u, e)
	}
}

func BenchmarkGetDictionary(b *testing.B) {
	u := newTestUniverse()
	e, _ := u.Spawn(Name{Value: "bench"})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ecs.Get[Name](u, e)
	}
}

func BenchmarkSet(b *testing.B) {
	u := newTestUniverse()
	e, _ := u.Spawn(Position{})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ecs.Set(u, e, Position{X: float32(i)})
	}
}

func BenchmarkEach2(b *testing.B) {
	u := newTestUniverse()
	for i := 0; i < 10000; i++ {
		if i%2 == 0 {
			_, _ = u.Spawn(Position{X: float32(i)}, Velocity{DX: 1})
		} else {
			_, _ = u.Spawn(Position{X: float32(i)})
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for range ecs.Each2[Position, Velocity](u) {
		}
	}
}
