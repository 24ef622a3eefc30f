package main

import (
	"math/rand"

	"github.com/naxaras/gaemstone/ecs"
)

type Position struct{ X, Y float64 }

type Velocity struct{ DX, DY float64 }

type Health struct{ Current, Max int }

// Lifetime counts down in seconds; the entity is destroyed at zero.
type Lifetime struct{ Remaining float64 }

type Tag struct{ Name string }

type Score int64

const componentCount = 6

var tagNames = []string{"ally", "enemy", "neutral", "boss", "critter"}

// registerComponents uses packed stores for the dense per-frame components
// and dictionary stores for the sparse ones.
func registerComponents(u *ecs.Universe) error {
	for _, register := range []func(*ecs.ComponentManager) error{
		ecs.RegisterPacked[Position],
		ecs.RegisterPacked[Velocity],
		ecs.RegisterPacked[Health],
		ecs.RegisterPacked[Lifetime],
		ecs.RegisterDictionary[Tag],
		ecs.RegisterDictionary[Score],
	} {
		if err := register(u.Components); err != nil {
			return err
		}
	}
	return nil
}

// randomComponents returns between 1 and n of the stress components.
func randomComponents(rng *rand.Rand, n int) []any {
	all := []any{
		Position{X: rng.Float64() * 1000, Y: rng.Float64() * 1000},
		Velocity{DX: rng.Float64()*2 - 1, DY: rng.Float64()*2 - 1},
		Health{Current: 100, Max: 100},
		Lifetime{Remaining: 1 + rng.Float64()*9},
		Tag{Name: tagNames[rng.Intn(len(tagNames))]},
		Score(rng.Int63n(1000)),
	}
	rng.Shuffle(len(all), func(i, j int) { all[i], all[j] = all[j], all[i] })
	return all[:1+rng.Intn(min(n, len(all)))]
}

func spawnRandomEntity(u *ecs.Universe, rng *rand.Rand, n int) (ecs.Entity, error) {
	return u.Spawn(randomComponents(rng, n)...)
}

// MovementProcessor integrates velocity into position.
type MovementProcessor struct{}

func (MovementProcessor) OnUpdate(frame *ecs.UpdateFrame) {
	store, _ := ecs.GetStore[Position](frame.Universe.Components)
	packed, ok := store.(*ecs.PackedArrayStore[Position])
	if !ok {
		return
	}
	for e, row := range ecs.Each2[Position, Velocity](frame.Universe) {
		p := packed.Ptr(e.ID)
		p.X += row.B.DX * frame.Delta
		p.Y += row.B.DY * frame.Delta
	}
}

// DecayProcessor drains health and lifetime, queueing destruction of
// entities that run out of either.
type DecayProcessor struct{}

func (DecayProcessor) OnUpdate(frame *ecs.UpdateFrame) {
	u := frame.Universe
	for e, h := range ecs.Each[Health](u) {
		h.Current--
		if h.Current <= 0 {
			frame.Commands.Destroy(e)
			continue
		}
		ecs.SetLater(frame.Commands, e, h)
	}
	for e, l := range ecs.Each[Lifetime](u) {
		l.Remaining -= frame.Delta
		if l.Remaining <= 0 {
			frame.Commands.Destroy(e)
			continue
		}
		ecs.SetLater(frame.Commands, e, l)
	}
}

// RespawnProcessor keeps the population near Target by spawning
// replacements through commands.
type RespawnProcessor struct {
	Target int
	Rng    *rand.Rand
}

func (p *RespawnProcessor) OnUpdate(frame *ecs.UpdateFrame) {
	missing := p.Target - frame.Universe.Entities.Len()
	for range max(missing, 0) {
		frame.Commands.Spawn(randomComponents(p.Rng, componentCount)...)
	}
}

// ScoreProcessor rewards tagged entities that are still alive.
type ScoreProcessor struct{}

func (ScoreProcessor) OnUpdate(frame *ecs.UpdateFrame) {
	for e, row := range ecs.Each2[Tag, Score](frame.Universe) {
		if row.A.Name == "boss" {
			ecs.SetLater(frame.Commands, e, row.B+10)
		} else {
			ecs.SetLater(frame.Commands, e, row.B+1)
		}
	}
}
