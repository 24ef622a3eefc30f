package main

import (
	"math/rand"
	"testing"

	"github.com/naxaras/gaemstone/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStressUniverse(t *testing.T) *ecs.Universe {
	t.Helper()
	u := ecs.NewUniverse()
	require.NoError(t, registerComponents(u))
	return u
}

func TestRandomComponents(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for range 100 {
		components := randomComponents(rng, componentCount)
		assert.GreaterOrEqual(t, len(components), 1)
		assert.LessOrEqual(t, len(components), componentCount)
	}
	assert.Len(t, randomComponents(rng, 1), 1)
}

func TestMovementProcessor(t *testing.T) {
	u := newStressUniverse(t)
	require.NoError(t, u.Processors.Start(MovementProcessor{}))
	e, err := u.Spawn(Position{X: 1}, Velocity{DX: 2, DY: -1})
	require.NoError(t, err)
	still, err := u.Spawn(Position{X: 5})
	require.NoError(t, err)

	u.Processors.Update(0.5)

	p, err := ecs.Get[Position](u, e)
	require.NoError(t, err)
	assert.Equal(t, Position{X: 2, Y: -0.5}, p)

	p, err = ecs.Get[Position](u, still)
	require.NoError(t, err)
	assert.Equal(t, Position{X: 5}, p)
}

func TestDecayProcessorDestroys(t *testing.T) {
	u := newStressUniverse(t)
	require.NoError(t, u.Processors.Start(DecayProcessor{}))
	dying, err := u.Spawn(Health{Current: 1, Max: 1})
	require.NoError(t, err)
	aging, err := u.Spawn(Lifetime{Remaining: 0.75})
	require.NoError(t, err)
	healthy, err := u.Spawn(Health{Current: 5, Max: 5})
	require.NoError(t, err)

	u.Processors.Update(0.5)
	assert.False(t, u.Entities.IsAlive(dying))
	assert.True(t, u.Entities.IsAlive(aging))

	h, err := ecs.Get[Health](u, healthy)
	require.NoError(t, err)
	assert.Equal(t, 4, h.Current)

	u.Processors.Update(0.5)
	assert.False(t, u.Entities.IsAlive(aging))
}

func TestRespawnProcessorKeepsPopulation(t *testing.T) {
	u := newStressUniverse(t)
	require.NoError(t, u.Processors.Start(&RespawnProcessor{Target: 8, Rng: rand.New(rand.NewSource(3))}))

	u.Processors.Update(0.1)
	assert.Equal(t, 8, u.Entities.Len())

	u.Processors.Update(0.1)
	assert.Equal(t, 8, u.Entities.Len())
}

func TestScoreProcessor(t *testing.T) {
	u := newStressUniverse(t)
	require.NoError(t, u.Processors.Start(ScoreProcessor{}))
	boss, err := u.Spawn(Tag{Name: "boss"}, Score(0))
	require.NoError(t, err)
	critter, err := u.Spawn(Tag{Name: "critter"}, Score(0))
	require.NoError(t, err)

	u.Processors.Update(0.1)

	s, err := ecs.Get[Score](u, boss)
	require.NoError(t, err)
	assert.Equal(t, Score(10), s)
	s, err = ecs.Get[Score](u, critter)
	require.NoError(t, err)
	assert.Equal(t, Score(1), s)
}
