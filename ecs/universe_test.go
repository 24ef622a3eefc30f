package ecs_test

import (
	"testing"

	"github.com/naxaras/gaemstone/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniverseSetGetRoundTrip(t *testing.T) {
	u := newTestUniverse()
	e := u.Entities.New()

	require.NoError(t, ecs.Set(u, e, Position{X: 3, Y: 4}))
	require.NoError(t, ecs.Set(u, e, Name{Value: "camera"}))

	pos, err := ecs.Get[Position](u, e)
	require.NoError(t, err)
	assert.Equal(t, Position{X: 3, Y: 4}, pos)

	name, err := ecs.Get[Name](u, e)
	require.NoError(t, err)
	assert.Equal(t, "camera", name.Value)
}

func TestUniverseDeadEntityFails(t *testing.T) {
	u := newTestUniverse()
	e := u.Entities.New()
	require.NoError(t, ecs.Set(u, e, Position{X: 1}))
	require.NoError(t, u.Destroy(e))

	tests := []struct {
		name string
		call func() error
	}{
		{"get packed", func() error { _, err := ecs.Get[Position](u, e); return err }},
		{"get dictionary", func() error { _, err := ecs.Get[Name](u, e); return err }},
		{"get unregistered", func() error { _, err := ecs.Get[Unregistered](u, e); return err }},
		{"set packed", func() error { return ecs.Set(u, e, Position{}) }},
		{"set dictionary", func() error { return ecs.Set(u, e, Name{}) }},
		{"set unregistered", func() error { return ecs.Set(u, e, Unregistered{}) }},
		{"remove", func() error { return ecs.Remove[Position](u, e) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.call(), ecs.ErrNotAlive)
		})
	}

	assert.False(t, ecs.Has[Position](u, e))
}

func TestUniverseNeverCreatedEntityFails(t *testing.T) {
	u := newTestUniverse()

	_, err := ecs.Get[Position](u, ecs.Entity{ID: 12, Generation: 1})
	assert.ErrorIs(t, err, ecs.ErrNotAlive)

	err = ecs.Set(u, ecs.Entity{}, Position{})
	assert.ErrorIs(t, err, ecs.ErrNotAlive)
}

func TestUniverseMissingStoreFails(t *testing.T) {
	u := newTestUniverse()
	e := u.Entities.New()

	_, err := ecs.Get[Unregistered](u, e)
	assert.ErrorIs(t, err, ecs.ErrNoStore)

	err = ecs.Set(u, e, Unregistered{})
	assert.ErrorIs(t, err, ecs.ErrNoStore)
	assert.NotErrorIs(t, err, ecs.ErrNotAlive)
}

func TestUniverseGetMissingComponent(t *testing.T) {
	u := newTestUniverse()
	e := u.Entities.New()

	_, err := ecs.Get[Velocity](u, e)
	assert.ErrorIs(t, err, ecs.ErrNoComponent)
	assert.False(t, ecs.Has[Velocity](u, e))
}

func TestUniverseRemove(t *testing.T) {
	u := newTestUniverse()
	e := u.Entities.New()
	require.NoError(t, ecs.Set(u, e, Velocity{DX: 1}))

	require.NoError(t, ecs.Remove[Velocity](u, e))
	assert.False(t, ecs.Has[Velocity](u, e))

	// Removing again is fine.
	require.NoError(t, ecs.Remove[Velocity](u, e))
}

func TestUniverseDestroyClearsComponents(t *testing.T) {
	u := newTestUniverse()
	e, err := u.Spawn(Position{X: 1}, &Velocity{DX: 2}, Name{Value: "doomed"})
	require.NoError(t, err)

	require.NoError(t, u.Destroy(e))

	// The next entity reuses the ID but must not inherit components.
	reused := u.Entities.New()
	require.Equal(t, e.ID, reused.ID)
	assert.False(t, ecs.Has[Position](u, reused))
	assert.False(t, ecs.Has[Velocity](u, reused))
	assert.False(t, ecs.Has[Name](u, reused))
}

func TestUniverseSpawn(t *testing.T) {
	u := newTestUniverse()

	e, err := u.Spawn(Position{X: 1, Y: 2}, &Health{Current: 5, Max: 10}, Score(3))
	require.NoError(t, err)

	hp, err := ecs.Get[Health](u, e)
	require.NoError(t, err)
	assert.Equal(t, Health{Current: 5, Max: 10}, hp)

	score, err := ecs.Get[Score](u, e)
	require.NoError(t, err)
	assert.Equal(t, Score(3), score)
}

type Sprite struct {
	Frame int
}

func TestUniverseSpawnPointerStore(t *testing.T) {
	u := newTestUniverse()
	require.NoError(t, ecs.RegisterPacked[*Sprite](u.Components))

	sprite := &Sprite{Frame: 1}
	e, err := u.Spawn(sprite, Position{})
	require.NoError(t, err)

	got, err := ecs.Get[*Sprite](u, e)
	require.NoError(t, err)
	assert.Same(t, sprite, got)
	assert.False(t, ecs.Has[Sprite](u, e))
}

func TestUniverseSpawnFailureRollsBack(t *testing.T) {
	u := newTestUniverse()

	_, err := u.Spawn(Position{}, Unregistered{})
	assert.ErrorIs(t, err, ecs.ErrNoStore)
	assert.Equal(t, 0, u.Entities.Len())

	_, err = u.Spawn(nil)
	assert.ErrorIs(t, err, ecs.ErrComponentType)
	assert.Equal(t, 0, u.Entities.Len())
}

func TestComponentManagerDuplicateStore(t *testing.T) {
	u := newTestUniverse()

	err := ecs.RegisterDictionary[Position](u.Components)
	assert.ErrorIs(t, err, ecs.ErrDuplicateStore)

	store, ok := ecs.GetStore[Position](u.Components)
	require.True(t, ok)
	_, isPacked := store.(*ecs.PackedArrayStore[Position])
	assert.True(t, isPacked, "first registration wins")
}

func TestComponentManagerComponentsOf(t *testing.T) {
	u := newTestUniverse()
	e, err := u.Spawn(Name{Value: "n"}, Position{})
	require.NoError(t, err)

	types := u.Components.ComponentsOf(e.ID)
	require.Len(t, types, 2)
	// Registration order: Position before Name.
	assert.Equal(t, "ecs_test.Position", types[0].String())
	assert.Equal(t, "ecs_test.Name", types[1].String())
}
