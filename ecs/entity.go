package ecs

import (
	"fmt"
	"iter"
)

// Entity is an identity token. ID indexes into component stores and
// Generation distinguishes successive occupants of a recycled ID.
// The zero Entity is never alive.
type Entity struct {
	ID         uint32
	Generation uint32
}

func (e Entity) String() string {
	return fmt.Sprintf("Entity(%d:%d)", e.ID, e.Generation)
}

// EntityManager allocates entity identities and tracks their liveness.
type EntityManager struct {
	generations []uint32
	alive       []bool
	free        []uint32
	count       int
	onDestroyed []func(Entity)
}

// NewEntityManager creates an empty entity manager.
func NewEntityManager() *EntityManager {
	return &EntityManager{}
}

// New allocates a new entity, reusing the most recently freed ID if any.
func (m *EntityManager) New() Entity {
	var id uint32
	if len(m.free) > 0 {
		id = m.free[len(m.free)-1]
		m.free = m.free[:len(m.free)-1]
	} else {
		id = uint32(len(m.generations))
		m.generations = append(m.generations, 1)
		m.alive = append(m.alive, false)
	}

	m.alive[id] = true
	m.count++
	return Entity{ID: id, Generation: m.generations[id]}
}

// Destroy releases the entity's ID. Listeners registered with OnDestroyed
// run before Destroy returns, while the handle is already dead.
func (m *EntityManager) Destroy(e Entity) error {
	if !m.IsAlive(e) {
		return fmt.Errorf("destroy %s: %w", e, ErrNotAlive)
	}

	m.alive[e.ID] = false
	m.generations[e.ID]++
	// Generation 0 is reserved for the zero Entity.
	if m.generations[e.ID] == 0 {
		m.generations[e.ID] = 1
	}
	m.free = append(m.free, e.ID)
	m.count--

	for _, fn := range m.onDestroyed {
		fn(e)
	}
	return nil
}

// IsAlive reports whether e refers to the current occupant of its ID.
func (m *EntityManager) IsAlive(e Entity) bool {
	if int(e.ID) >= len(m.generations) {
		return false
	}
	return m.alive[e.ID] && m.generations[e.ID] == e.Generation
}

// Lookup returns the live entity currently holding id.
func (m *EntityManager) Lookup(id uint32) (Entity, bool) {
	if int(id) >= len(m.generations) || !m.alive[id] {
		return Entity{}, false
	}
	return Entity{ID: id, Generation: m.generations[id]}, true
}

// Len returns the number of live entities.
func (m *EntityManager) Len() int {
	return m.count
}

// All iterates over live entities in ascending ID order.
func (m *EntityManager) All() iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		for id, alive := range m.alive {
			if !alive {
				continue
			}
			if !yield(Entity{ID: uint32(id), Generation: m.generations[id]}) {
				return
			}
		}
	}
}

// OnDestroyed registers fn to be called for every destroyed entity.
func (m *EntityManager) OnDestroyed(fn func(Entity)) {
	m.onDestroyed = append(m.onDestroyed, fn)
}
