package ecs

import "errors"

// Commands buffers structural changes recorded while processors run.
// They are applied together at the end of the frame so that processors
// never mutate stores they may be iterating.
type Commands struct {
	spawns   [][]any
	destroys []Entity
	sets     []entityOp
	removes  []entityOp
	defers   []func()
}

type entityOp struct {
	entity Entity
	apply  func(u *Universe) error
}

// NewCommands creates an empty command buffer.
func NewCommands() *Commands {
	return &Commands{}
}

// Spawn queues creation of an entity with the given components.
func (c *Commands) Spawn(components ...any) {
	c.spawns = append(c.spawns, components)
}

// Destroy queues destruction of an entity.
func (c *Commands) Destroy(e Entity) {
	c.destroys = append(c.destroys, e)
}

// Defer queues a function to run after all other commands.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// SetLater queues a Set of the T component of e.
func SetLater[T any](c *Commands, e Entity, value T) {
	c.sets = append(c.sets, entityOp{
		entity: e,
		apply: func(u *Universe) error {
			return Set(u, e, value)
		},
	})
}

// RemoveLater queues removal of the T component of e.
func RemoveLater[T any](c *Commands, e Entity) {
	c.removes = append(c.removes, entityOp{
		entity: e,
		apply: func(u *Universe) error {
			return Remove[T](u, e)
		},
	})
}

// Len returns the number of queued commands.
func (c *Commands) Len() int {
	return len(c.spawns) + len(c.destroys) + len(c.sets) + len(c.removes) + len(c.defers)
}

// Flush applies queued commands to the universe in the order destroys,
// removes, sets, spawns, defers. Operations on an entity destroyed by the
// same flush are skipped.
func (c *Commands) Flush(u *Universe) error {
	// Commands queued while flushing, e.g. from a deferred function, are
	// kept for the next flush.
	spawns, destroys, sets, removes, defers := c.spawns, c.destroys, c.sets, c.removes, c.defers
	c.spawns, c.destroys, c.sets, c.removes, c.defers = nil, nil, nil, nil, nil

	var errs []error
	destroyed := make(map[Entity]bool)

	for _, e := range destroys {
		if destroyed[e] {
			continue
		}
		if err := u.Destroy(e); err != nil {
			errs = append(errs, err)
			continue
		}
		destroyed[e] = true
	}

	for _, op := range removes {
		if destroyed[op.entity] {
			continue
		}
		if err := op.apply(u); err != nil {
			errs = append(errs, err)
		}
	}

	for _, op := range sets {
		if destroyed[op.entity] {
			continue
		}
		if err := op.apply(u); err != nil {
			errs = append(errs, err)
		}
	}

	for _, components := range spawns {
		if _, err := u.Spawn(components...); err != nil {
			errs = append(errs, err)
		}
	}

	for _, fn := range defers {
		fn()
	}

	return errors.Join(errs...)
}
