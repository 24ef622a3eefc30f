package ecs

import (
	"errors"
	"fmt"
	"reflect"
)

// Singleton gives direct access to a component that exactly one entity
// carries, such as the main camera or global input state.
type Singleton[T any] struct {
	universe *Universe
	entity   Entity
}

// NewSingleton returns an accessor for T. If no live entity carries T yet,
// one is spawned holding initializer (or the zero value). A DictionaryStore
// is registered for T when no store exists.
func NewSingleton[T any](u *Universe, initializer ...T) (*Singleton[T], error) {
	if _, ok := GetStore[T](u.Components); !ok {
		if err := RegisterDictionary[T](u.Components); err != nil && !errors.Is(err, ErrDuplicateStore) {
			return nil, err
		}
	}

	for e := range Each[T](u) {
		return &Singleton[T]{universe: u, entity: e}, nil
	}

	var value T
	if len(initializer) > 0 {
		value = initializer[0]
	}
	e := u.Entities.New()
	if err := Set(u, e, value); err != nil {
		_ = u.Entities.Destroy(e)
		return nil, fmt.Errorf("singleton %s: %w", reflect.TypeFor[T](), err)
	}
	return &Singleton[T]{universe: u, entity: e}, nil
}

// Entity returns the entity holding the singleton component.
func (s *Singleton[T]) Entity() Entity {
	return s.entity
}

// Get reads the current value.
func (s *Singleton[T]) Get() (T, error) {
	return Get[T](s.universe, s.entity)
}

// Set replaces the current value.
func (s *Singleton[T]) Set(value T) error {
	return Set(s.universe, s.entity, value)
}

// Exists reports whether the holding entity is still alive and carries T.
func (s *Singleton[T]) Exists() bool {
	return Has[T](s.universe, s.entity)
}
