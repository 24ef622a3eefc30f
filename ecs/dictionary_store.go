package ecs

import (
	"fmt"
	"iter"
	"reflect"

	"github.com/kamstrup/intmap"
)

const dictionaryInitialCapacity = 16

// DictionaryStore keeps components of type T in a hash map keyed by entity
// ID. Suited to components only a handful of entities carry.
type DictionaryStore[T any] struct {
	values *intmap.Map[uint32, T]
}

// NewDictionaryStore creates an empty dictionary store.
func NewDictionaryStore[T any]() *DictionaryStore[T] {
	return &DictionaryStore[T]{
		values: intmap.New[uint32, T](dictionaryInitialCapacity),
	}
}

func (s *DictionaryStore[T]) ComponentType() reflect.Type {
	return reflect.TypeFor[T]()
}

func (s *DictionaryStore[T]) Get(id uint32) (T, bool) {
	return s.values.Get(id)
}

func (s *DictionaryStore[T]) Set(id uint32, value T) {
	s.values.Put(id, value)
}

func (s *DictionaryStore[T]) Remove(id uint32) bool {
	return s.values.Del(id)
}

func (s *DictionaryStore[T]) Has(id uint32) bool {
	return s.values.Has(id)
}

func (s *DictionaryStore[T]) Len() int {
	return s.values.Len()
}

// IDs snapshots the keys before yielding, so the store may be modified
// while iterating.
func (s *DictionaryStore[T]) IDs() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		ids := make([]uint32, 0, s.values.Len())
		s.values.ForEach(func(id uint32, _ T) bool {
			ids = append(ids, id)
			return true
		})
		for _, id := range ids {
			if !yield(id) {
				return
			}
		}
	}
}

func (s *DictionaryStore[T]) GetAny(id uint32) (any, bool) {
	v, ok := s.values.Get(id)
	if !ok {
		return nil, false
	}
	return v, true
}

func (s *DictionaryStore[T]) SetAny(id uint32, value any) error {
	v, ok := convertAny[T](value)
	if !ok {
		return fmt.Errorf("%w: got %T, want %s", ErrComponentType, value, s.ComponentType())
	}
	s.values.Put(id, v)
	return nil
}

func (s *DictionaryStore[T]) Clear() {
	s.values.Clear()
}
