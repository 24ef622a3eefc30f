package ecs

import (
	"fmt"
	"iter"
	"reflect"
)

const (
	sparseBlockSize = 64
	sparseEmpty     = -1
)

// PackedArrayStore keeps components of type T densely packed in a slice.
// A sparse index, allocated lazily in blocks of 64 slots, maps entity IDs
// to dense positions. Suited to components most entities carry.
type PackedArrayStore[T any] struct {
	sparse [][]int32
	ids    []uint32
	values []T
}

// NewPackedArrayStore creates an empty packed store.
func NewPackedArrayStore[T any]() *PackedArrayStore[T] {
	return &PackedArrayStore[T]{}
}

func (s *PackedArrayStore[T]) ComponentType() reflect.Type {
	return reflect.TypeFor[T]()
}

func (s *PackedArrayStore[T]) index(id uint32) int {
	blockIdx := int(id / sparseBlockSize)
	if blockIdx >= len(s.sparse) || s.sparse[blockIdx] == nil {
		return sparseEmpty
	}
	return int(s.sparse[blockIdx][id%sparseBlockSize])
}

func (s *PackedArrayStore[T]) setIndex(id uint32, dense int) {
	blockIdx := int(id / sparseBlockSize)
	for blockIdx >= len(s.sparse) {
		s.sparse = append(s.sparse, nil)
	}
	if s.sparse[blockIdx] == nil {
		block := make([]int32, sparseBlockSize)
		for i := range block {
			block[i] = sparseEmpty
		}
		s.sparse[blockIdx] = block
	}
	s.sparse[blockIdx][id%sparseBlockSize] = int32(dense)
}

// Get returns the component stored for id.
func (s *PackedArrayStore[T]) Get(id uint32) (T, bool) {
	idx := s.index(id)
	if idx == sparseEmpty {
		var zero T
		return zero, false
	}
	return s.values[idx], true
}

// Ptr returns a pointer into the dense array. It stays valid until the
// next Set of a new ID or Remove on this store.
func (s *PackedArrayStore[T]) Ptr(id uint32) *T {
	idx := s.index(id)
	if idx == sparseEmpty {
		return nil
	}
	return &s.values[idx]
}

// Set inserts or overwrites the component for id.
func (s *PackedArrayStore[T]) Set(id uint32, value T) {
	if idx := s.index(id); idx != sparseEmpty {
		s.values[idx] = value
		return
	}
	s.setIndex(id, len(s.values))
	s.ids = append(s.ids, id)
	s.values = append(s.values, value)
}

// Remove deletes the component for id, moving the last element into its slot.
func (s *PackedArrayStore[T]) Remove(id uint32) bool {
	idx := s.index(id)
	if idx == sparseEmpty {
		return false
	}

	last := len(s.values) - 1
	if idx != last {
		movedId := s.ids[last]
		s.values[idx] = s.values[last]
		s.ids[idx] = movedId
		s.setIndex(movedId, idx)
	}

	var zero T
	s.values[last] = zero
	s.values = s.values[:last]
	s.ids = s.ids[:last]
	s.setIndex(id, sparseEmpty)
	return true
}

func (s *PackedArrayStore[T]) Has(id uint32) bool {
	return s.index(id) != sparseEmpty
}

func (s *PackedArrayStore[T]) Len() int {
	return len(s.values)
}

// IDs walks the dense array backwards, so removing the yielded ID is safe.
func (s *PackedArrayStore[T]) IDs() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		for i := len(s.ids) - 1; i >= 0; i-- {
			if i >= len(s.ids) {
				continue
			}
			if !yield(s.ids[i]) {
				return
			}
		}
	}
}

func (s *PackedArrayStore[T]) GetAny(id uint32) (any, bool) {
	v, ok := s.Get(id)
	if !ok {
		return nil, false
	}
	return v, true
}

func (s *PackedArrayStore[T]) SetAny(id uint32, value any) error {
	v, ok := convertAny[T](value)
	if !ok {
		return fmt.Errorf("%w: got %T, want %s", ErrComponentType, value, s.ComponentType())
	}
	s.Set(id, v)
	return nil
}

// Clear removes every component while keeping allocated capacity.
func (s *PackedArrayStore[T]) Clear() {
	for _, id := range s.ids {
		s.setIndex(id, sparseEmpty)
	}
	clear(s.values)
	s.values = s.values[:0]
	s.ids = s.ids[:0]
}
