package ecs

import (
	"iter"
	"reflect"
)

// ComponentStore is a type-erased per-component-type store keyed by entity ID.
type ComponentStore interface {
	ComponentType() reflect.Type
	Has(id uint32) bool
	Remove(id uint32) bool
	Len() int
	IDs() iter.Seq[uint32]
	GetAny(id uint32) (any, bool)
	SetAny(id uint32, value any) error
	Clear()
}

// Store is the typed view of a ComponentStore.
type Store[T any] interface {
	ComponentStore
	Get(id uint32) (T, bool)
	Set(id uint32, value T)
}

// convertAny accepts either a T or a *T.
func convertAny[T any](value any) (T, bool) {
	switch v := value.(type) {
	case T:
		return v, true
	case *T:
		if v != nil {
			return *v, true
		}
	}
	var zero T
	return zero, false
}
