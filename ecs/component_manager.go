package ecs

import (
	"fmt"
	"iter"
	"reflect"
)

// ComponentManager maps each component type to the single store backing it.
// Stores are exclusively owned by the manager; components of destroyed
// entities are removed from every store.
type ComponentManager struct {
	stores map[reflect.Type]ComponentStore
	order  []ComponentStore
}

// NewComponentManager creates a component manager that cleans up after
// entities destroyed through the given entity manager.
func NewComponentManager(entities *EntityManager) *ComponentManager {
	cm := &ComponentManager{
		stores: make(map[reflect.Type]ComponentStore),
	}
	if entities != nil {
		entities.OnDestroyed(func(e Entity) {
			cm.RemoveAll(e.ID)
		})
	}
	return cm
}

// AddStore registers a store for its component type.
func (cm *ComponentManager) AddStore(store ComponentStore) error {
	t := store.ComponentType()
	if _, exists := cm.stores[t]; exists {
		return fmt.Errorf("add store %s: %w", t, ErrDuplicateStore)
	}
	cm.stores[t] = store
	cm.order = append(cm.order, store)
	return nil
}

// RegisterPacked adds a PackedArrayStore for T.
func RegisterPacked[T any](cm *ComponentManager) error {
	return cm.AddStore(NewPackedArrayStore[T]())
}

// RegisterDictionary adds a DictionaryStore for T.
func RegisterDictionary[T any](cm *ComponentManager) error {
	return cm.AddStore(NewDictionaryStore[T]())
}

// GetStore returns the typed store registered for T.
func GetStore[T any](cm *ComponentManager) (Store[T], bool) {
	store, ok := cm.stores[reflect.TypeFor[T]()]
	if !ok {
		return nil, false
	}
	typed, ok := store.(Store[T])
	return typed, ok
}

// StoreFor returns the store registered for the given type.
func (cm *ComponentManager) StoreFor(t reflect.Type) (ComponentStore, bool) {
	store, ok := cm.stores[t]
	return store, ok
}

// Stores iterates over registered stores in registration order.
func (cm *ComponentManager) Stores() iter.Seq[ComponentStore] {
	return func(yield func(ComponentStore) bool) {
		for _, store := range cm.order {
			if !yield(store) {
				return
			}
		}
	}
}

// Len returns the number of registered stores.
func (cm *ComponentManager) Len() int {
	return len(cm.order)
}

// ComponentsOf lists the component types held for id, in registration order.
func (cm *ComponentManager) ComponentsOf(id uint32) []reflect.Type {
	var types []reflect.Type
	for _, store := range cm.order {
		if store.Has(id) {
			types = append(types, store.ComponentType())
		}
	}
	return types
}

// RemoveAll deletes every component held for id.
func (cm *ComponentManager) RemoveAll(id uint32) {
	for _, store := range cm.order {
		store.Remove(id)
	}
}
