package ecs

import (
	"iter"
	"reflect"
)

// Row2 holds the components of one entity matched by Each2.
type Row2[A, B any] struct {
	A A
	B B
}

// Row3 holds the components of one entity matched by Each3.
type Row3[A, B, C any] struct {
	A A
	B B
	C C
}

// Each iterates over live entities carrying an A component.
// Structural changes during iteration should go through Commands.
func Each[A any](u *Universe) iter.Seq2[Entity, A] {
	return func(yield func(Entity, A) bool) {
		storeA, ok := GetStore[A](u.Components)
		if !ok {
			return
		}
		for id := range storeA.IDs() {
			e, alive := u.Entities.Lookup(id)
			if !alive {
				continue
			}
			a, ok := storeA.Get(id)
			if !ok {
				continue
			}
			if !yield(e, a) {
				return
			}
		}
	}
}

// Each2 iterates over live entities carrying both A and B.
func Each2[A, B any](u *Universe) iter.Seq2[Entity, Row2[A, B]] {
	return func(yield func(Entity, Row2[A, B]) bool) {
		storeA, okA := GetStore[A](u.Components)
		storeB, okB := GetStore[B](u.Components)
		if !okA || !okB {
			return
		}
		for id := range smallest(storeA, storeB).IDs() {
			e, alive := u.Entities.Lookup(id)
			if !alive {
				continue
			}
			a, okA := storeA.Get(id)
			b, okB := storeB.Get(id)
			if !okA || !okB {
				continue
			}
			if !yield(e, Row2[A, B]{A: a, B: b}) {
				return
			}
		}
	}
}

// Each3 iterates over live entities carrying A, B and C.
func Each3[A, B, C any](u *Universe) iter.Seq2[Entity, Row3[A, B, C]] {
	return func(yield func(Entity, Row3[A, B, C]) bool) {
		storeA, okA := GetStore[A](u.Components)
		storeB, okB := GetStore[B](u.Components)
		storeC, okC := GetStore[C](u.Components)
		if !okA || !okB || !okC {
			return
		}
		for id := range smallest(storeA, storeB, storeC).IDs() {
			e, alive := u.Entities.Lookup(id)
			if !alive {
				continue
			}
			a, okA := storeA.Get(id)
			b, okB := storeB.Get(id)
			c, okC := storeC.Get(id)
			if !okA || !okB || !okC {
				continue
			}
			if !yield(e, Row3[A, B, C]{A: a, B: b, C: c}) {
				return
			}
		}
	}
}

func smallest(stores ...ComponentStore) ComponentStore {
	best := stores[0]
	for _, s := range stores[1:] {
		if s.Len() < best.Len() {
			best = s
		}
	}
	return best
}

// Match iterates over live entities carrying every one of the given
// component types. It is the type-erased counterpart of Each for tooling.
func (u *Universe) Match(types ...reflect.Type) iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		if len(types) == 0 {
			return
		}
		stores := make([]ComponentStore, 0, len(types))
		for _, t := range types {
			store, ok := u.Components.StoreFor(t)
			if !ok {
				return
			}
			stores = append(stores, store)
		}

	ids:
		for id := range smallest(stores...).IDs() {
			for _, store := range stores {
				if !store.Has(id) {
					continue ids
				}
			}
			e, alive := u.Entities.Lookup(id)
			if !alive {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}
