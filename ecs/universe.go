package ecs

import (
	"fmt"
	"log/slog"
	"reflect"
)

// Universe composes entity identity, component storage and processor
// scheduling into one ECS instance.
type Universe struct {
	Entities   *EntityManager
	Components *ComponentManager
	Processors *ProcessorManager

	logger *slog.Logger
}

// Option configures a Universe.
type Option func(*Universe)

// WithLogger sets the logger used by the universe and its processors.
func WithLogger(logger *slog.Logger) Option {
	return func(u *Universe) {
		u.logger = logger
	}
}

// NewUniverse creates an empty universe with no stores and no processors.
func NewUniverse(opts ...Option) *Universe {
	u := &Universe{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}

	u.Entities = NewEntityManager()
	u.Components = NewComponentManager(u.Entities)
	u.Processors = NewProcessorManager(u)
	return u
}

// Logger returns the universe's logger.
func (u *Universe) Logger() *slog.Logger {
	return u.logger
}

// Get reads the T component of e.
func Get[T any](u *Universe, e Entity) (T, error) {
	var zero T
	store, err := storeFor[T](u, e)
	if err != nil {
		return zero, err
	}
	value, ok := store.Get(e.ID)
	if !ok {
		return zero, fmt.Errorf("get %s on %s: %w", reflect.TypeFor[T](), e, ErrNoComponent)
	}
	return value, nil
}

// Set writes the T component of e, adding it if absent.
func Set[T any](u *Universe, e Entity, value T) error {
	store, err := storeFor[T](u, e)
	if err != nil {
		return err
	}
	store.Set(e.ID, value)
	return nil
}

// Has reports whether e is alive and carries a T component.
func Has[T any](u *Universe, e Entity) bool {
	store, err := storeFor[T](u, e)
	if err != nil {
		return false
	}
	return store.Has(e.ID)
}

// Remove deletes the T component of e. Removing an absent component is not
// an error.
func Remove[T any](u *Universe, e Entity) error {
	store, err := storeFor[T](u, e)
	if err != nil {
		return err
	}
	store.Remove(e.ID)
	return nil
}

func storeFor[T any](u *Universe, e Entity) (Store[T], error) {
	if !u.Entities.IsAlive(e) {
		return nil, fmt.Errorf("%s: %w", e, ErrNotAlive)
	}
	store, ok := GetStore[T](u.Components)
	if !ok {
		return nil, fmt.Errorf("%s: %w", reflect.TypeFor[T](), ErrNoStore)
	}
	return store, nil
}

// Spawn creates an entity carrying the given component values. Values may
// be given by value or by pointer. If any value cannot be stored the entity
// is destroyed again and the error returned.
func (u *Universe) Spawn(components ...any) (Entity, error) {
	e := u.Entities.New()
	for _, component := range components {
		if err := u.setAny(e, component); err != nil {
			_ = u.Entities.Destroy(e)
			return Entity{}, err
		}
	}
	return e, nil
}

// Destroy kills e and removes all of its components.
func (u *Universe) Destroy(e Entity) error {
	return u.Entities.Destroy(e)
}

func (u *Universe) setAny(e Entity, component any) error {
	if !u.Entities.IsAlive(e) {
		return fmt.Errorf("%s: %w", e, ErrNotAlive)
	}
	t := reflect.TypeOf(component)
	if t == nil {
		return fmt.Errorf("nil component: %w", ErrComponentType)
	}
	store, ok := u.Components.StoreFor(t)
	if !ok && t.Kind() == reflect.Ptr {
		t = t.Elem()
		store, ok = u.Components.StoreFor(t)
	}
	if !ok {
		return fmt.Errorf("%s: %w", t, ErrNoStore)
	}
	return store.SetAny(e.ID, component)
}
