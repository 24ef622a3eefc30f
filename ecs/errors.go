package ecs

import "errors"

var (
	// ErrNotAlive is returned when an operation targets a destroyed or stale entity.
	ErrNotAlive = errors.New("entity is not alive")
	// ErrNoStore is returned when no store is registered for a component type.
	ErrNoStore = errors.New("no store registered for component type")
	// ErrNoComponent is returned by Get when the entity lacks the component.
	ErrNoComponent = errors.New("entity has no such component")
	// ErrDuplicateStore is returned when a second store is added for a type.
	ErrDuplicateStore = errors.New("store already registered for component type")
	// ErrComponentType is returned when a value does not match the store's type.
	ErrComponentType = errors.New("value does not match store component type")

	ErrAlreadyStarted = errors.New("processor already started")
	ErrNotStarted     = errors.New("processor not started")
)
