package ecs_test

import "github.com/naxaras/gaemstone/ecs"

// Common test component types
type Position struct {
	X, Y float32
}

type Velocity struct {
	DX, DY float32
}

type Name struct {
	Value string
}

type Health struct {
	Current int
	Max     int
}

// Registered nowhere; used to exercise missing-store paths.
type Unregistered struct{}

type Score int32

func newTestUniverse() *ecs.Universe {
	u := ecs.NewUniverse()
	mustRegister(ecs.RegisterPacked[Position](u.Components))
	mustRegister(ecs.RegisterPacked[Velocity](u.Components))
	mustRegister(ecs.RegisterPacked[Health](u.Components))
	mustRegister(ecs.RegisterDictionary[Name](u.Components))
	mustRegister(ecs.RegisterDictionary[Score](u.Components))
	return u
}

func mustRegister(err error) {
	if err != nil {
		panic(err)
	}
}
