package client

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Transform places an entity in world space. The zero value is the identity.
type Transform struct {
	ebiten.GeoM
}

// Position returns the translation part of the transform.
func (t Transform) Position() (x, y float64) {
	return t.Apply(0, 0)
}

// Camera describes a view onto the world.
type Camera struct {
	Zoom     float64
	Viewport image.Rectangle
}

// DefaultCamera is attached to the main camera entity on load.
var DefaultCamera = Camera{Zoom: 1}
