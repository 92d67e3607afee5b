package components

import (
	"image/color"

	"gonum.org/v1/gonum/spatial/r3"
)

// Body is a rigid sphere in the ball pit.
// Radius and Tint are fixed at creation.
type Body struct {
	Pos    r3.Vec
	Vel    r3.Vec
	Radius float64
	Tint   color.RGBA
}

// Speed returns the magnitude of the body's velocity.
func (b *Body) Speed() float64 {
	return r3.Norm(b.Vel)
}
