// Package components defines the per-entity data records shared by the effects.
package components

// Position represents an entity's position in viewport pixels.
type Position struct {
	X, Y float32
}

// Velocity represents an entity's velocity in pixels per tick.
type Velocity struct {
	X, Y float32
}

// Depth is the parallax factor in [0, 1]: 0 is far, 1 is near.
// Assigned at creation and never changed.
type Depth struct {
	Z float32
}

// Spin holds a planar rotation and its rate (radians per tick).
type Spin struct {
	Angle float32
	Rate  float32
}
