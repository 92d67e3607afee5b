// Package renderer draws effect state with raylib. Renderers only read the
// effects they are given; all mutation happens in systems.
package renderer

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/backdrop/camera"
)

// Renderer draws one effect into its layer surface.
type Renderer interface {
	// Clear prepares the surface for a new frame.
	Clear()
	// Draw paints the effect's current state.
	Draw()
	// Unload frees any GPU resources.
	Unload()
}

// Camera3D builds a raylib camera matching cam, looking down -Z at the origin.
func Camera3D(cam *camera.Camera) rl.Camera3D {
	return rl.Camera3D{
		Position:   rl.NewVector3(0, 0, float32(cam.Distance)),
		Target:     rl.NewVector3(0, 0, 0),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       float32(cam.FOV),
		Projection: rl.CameraPerspective,
	}
}

func vec3(v r3.Vec) rl.Vector3 {
	return rl.NewVector3(float32(v.X), float32(v.Y), float32(v.Z))
}

// withAlpha returns c with its alpha scaled by a in [0, 1].
func withAlpha(c color.RGBA, a float32) rl.Color {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	c.A = uint8(float32(c.A) * a)
	return c
}
