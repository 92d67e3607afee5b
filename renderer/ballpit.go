package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/backdrop/systems"
)

// BallpitRenderer draws the ball pit as lit spheres through a 3D camera.
type BallpitRenderer struct {
	pit    *systems.Ballpit
	rings  int32
	slices int32
}

// NewBallpitRenderer creates a renderer for pit.
func NewBallpitRenderer(pit *systems.Ballpit) *BallpitRenderer {
	return &BallpitRenderer{pit: pit, rings: 16, slices: 16}
}

// Clear implements Renderer.
func (r *BallpitRenderer) Clear() {
	rl.ClearBackground(rl.Blank)
}

// Draw implements Renderer.
func (r *BallpitRenderer) Draw() {
	rl.BeginMode3D(Camera3D(r.pit.Camera()))
	bodies := r.pit.Bodies()
	for i := range bodies {
		b := &bodies[i]
		rl.DrawSphereEx(vec3(b.Pos), float32(b.Radius), r.rings, r.slices, b.Tint)
	}
	rl.EndMode3D()
}

// Unload implements Renderer.
func (r *BallpitRenderer) Unload() {}
