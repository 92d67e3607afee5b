package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/backdrop/systems"
)

// CloudRenderer draws the tumbling point cloud with exponential-squared fog
// and additive blending.
type CloudRenderer struct {
	cloud *systems.Cloud
}

// NewCloudRenderer creates a renderer for cloud.
func NewCloudRenderer(cloud *systems.Cloud) *CloudRenderer {
	return &CloudRenderer{cloud: cloud}
}

// Clear implements Renderer.
func (r *CloudRenderer) Clear() {
	rl.ClearBackground(rl.Blank)
}

// Draw implements Renderer.
func (r *CloudRenderer) Draw() {
	cam := r.cloud.Camera()
	tint := r.cloud.Tint()
	size := r.cloud.Size()
	density := r.cloud.Fog()

	rl.BeginBlendMode(rl.BlendAdditive)
	r.cloud.Each(func(p r3.Vec) {
		sx, sy, scale, ok := cam.Project(p)
		if !ok {
			return
		}
		radius := float32(size/2) * scale
		if radius < 0.5 {
			radius = 0.5
		}
		rl.DrawCircleV(rl.Vector2{X: sx, Y: sy}, radius, withAlpha(tint, fogFactor(density, cam.Depth(p))))
	})
	rl.EndBlendMode()
}

// Unload implements Renderer.
func (r *CloudRenderer) Unload() {}

// fogFactor is the visibility left after exp2 fog at depth.
func fogFactor(density, depth float64) float32 {
	d := density * depth
	return float32(math.Exp(-d * d))
}
