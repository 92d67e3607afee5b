package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/backdrop/components"
	"github.com/pthm-cable/backdrop/systems"
)

const (
	flakeBranches    = 6
	flakeDetailSize  = 5   // Flakes larger than this get V-shaped side branches
	flakeSubStart    = 0.6 // Side branches start this far along the arm
	flakeSubLength   = 0.4
	flakeSubAngleRad = math.Pi / 4
)

// segment is one stroke of a snowflake.
type segment struct {
	a, b rl.Vector2
}

// SnowRenderer draws each flake as a six-armed star.
type SnowRenderer struct {
	snow *systems.Snow
	segs []segment
}

// NewSnowRenderer creates a renderer for snow.
func NewSnowRenderer(snow *systems.Snow) *SnowRenderer {
	return &SnowRenderer{snow: snow}
}

// Clear implements Renderer.
func (r *SnowRenderer) Clear() {
	rl.ClearBackground(rl.Blank)
}

// Draw implements Renderer.
func (r *SnowRenderer) Draw() {
	r.snow.Each(func(pos components.Position, depth components.Depth, spin components.Spin, app components.Appearance) {
		r.segs = flakeSegments(r.segs[:0], pos.X, pos.Y, app.Size, spin.Angle)
		col := app.Shade(app.Alpha)
		thick := 1 + depth.Z*0.5
		for i := range r.segs {
			rl.DrawLineEx(r.segs[i].a, r.segs[i].b, thick, col)
		}
	})
}

// Unload implements Renderer.
func (r *SnowRenderer) Unload() {}

// flakeSegments appends the strokes of a flake centred at (x, y).
func flakeSegments(dst []segment, x, y, size, rotation float32) []segment {
	center := rl.Vector2{X: x, Y: y}
	at := func(ox, oy float32, angle float64, length float32) rl.Vector2 {
		return rl.Vector2{
			X: ox + float32(math.Cos(angle))*length,
			Y: oy + float32(math.Sin(angle))*length,
		}
	}

	for i := 0; i < flakeBranches; i++ {
		angle := float64(rotation) + float64(i)*2*math.Pi/flakeBranches
		dst = append(dst, segment{center, at(x, y, angle, size)})

		if size > flakeDetailSize {
			sub := at(x, y, angle, size*flakeSubStart)
			subLen := size * flakeSubLength
			dst = append(dst,
				segment{sub, at(sub.X, sub.Y, angle+flakeSubAngleRad, subLen)},
				segment{sub, at(sub.X, sub.Y, angle-flakeSubAngleRad, subLen)},
			)
		}
	}
	return dst
}
