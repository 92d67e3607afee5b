package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/backdrop/systems"
)

const (
	diskSquash = 0.3
	diskSteps  = 12
)

var (
	diskColor = rl.Color{R: 120, G: 100, B: 255, A: 255}
	rimColor  = rl.Color{R: 150, G: 150, B: 200, A: 255}
)

// StarfieldRenderer draws nebula clouds, then stars, then the black hole.
type StarfieldRenderer struct {
	sky *systems.Starfield
}

// NewStarfieldRenderer creates a renderer for sky.
func NewStarfieldRenderer(sky *systems.Starfield) *StarfieldRenderer {
	return &StarfieldRenderer{sky: sky}
}

// Clear implements Renderer.
func (r *StarfieldRenderer) Clear() {
	rl.ClearBackground(rl.Blank)
}

// Draw implements Renderer.
func (r *StarfieldRenderer) Draw() {
	clouds := r.sky.Clouds()
	for i := range clouds {
		c := &clouds[i]
		inner := c.Tint
		inner.A = uint8(clamp01(c.Alpha) * 255)
		outer := c.Tint
		outer.A = 0
		rl.DrawCircleGradient(int32(c.X), int32(c.Y), c.Radius, inner, outer)
	}

	stars := r.sky.Stars()
	for i := range stars {
		s := &stars[i]
		rl.DrawCircleV(rl.Vector2{X: s.X, Y: s.Y}, s.Size, withAlpha(s.Tint, s.Brightness))
	}

	if h := r.sky.Hole(); h != nil {
		drawBlackHole(h)
	}
}

// Unload implements Renderer.
func (r *StarfieldRenderer) Unload() {}

func drawBlackHole(h *systems.BlackHole) {
	cx, cy := int32(h.X), int32(h.Y)

	// Squashed accretion disk, outer ring first
	for i := diskSteps; i > 0; i-- {
		t := float32(i) / diskSteps
		radius := h.Radius + (h.DiskRadius-h.Radius)*t
		a := diskAlpha(t) * 0.1 * h.Opacity / diskSteps * 4
		rl.DrawEllipse(cx, cy, radius, radius*diskSquash, withAlpha(diskColor, a))
	}

	rl.DrawCircle(cx, cy, h.Radius, withAlpha(rl.Black, h.Opacity))
	rl.DrawCircleLines(cx, cy, h.Radius+1, withAlpha(rimColor, 0.1*h.Opacity))
}

// diskAlpha is the disk brightness at t in [0, 1] from the core to the
// outer edge: zero at both ends and peaking halfway.
func diskAlpha(t float32) float32 {
	if t <= 0 || t >= 1 {
		return 0
	}
	if t < 0.5 {
		return t * 2
	}
	return (1 - t) * 2
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
