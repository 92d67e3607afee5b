package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/backdrop/systems"
)

// FieldRenderer draws the information field. Instead of clearing, each frame
// fades the previous one so particles leave trails.
type FieldRenderer struct {
	field         *systems.Field
	background    rl.Color
	width, height int32
}

// NewFieldRenderer creates a renderer for field that fades toward background.
func NewFieldRenderer(field *systems.Field, background rl.Color) *FieldRenderer {
	return &FieldRenderer{field: field, background: background}
}

// SetSize sets the area covered by the fade.
func (r *FieldRenderer) SetSize(width, height int32) {
	r.width, r.height = width, height
}

// Clear implements Renderer.
func (r *FieldRenderer) Clear() {
	rl.DrawRectangle(0, 0, r.width, r.height, withAlpha(r.background, r.field.TrailFade()))
}

// Draw implements Renderer.
func (r *FieldRenderer) Draw() {
	if r.field.Linked() {
		drawLinks(r.field.Links(), r.field.LinkWidth(), r.field.LinkColor())
	}

	ps := r.field.Particles()
	for i := range ps {
		p := &ps[i]
		rl.DrawCircleV(rl.Vector2{X: p.Pos.X, Y: p.Pos.Y}, p.Radius, p.Tint)
	}
}

// Unload implements Renderer.
func (r *FieldRenderer) Unload() {}
