package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/backdrop/components"
	"github.com/pthm-cable/backdrop/systems"
)

// NetworkRenderer draws network particles and the links between neighbours.
type NetworkRenderer struct {
	net *systems.Network
}

// NewNetworkRenderer creates a renderer for net.
func NewNetworkRenderer(net *systems.Network) *NetworkRenderer {
	return &NetworkRenderer{net: net}
}

// Clear implements Renderer.
func (r *NetworkRenderer) Clear() {
	rl.ClearBackground(rl.Blank)
}

// Draw implements Renderer.
func (r *NetworkRenderer) Draw() {
	drawLinks(r.net.Links(), r.net.LinkWidth(), r.net.LinkColor())

	r.net.Each(func(pos components.Position, app components.Appearance) {
		rl.DrawCircleV(rl.Vector2{X: pos.X, Y: pos.Y}, app.Size, app.Shade(app.Alpha))
	})
}

// Unload implements Renderer.
func (r *NetworkRenderer) Unload() {}

// drawLinks strokes each link width pixels wide in base with the link's own alpha.
func drawLinks(links []systems.Link, width float32, base rl.Color) {
	for i := range links {
		l := &links[i]
		rl.DrawLineEx(
			rl.Vector2{X: l.X1, Y: l.Y1},
			rl.Vector2{X: l.X2, Y: l.Y2},
			width,
			withAlpha(rl.Color{R: base.R, G: base.G, B: base.B, A: 255}, l.Alpha),
		)
	}
}
