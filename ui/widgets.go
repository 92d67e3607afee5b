// Package ui draws the debug overlays: a HUD, a frame timing panel and live
// parameter controls.
package ui

import (
	"fmt"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/lucasb-eyer/go-colorful"
)

// defaultAccent matches the violet used by the network links.
var defaultAccent = color.RGBA{R: 167, G: 139, B: 250, A: 255}

// Theme holds overlay colours and metrics.
type Theme struct {
	PanelBg     rl.Color
	PanelBorder rl.Color
	Header      rl.Color
	Label       rl.Color
	Value       rl.Color
	BarBg       rl.Color
	BarFill     rl.Color

	Padding    int32
	LineHeight int32
	LabelWidth int32
	BarHeight  int32
	FontSize   int32
	HeaderSize int32
}

// NewTheme builds a dark theme around an accent colour. Headers use a pale
// tint of the accent and panel borders a dark shade of it.
func NewTheme(accent color.RGBA) Theme {
	a, _ := colorful.MakeColor(accent)
	white := colorful.Color{R: 1, G: 1, B: 1}
	black := colorful.Color{}

	return Theme{
		PanelBg:     rl.Color{R: 15, G: 18, B: 28, A: 220},
		PanelBorder: toRGBA(a.BlendLab(black, 0.6), 255),
		Header:      toRGBA(a.BlendLab(white, 0.5), 255),
		Label:       rl.LightGray,
		Value:       rl.RayWhite,
		BarBg:       toRGBA(a.BlendLab(black, 0.8), 255),
		BarFill:     accent,

		Padding:    10,
		LineHeight: 16,
		LabelWidth: 90,
		BarHeight:  12,
		FontSize:   12,
		HeaderSize: 14,
	}
}

// DefaultTheme returns the violet theme.
func DefaultTheme() Theme {
	return NewTheme(defaultAccent)
}

func toRGBA(c colorful.Color, a uint8) rl.Color {
	r, g, b := c.Clamped().RGB255()
	return rl.Color{R: r, G: g, B: b, A: a}
}

// Painter draws themed panel widgets. Each row method returns the y of the
// next row.
type Painter struct {
	Theme Theme
}

// NewPainter creates a painter with the default theme.
func NewPainter() *Painter {
	return &Painter{Theme: DefaultTheme()}
}

// Panel draws a bordered panel background.
func (p *Painter) Panel(x, y, width, height int32) {
	rl.DrawRectangle(x, y, width, height, p.Theme.PanelBg)
	rl.DrawRectangleLines(x, y, width, height, p.Theme.PanelBorder)
}

// Header draws a section title.
func (p *Painter) Header(x, y int32, title string) int32 {
	rl.DrawText(title, x, y, p.Theme.HeaderSize, p.Theme.Header)
	return y + p.Theme.LineHeight
}

// Row draws a label with its value in a second column.
func (p *Painter) Row(x, y int32, label, value string) int32 {
	rl.DrawText(label+":", x, y, p.Theme.FontSize, p.Theme.Label)
	rl.DrawText(value, x+p.Theme.LabelWidth, y, p.Theme.FontSize, p.Theme.Value)
	return y + p.Theme.LineHeight
}

// Bar draws a labelled share bar for pct in [0, 100].
func (p *Painter) Bar(x, y int32, label string, pct float64, width int32) int32 {
	barX := x + p.Theme.LabelWidth
	barW := width - p.Theme.LabelWidth - 50
	fill := int32(float64(barW) * barFill(pct))

	rl.DrawText(label+":", x, y, p.Theme.FontSize, p.Theme.Label)
	rl.DrawRectangle(barX, y+2, barW, p.Theme.BarHeight, p.Theme.BarBg)
	rl.DrawRectangle(barX, y+2, fill, p.Theme.BarHeight, p.Theme.BarFill)
	rl.DrawText(fmt.Sprintf("%.1f%%", pct), barX+barW+5, y, p.Theme.FontSize, p.Theme.Value)

	return y + p.Theme.LineHeight + 2
}

// barFill maps a percentage to a [0, 1] fill fraction.
func barFill(pct float64) float64 {
	switch {
	case pct <= 0:
		return 0
	case pct >= 100:
		return 1
	}
	return pct / 100
}
