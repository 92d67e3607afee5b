package ui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/backdrop/telemetry"
)

// LayerInfo summarises one mounted effect layer.
type LayerInfo struct {
	Name    string
	Count   int
	Opacity float32
}

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Page   string
	Tick   int32
	FPS    int32
	Layers []LayerInfo
}

// HUD renders the main heads-up display.
type HUD struct {
	painter *Painter
}

// NewHUD creates a HUD with the default theme.
func NewHUD() *HUD {
	return &HUD{
		painter: NewPainter(),
	}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	rl.DrawText(data.Page, 10, 10, 20, h.painter.Theme.Header)
	rl.DrawText(fmt.Sprintf("Tick: %d | FPS: %d", data.Tick, data.FPS), 10, 35, 16, rl.LightGray)

	y := int32(55)
	for _, l := range data.Layers {
		rl.DrawText(fmt.Sprintf("%-10s %5d  %3.0f%%", l.Name, l.Count, l.Opacity*100), 10, y, 14, rl.LightGray)
		y += 16
	}
}

// DrawControls renders the key legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, legend string) {
	rl.DrawText(legend, 10, screenHeight-25, 14, rl.Gray)
}

// PerfPanel renders the frame phase breakdown.
type PerfPanel struct {
	painter *Painter
	x, y    int32
	width   int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(x, y, width int32) *PerfPanel {
	return &PerfPanel{
		painter: NewPainter(),
		x:       x,
		y:       y,
		width:   width,
	}
}

// SetPosition updates the panel position.
func (p *PerfPanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// Draw renders the performance panel.
func (p *PerfPanel) Draw(stats telemetry.PerfStats, phases []string) {
	r := p.painter
	padding := r.Theme.Padding
	height := r.Theme.LineHeight*int32(len(phases)+3) + padding*2

	r.Panel(p.x, p.y, p.width, height)

	y := p.y + padding
	y = r.Header(p.x+padding, y, "Frame")
	y = r.Row(p.x+padding, y, "Avg", stats.AvgFrameDuration.Round(time.Microsecond).String())
	y = r.Row(p.x+padding, y, "Max", stats.MaxFrameDuration.Round(time.Microsecond).String())

	for _, phase := range phases {
		y = r.Bar(p.x+padding, y, phase, stats.PhasePct[phase], p.width-padding*2)
	}
}
