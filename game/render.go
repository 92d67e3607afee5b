package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/backdrop/driver"
	"github.com/pthm-cable/backdrop/telemetry"
	"github.com/pthm-cable/backdrop/ui"
)

const perfRefreshTicks = 30

// draw renders each layer into its surface, then composites them onto the window.
func (g *Game) draw() {
	for _, l := range g.layers {
		if l.state == driver.Running {
			l.draw()
		}
	}

	rl.BeginDrawing()
	rl.ClearBackground(g.background)

	for _, l := range g.layers {
		if l.state == driver.Running {
			l.composite()
		}
	}

	if g.showHUD {
		if g.tick%perfRefreshTicks == 0 {
			g.perfSnapshot = g.perfCollector.Stats()
		}
		g.hud.Draw(g.hudData())
		g.perfPanel.Draw(g.perfSnapshot, telemetry.PhaseOrder)
		g.hud.DrawControls(int32(g.height), "[F1] controls  [F3] hud  [F11] fullscreen")
	}

	if g.controls != nil {
		g.controls.Draw()
	}

	rl.EndDrawing()
}

func (g *Game) hudData() ui.HUDData {
	data := ui.HUDData{
		Page: g.page,
		Tick: g.tick,
		FPS:  rl.GetFPS(),
	}
	for _, l := range g.layers {
		if l.state != driver.Running {
			continue
		}
		data.Layers = append(data.Layers, ui.LayerInfo{
			Name:    l.Name(),
			Count:   l.effect.Count(),
			Opacity: l.opacity,
		})
	}
	return data
}
