package game

import (
	"fmt"
	"log/slog"

	"github.com/pthm-cable/backdrop/driver"
	"github.com/pthm-cable/backdrop/renderer"
	"github.com/pthm-cable/backdrop/systems"
	"github.com/pthm-cable/backdrop/telemetry"
)

// Acquire mounts every layer. Layers whose surface cannot be obtained stay
// Idle without affecting the others; an error is returned only when no layer
// could mount.
func (g *Game) Acquire() error {
	mounted := 0
	w, h := int32(g.width), int32(g.height)

	for _, l := range g.layers {
		if l.state == driver.Running {
			mounted++
			continue
		}

		var r renderer.Renderer
		if !g.headless {
			r = g.newRenderer(l.effect)
		}
		if err := l.mount(w, h, r); err != nil {
			slog.Debug("layer not mounted", "effect", l.Name(), "error", err)
			g.recordEvent(telemetry.NewSurfaceFailedEvent(g.tick, l.Name()))
			continue
		}
		mounted++
		g.recordEvent(telemetry.NewMountEvent(g.tick, l.Name(), g.width, g.height))
	}

	if g.controls != nil {
		g.bindControls()
	}

	if mounted == 0 && len(g.layers) > 0 {
		return fmt.Errorf("no layer mounted: %w", renderer.ErrSurfaceUnavailable)
	}
	return nil
}

// Release unmounts every running layer.
func (g *Game) Release() {
	for _, l := range g.layers {
		if l.state != driver.Running {
			continue
		}
		l.unmount()
		g.recordEvent(telemetry.NewUnmountEvent(g.tick, l.Name()))
	}
}

// bindControls points the controls panel at the first mounted ball pit and field.
func (g *Game) bindControls() {
	var pit *systems.Ballpit
	var field *systems.Field
	for _, l := range g.layers {
		if l.state != driver.Running {
			continue
		}
		switch e := l.effect.(type) {
		case *systems.Ballpit:
			if pit == nil {
				pit = e
			}
		case *systems.Field:
			if field == nil {
				field = e
			}
		}
	}
	g.controls.Bind(pit, field)
}
