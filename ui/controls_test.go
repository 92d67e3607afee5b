package ui

import (
	"testing"

	"github.com/pthm-cable/backdrop/camera"
	"github.com/pthm-cable/backdrop/config"
	"github.com/pthm-cable/backdrop/systems"
)

func newBound(t *testing.T) (*ControlsPanel, *systems.Ballpit, *systems.Field) {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	spawn := systems.NewSpawner(1)
	cam := camera.New(800, 600, cfg.Camera.Distance, cfg.Camera.FOV, cfg.Camera.Near, cfg.Camera.Far)
	pit := systems.NewBallpit(cfg.Ballpit, spawn, cam)
	pit.Resize(800, 600)
	field := systems.NewField(cfg.Field, spawn, 800, 600)

	c := NewControlsPanel(10, 10, 260)
	c.Bind(pit, field)
	return c, pit, field
}

func TestControlsBindLoadsValues(t *testing.T) {
	c, pit, field := newBound(t)
	v := c.Values()
	if float64(v.Gravity) != float64(float32(pit.Params().Gravity)) {
		t.Errorf("gravity = %v, want %v", v.Gravity, pit.Params().Gravity)
	}
	if v.Composition != field.Composition() {
		t.Errorf("composition = %v, want %v", v.Composition, field.Composition())
	}
	if c.Apply() {
		t.Error("Apply without edits should report no change")
	}
}

func TestControlsApply(t *testing.T) {
	c, pit, field := newBound(t)
	count := pit.Count()

	v := c.Values()
	v.Gravity = 0.05
	v.WallBounce = 0.5
	v.FollowCursor = true
	v.Composition = 0.2
	c.Set(v)

	// Nothing changes until Apply
	if field.Composition() == 0.2 {
		t.Fatal("Set should not touch the effects")
	}

	if !c.Apply() {
		t.Fatal("Apply should report a change")
	}
	p := pit.Params()
	if p.Gravity != float64(float32(0.05)) || p.WallBounce != 0.5 || !p.FollowCursor {
		t.Errorf("ballpit params not applied: %+v", p)
	}
	if field.Composition() != 0.2 {
		t.Errorf("composition = %v, want 0.2", field.Composition())
	}
	if pit.Count() != count {
		t.Errorf("tuning should not change the pool size: %d -> %d", count, pit.Count())
	}
	if c.Apply() {
		t.Error("second Apply should be a no-op")
	}
}

func TestControlsUnbound(t *testing.T) {
	c := NewControlsPanel(0, 0, 200)
	c.Set(Tunables{Gravity: 1})
	if !c.Apply() {
		t.Error("Apply should still clear the pending edit")
	}
	if c.Toggle() != true || !c.IsVisible() {
		t.Error("Toggle should show the panel")
	}
}
