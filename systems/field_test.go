package systems

import (
	"math"
	"testing"

	"github.com/pthm-cable/backdrop/components"
	"github.com/pthm-cable/backdrop/config"
)

func newTestField(t *testing.T, mutate func(*config.FieldConfig)) *Field {
	t.Helper()
	fc := testConfig(t).Field
	if mutate != nil {
		mutate(&fc)
	}
	return NewField(fc, NewSpawner(19), 800, 600)
}

func TestFieldCountAndRanges(t *testing.T) {
	f := newTestField(t, nil)
	if f.Count() != 100 {
		t.Fatalf("count = %d, want 100", f.Count())
	}
	for _, p := range f.Particles() {
		if p.Radius < 1 || p.Radius >= 2.5 {
			t.Errorf("radius %v outside [1, 2.5)", p.Radius)
		}
		if math.Abs(float64(p.Vel.X)) > 0.75 || math.Abs(float64(p.Vel.Y)) > 0.75 {
			t.Errorf("velocity %+v too fast", p.Vel)
		}
		if p.Tint.A != 153 {
			t.Errorf("tint alpha = %d, want 153", p.Tint.A)
		}
		// Hues 210-250 are blue: blue dominates red and green
		if p.Tint.B < p.Tint.R || p.Tint.B < p.Tint.G {
			t.Errorf("tint %+v is not blue", p.Tint)
		}
	}
}

func TestFieldDrift(t *testing.T) {
	tests := []struct {
		composition float32
		drift       float32
		linked      bool
	}{
		{0.5, 2, false},
		{0.9, 2, true},
		{1.0, 0.5, true},
		{1.5, 0.5, true},
	}
	f := newTestField(t, nil)
	for _, tt := range tests {
		f.SetComposition(tt.composition)
		if f.Drift() != tt.drift {
			t.Errorf("composition %v: drift = %v, want %v", tt.composition, f.Drift(), tt.drift)
		}
		if f.Linked() != tt.linked {
			t.Errorf("composition %v: linked = %v, want %v", tt.composition, f.Linked(), tt.linked)
		}
	}
}

func TestFieldMovesByDrift(t *testing.T) {
	f := newTestField(t, func(c *config.FieldConfig) { c.Count = 1 })
	f.particles[0].Pos = components.Position{X: 400, Y: 300}
	f.particles[0].Vel = components.Velocity{X: 0.5, Y: -0.5}

	f.Update(components.PointerSnapshot{})
	if p := f.particles[0].Pos; p.X != 400.25 || p.Y != 299.75 {
		t.Errorf("pos = %+v, want (400.25, 299.75) at drift 0.5", p)
	}

	f.SetComposition(0.5)
	f.Update(components.PointerSnapshot{})
	if p := f.particles[0].Pos; p.X != 401.25 || p.Y != 298.75 {
		t.Errorf("pos = %+v, want (401.25, 298.75) at drift 2", p)
	}
}

func TestFieldPointerRepels(t *testing.T) {
	f := newTestField(t, func(c *config.FieldConfig) { c.Count = 1 })
	f.particles[0].Pos = components.Position{X: 400, Y: 300}
	f.particles[0].Vel = components.Velocity{}

	// Pointer 75px left: force 0.5, pushed 4px right
	f.Update(components.PointerSnapshot{X: 325, Y: 300, Active: true})
	if p := f.particles[0].Pos; math.Abs(float64(p.X-404)) > 1e-4 || p.Y != 300 {
		t.Errorf("pos = %+v, want (404, 300)", p)
	}

	// The same pointer, once it has left, exerts nothing
	f.Update(components.PointerSnapshot{X: 325, Y: 300, Active: false})
	if p := f.particles[0].Pos; math.Abs(float64(p.X-404)) > 1e-4 {
		t.Errorf("inactive pointer moved particle to %+v", p)
	}
}

func TestFieldLinksGatedByComposition(t *testing.T) {
	f := newTestField(t, func(c *config.FieldConfig) { c.Count = 2 })
	place := func() {
		f.particles[0].Pos = components.Position{X: 100, Y: 100}
		f.particles[1].Pos = components.Position{X: 150, Y: 100}
		f.particles[0].Vel = components.Velocity{}
		f.particles[1].Vel = components.Velocity{}
	}

	place()
	f.Update(components.PointerSnapshot{})
	links := f.Links()
	if len(links) != 1 {
		t.Fatalf("links = %d, want 1", len(links))
	}
	if math.Abs(float64(links[0].Alpha-0.1)) > 1e-6 {
		t.Errorf("link alpha = %v, want 0.1 at composition 1", links[0].Alpha)
	}

	f.SetComposition(0.8)
	place()
	f.Update(components.PointerSnapshot{})
	if len(f.Links()) != 0 {
		t.Errorf("links drawn at composition 0.8")
	}
}
