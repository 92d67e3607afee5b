package systems

import (
	"math"
	"testing"

	"github.com/pthm-cable/backdrop/components"
	"github.com/pthm-cable/backdrop/config"
)

func newTestNetwork(t *testing.T, width, height float32, mutate func(*config.NetworkConfig)) *Network {
	t.Helper()
	nc := testConfig(t).Network
	if mutate != nil {
		mutate(&nc)
	}
	return NewNetwork(nc, NewSpawner(7), width, height)
}

// placeOnly overwrites the single particle in a one-particle network.
func placeOnly(t *testing.T, n *Network, pos components.Position, vel components.Velocity, alpha, target float32) {
	t.Helper()
	if n.Count() != 1 {
		t.Fatalf("expected a single particle, got %d", n.Count())
	}
	query := n.filter.Query()
	for query.Next() {
		p, v, app := query.Get()
		*p = pos
		*v = vel
		app.Alpha = alpha
		app.TargetAlpha = target
	}
}

func onlyParticle(n *Network) (components.Position, components.Appearance) {
	var pos components.Position
	var app components.Appearance
	n.Each(func(p components.Position, a components.Appearance) {
		pos, app = p, a
	})
	return pos, app
}

func TestNetworkPoolSize(t *testing.T) {
	tests := []struct {
		width float32
		want  int
	}{
		{800, 120},
		{1000, 150},
		{2000, 300},
		{5000, 300}, // capped
		{0, 0},
		{-50, 0},
	}
	for _, tt := range tests {
		n := newTestNetwork(t, tt.width, 600, nil)
		if n.Count() != tt.want {
			t.Errorf("width %v: count = %d, want %d", tt.width, n.Count(), tt.want)
		}
	}
}

func TestNetworkInitialRanges(t *testing.T) {
	n := newTestNetwork(t, 800, 600, nil)
	n.Each(func(p components.Position, a components.Appearance) {
		if p.X < 0 || p.X >= 800 || p.Y < 0 || p.Y >= 600 {
			t.Errorf("particle outside viewport: %+v", p)
		}
		if a.Size < 0.5 || a.Size >= 2.5 {
			t.Errorf("size %v outside [0.5, 2.5)", a.Size)
		}
		if a.Alpha < 0.1 || a.Alpha >= 0.6 || a.Alpha != a.TargetAlpha {
			t.Errorf("alpha %v / target %v not a valid start", a.Alpha, a.TargetAlpha)
		}
	})
}

func TestNetworkPointerPush(t *testing.T) {
	n := newTestNetwork(t, 1000, 1000, func(c *config.NetworkConfig) { c.Density = 0.0015 })
	placeOnly(t, n, components.Position{X: 500, Y: 500}, components.Velocity{}, 0.2, 0.2)

	// Pointer 50px to the right: force (200-50)/200 = 0.75, pushed 1.5px left
	n.Update(components.PointerSnapshot{X: 550, Y: 500, Active: true})

	pos, app := onlyParticle(n)
	if math.Abs(float64(pos.X-498.5)) > 1e-4 || math.Abs(float64(pos.Y-500)) > 1e-4 {
		t.Errorf("pos = %+v, want (498.5, 500)", pos)
	}
	if math.Abs(float64(app.Alpha-0.95)) > 1e-6 {
		t.Errorf("alpha = %v, want 0.95", app.Alpha)
	}
}

func TestNetworkAlphaCapped(t *testing.T) {
	n := newTestNetwork(t, 1000, 1000, func(c *config.NetworkConfig) { c.Density = 0.0015 })
	placeOnly(t, n, components.Position{X: 500, Y: 500}, components.Velocity{}, 0.5, 0.5)

	n.Update(components.PointerSnapshot{X: 505, Y: 500, Active: true})
	if _, app := onlyParticle(n); app.Alpha != 1 {
		t.Errorf("alpha = %v, want capped at 1", app.Alpha)
	}
}

func TestNetworkAlphaEasesBack(t *testing.T) {
	n := newTestNetwork(t, 1000, 1000, func(c *config.NetworkConfig) { c.Density = 0.0015 })
	placeOnly(t, n, components.Position{X: 100, Y: 100}, components.Velocity{}, 0.9, 0.3)

	// Active but far away: alpha closes 5% of the gap
	n.Update(components.PointerSnapshot{X: 900, Y: 900, Active: true})
	if _, app := onlyParticle(n); math.Abs(float64(app.Alpha-0.87)) > 1e-6 {
		t.Errorf("alpha = %v, want 0.87", app.Alpha)
	}
}

func TestNetworkInactivePointerLeavesAlpha(t *testing.T) {
	n := newTestNetwork(t, 1000, 1000, func(c *config.NetworkConfig) { c.Density = 0.0015 })
	placeOnly(t, n, components.Position{X: 500, Y: 500}, components.Velocity{}, 0.9, 0.3)

	n.Update(components.PointerSnapshot{X: 500, Y: 500, Active: false})
	pos, app := onlyParticle(n)
	if app.Alpha != 0.9 {
		t.Errorf("alpha = %v, want untouched 0.9", app.Alpha)
	}
	if pos.X != 500 || pos.Y != 500 {
		t.Errorf("particle moved without velocity: %+v", pos)
	}
}

func TestNetworkWraps(t *testing.T) {
	n := newTestNetwork(t, 1000, 1000, func(c *config.NetworkConfig) { c.Density = 0.0015 })
	placeOnly(t, n, components.Position{X: 999.95, Y: 0.05}, components.Velocity{X: 0.1, Y: -0.1}, 0.2, 0.2)

	n.Update(components.PointerSnapshot{})
	pos, _ := onlyParticle(n)
	if pos.X != 0 || pos.Y != 1000 {
		t.Errorf("pos = %+v, want wrapped to (0, 1000)", pos)
	}
}

func TestNetworkLinks(t *testing.T) {
	n := newTestNetwork(t, 800, 600, nil)
	n.Update(components.PointerSnapshot{})

	var pts []components.Position
	n.Each(func(p components.Position, _ components.Appearance) { pts = append(pts, p) })

	links := n.Links()
	if want := bruteForceLinks(pts, 100); len(links) != want {
		t.Errorf("links = %d, want %d", len(links), want)
	}
	for _, l := range links {
		if l.Alpha <= 0 || l.Alpha > 0.2 {
			t.Fatalf("link alpha %v outside (0, 0.2]", l.Alpha)
		}
	}
}

func TestLinkWidthHalfPixel(t *testing.T) {
	n := newTestNetwork(t, 800, 600, nil)
	f := newTestField(t, nil)
	if n.LinkWidth() != 0.5 {
		t.Errorf("network link width = %v, want 0.5", n.LinkWidth())
	}
	if f.LinkWidth() != 0.5 {
		t.Errorf("field link width = %v, want 0.5", f.LinkWidth())
	}
}
