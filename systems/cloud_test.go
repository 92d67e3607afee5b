package systems

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/backdrop/camera"
	"github.com/pthm-cable/backdrop/components"
)

func newTestCloud(t *testing.T) *Cloud {
	t.Helper()
	cfg := testConfig(t)
	cam := camera.New(800, 600, cfg.Camera.Distance, cfg.Cloud.FOV, cfg.Camera.Near, cfg.Camera.Far)
	return NewCloud(cfg.Cloud, NewSpawner(23), cam)
}

func TestCloudFillsCube(t *testing.T) {
	c := newTestCloud(t)
	if c.Count() != 1500 {
		t.Fatalf("count = %d, want 1500", c.Count())
	}
	c.Each(func(p r3.Vec) {
		if math.Abs(p.X) > 20 || math.Abs(p.Y) > 20 || math.Abs(p.Z) > 20 {
			t.Fatalf("point %v outside the 40-unit cube", p)
		}
	})
}

func TestCloudRotationIsRigid(t *testing.T) {
	c := newTestCloud(t)
	var before []float64
	c.Each(func(p r3.Vec) { before = append(before, r3.Norm(p)) })

	for i := 0; i < 300; i++ {
		c.Update(components.PointerSnapshot{})
	}

	ax, ay := c.Angles()
	if math.Abs(ax-0.3) > 1e-9 || math.Abs(ay-0.6) > 1e-9 {
		t.Errorf("angles = (%v, %v), want (0.3, 0.6)", ax, ay)
	}

	i := 0
	var first r3.Vec
	c.Each(func(p r3.Vec) {
		if math.Abs(r3.Norm(p)-before[i]) > 1e-9 {
			t.Fatalf("point %d changed distance from origin", i)
		}
		if i == 0 {
			first = p
		}
		i++
	})
	if r3.Norm(r3.Sub(first, c.points[0])) < 1e-6 {
		t.Error("rotation left the first point in place")
	}
}

func TestCloudResizeKeepsPoints(t *testing.T) {
	c := newTestCloud(t)
	first := c.points[0]
	c.Resize(400, 300)
	if c.Count() != 1500 || c.points[0] != first {
		t.Error("resize should not regenerate the cloud")
	}
	if c.Camera().ViewportW != 400 {
		t.Errorf("camera viewport not updated: %v", c.Camera().ViewportW)
	}
}
