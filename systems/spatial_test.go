package systems

import (
	"math"
	"testing"

	"github.com/pthm-cable/backdrop/components"
)

func bruteForceLinks(pts []components.Position, maxDist float32) int {
	n := 0
	for i := range pts {
		for j := i + 1; j < len(pts); j++ {
			if distance(pts[i].X, pts[i].Y, pts[j].X, pts[j].Y) < maxDist {
				n++
			}
		}
	}
	return n
}

func fillGrid(g *SpatialGrid, pts []components.Position) {
	g.Clear()
	for i, p := range pts {
		g.Insert(int32(i), p.X, p.Y)
	}
}

func TestLinksMatchBruteForce(t *testing.T) {
	spawn := NewSpawner(3)
	pts := make([]components.Position, 400)
	for i := range pts {
		x, y := spawn.Position(800, 600)
		pts[i] = components.Position{X: x, Y: y}
	}
	// A few strays just outside the viewport
	pts = append(pts,
		components.Position{X: -20, Y: 300},
		components.Position{X: 815, Y: -5},
		components.Position{X: 400, Y: 640},
	)

	g := NewSpatialGrid(800, 600, 100)
	fillGrid(g, pts)
	links := g.LinksInto(nil, pts, 100, 0.2)

	if want := bruteForceLinks(pts, 100); len(links) != want {
		t.Errorf("grid found %d links, brute force %d", len(links), want)
	}
}

func TestLinkAlpha(t *testing.T) {
	pts := []components.Position{{X: 10, Y: 10}, {X: 60, Y: 10}, {X: 300, Y: 300}}
	g := NewSpatialGrid(400, 400, 100)
	fillGrid(g, pts)

	links := g.LinksInto(nil, pts, 100, 0.2)
	if len(links) != 1 {
		t.Fatalf("expected 1 link, got %d", len(links))
	}
	// Halfway to the limit: half the maximum opacity
	if math.Abs(float64(links[0].Alpha-0.1)) > 1e-6 {
		t.Errorf("alpha = %v, want 0.1", links[0].Alpha)
	}
}

func TestLinksNeverReachLimit(t *testing.T) {
	pts := []components.Position{{X: 0, Y: 0}, {X: 100, Y: 0}}
	g := NewSpatialGrid(200, 200, 100)
	fillGrid(g, pts)

	if links := g.LinksInto(nil, pts, 100, 0.2); len(links) != 0 {
		t.Errorf("pair exactly at the limit should not link, got %d", len(links))
	}
}

func TestEmptyGrid(t *testing.T) {
	g := NewSpatialGrid(0, 0, 0)
	pts := []components.Position{{X: 0, Y: 0}, {X: 0, Y: 0}}
	fillGrid(g, pts)
	if links := g.LinksInto(nil, pts, 0, 1); len(links) != 0 {
		t.Errorf("zero link distance should produce nothing, got %d", len(links))
	}
}
