// Package camera provides the perspective camera shared by the 3D effects.
package camera

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Camera sits on the +Z axis looking at the origin with +Y up.
// World units are independent of pixels; the z=0 plane is where the
// 3D effects keep their bodies.
type Camera struct {
	// Distance is the camera z position
	Distance float64

	// FOV is the vertical field of view in degrees
	FOV float64

	// Clip planes, measured from the camera
	Near, Far float64

	// Viewport dimensions (screen size)
	ViewportW, ViewportH float32
}

// New creates a camera for a viewport in pixels.
func New(viewportW, viewportH float32, distance, fov, near, far float64) *Camera {
	return &Camera{
		Distance:  distance,
		FOV:       fov,
		Near:      near,
		Far:       far,
		ViewportW: viewportW,
		ViewportH: viewportH,
	}
}

// Aspect returns the viewport width over height. A degenerate viewport
// reports 0.
func (c *Camera) Aspect() float64 {
	if c.ViewportW <= 0 || c.ViewportH <= 0 {
		return 0
	}
	return float64(c.ViewportW) / float64(c.ViewportH)
}

// HalfExtents returns the visible half width and half height, in world
// units, of the plane at depth z.
func (c *Camera) HalfExtents(z float64) (hw, hh float64) {
	d := c.Distance - z
	if d <= 0 {
		return 0, 0
	}
	hh = math.Tan(c.halfFOV()) * d
	hw = hh * c.Aspect()
	return hw, hh
}

// Project maps a world point to screen pixels. scale is pixels per world
// unit at the point's depth. ok is false for points outside the clip range.
func (c *Camera) Project(p r3.Vec) (sx, sy, scale float32, ok bool) {
	d := c.Distance - p.Z
	if d <= c.Near || d > c.Far {
		return 0, 0, 0, false
	}
	f := c.focal() / d
	sx = c.ViewportW/2 + float32(p.X*f)
	sy = c.ViewportH/2 - float32(p.Y*f)
	return sx, sy, float32(f), true
}

// ScreenToWorld converts a screen position to a point on the z=0 plane.
func (c *Camera) ScreenToWorld(sx, sy float32) (wx, wy float64) {
	f := c.focal()
	if f == 0 {
		return 0, 0
	}
	k := c.Distance / f
	wx = float64(sx-c.ViewportW/2) * k
	wy = -float64(sy-c.ViewportH/2) * k
	return wx, wy
}

// Depth returns the distance from the camera to a world point along the view axis.
func (c *Camera) Depth(p r3.Vec) float64 {
	return c.Distance - p.Z
}

// Resize updates viewport dimensions. Returns false if nothing changed.
func (c *Camera) Resize(viewportW, viewportH float32) bool {
	if viewportW == c.ViewportW && viewportH == c.ViewportH {
		return false
	}
	c.ViewportW = viewportW
	c.ViewportH = viewportH
	return true
}

func (c *Camera) halfFOV() float64 {
	return c.FOV * math.Pi / 360
}

// focal is the pixel distance to the image plane.
func (c *Camera) focal() float64 {
	t := math.Tan(c.halfFOV())
	if t <= 0 {
		return 0
	}
	return float64(c.ViewportH) / 2 / t
}
