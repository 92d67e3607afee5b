package systems

import (
	"image/color"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/backdrop/camera"
	"github.com/pthm-cable/backdrop/components"
	"github.com/pthm-cable/backdrop/config"
)

var (
	axisX = r3.Vec{X: 1}
	axisY = r3.Vec{Y: 1}
)

// Cloud is a cube of points that slowly tumbles in front of the camera.
// The points never move relative to each other; only the rotation advances.
type Cloud struct {
	cfg    config.CloudConfig
	cam    *camera.Camera
	tint   color.RGBA
	points []r3.Vec

	angleX, angleY float64
}

// NewCloud fills a cube of edge cfg.Extent with cfg.Count points.
func NewCloud(cfg config.CloudConfig, spawn *Spawner, cam *camera.Camera) *Cloud {
	n := cfg.Count
	if n < 0 {
		n = 0
	}
	half := cfg.Extent / 2
	points := make([]r3.Vec, n)
	for i := range points {
		points[i] = r3.Vec{
			X: spawn.Symmetric64(half),
			Y: spawn.Symmetric64(half),
			Z: spawn.Symmetric64(half),
		}
	}
	return &Cloud{
		cfg:    cfg,
		cam:    cam,
		tint:   HexColor(cfg.Color, cfg.Opacity),
		points: points,
	}
}

// Name implements Effect.
func (c *Cloud) Name() string { return NameCloud }

// Count implements Effect.
func (c *Cloud) Count() int { return len(c.points) }

// Camera returns the camera the cloud is viewed through.
func (c *Cloud) Camera() *camera.Camera { return c.cam }

// Tint is the point colour with opacity applied.
func (c *Cloud) Tint() color.RGBA { return c.tint }

// Size is the point size in world units.
func (c *Cloud) Size() float64 { return c.cfg.Size }

// Fog is the exponential fog density.
func (c *Cloud) Fog() float64 { return c.cfg.Fog }

// Angles returns the current rotation about X and Y in radians.
func (c *Cloud) Angles() (x, y float64) { return c.angleX, c.angleY }

// Resize implements Effect. The cloud lives in world units, so only the
// camera aspect changes.
func (c *Cloud) Resize(width, height float32) {
	c.cam.Resize(width, height)
}

// Update implements Effect. The cloud ignores the pointer.
func (c *Cloud) Update(_ components.PointerSnapshot) {
	c.angleY += c.cfg.SpinY
	c.angleX += c.cfg.SpinX
}

// Each calls fn with every point in its rotated position.
func (c *Cloud) Each(fn func(p r3.Vec)) {
	ry := r3.NewRotation(c.angleY, axisY)
	rx := r3.NewRotation(c.angleX, axisX)
	for _, p := range c.points {
		fn(rx.Rotate(ry.Rotate(p)))
	}
}

// Speeds implements Effect. A point's speed is its distance from the spin
// axes times the angular rate; the Y spin dominates.
func (c *Cloud) Speeds(dst []float64) []float64 {
	for _, p := range c.points {
		dst = append(dst, r3.Norm(r3.Vec{X: p.X, Z: p.Z})*c.cfg.SpinY)
	}
	return dst
}

// Escaped implements Effect. Points are never culled by the viewport.
func (c *Cloud) Escaped() int { return 0 }
