package systems

import (
	"image/color"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/backdrop/camera"
	"github.com/pthm-cable/backdrop/components"
	"github.com/pthm-cable/backdrop/config"
)

// Ballpit is a pool of spheres on the z=0 plane falling under gravity,
// bouncing off the viewport walls and springing apart on contact.
type Ballpit struct {
	cfg     config.BallpitConfig
	spawn   *Spawner
	cam     *camera.Camera
	palette []color.RGBA

	bodies       []components.Body
	halfW, halfH float64
}

// NewBallpit creates a ball pit filling the camera's view.
func NewBallpit(cfg config.BallpitConfig, spawn *Spawner, cam *camera.Camera) *Ballpit {
	b := &Ballpit{
		cfg:     cfg,
		spawn:   spawn,
		cam:     cam,
		palette: ParsePalette(cfg.Palette),
	}
	b.ResizeWorld(cam.HalfExtents(0))
	return b
}

// Name implements Effect.
func (b *Ballpit) Name() string { return NameBallpit }

// Camera returns the camera the pit is viewed through.
func (b *Ballpit) Camera() *camera.Camera { return b.cam }

// Bodies returns the current bodies. Callers must not modify them.
func (b *Ballpit) Bodies() []components.Body { return b.bodies }

// Count implements Effect.
func (b *Ballpit) Count() int { return len(b.bodies) }

// HalfExtents returns the world-space walls.
func (b *Ballpit) HalfExtents() (hw, hh float64) { return b.halfW, b.halfH }

// Params returns the live physics settings.
func (b *Ballpit) Params() config.BallpitConfig { return b.cfg }

// SetParams replaces the physics settings. A count change regenerates the pool.
func (b *Ballpit) SetParams(cfg config.BallpitConfig) {
	regen := cfg.Count != b.cfg.Count
	b.cfg = cfg
	if regen {
		b.reset()
	}
}

// Resize implements Effect.
func (b *Ballpit) Resize(width, height float32) {
	b.cam.Resize(width, height)
	b.ResizeWorld(b.cam.HalfExtents(0))
}

// ResizeWorld sets the walls directly in world units and regenerates the pool.
func (b *Ballpit) ResizeWorld(hw, hh float64) {
	b.halfW = hw
	b.halfH = hh
	b.reset()
}

func (b *Ballpit) reset() {
	n := b.cfg.Count
	if n < 0 {
		n = 0
	}
	b.bodies = make([]components.Body, n)
	for i := range b.bodies {
		b.bodies[i] = components.Body{
			Pos: r3.Vec{
				X: b.spawn.Symmetric64(b.halfW),
				Y: b.spawn.Symmetric64(b.halfH),
			},
			Vel: r3.Vec{
				X: b.spawn.Symmetric64(b.cfg.InitialSpeed),
				Y: b.spawn.Symmetric64(b.cfg.InitialSpeed),
			},
			Radius: b.spawn.Uniform64(b.cfg.MinRadius, b.cfg.MaxRadius),
			Tint:   b.palette[b.spawn.Pick(len(b.palette))],
		}
	}
}

// Update implements Effect.
func (b *Ballpit) Update(p components.PointerSnapshot) {
	var cursor r3.Vec
	follow := b.cfg.FollowCursor && p.Active
	if follow {
		cursor.X, cursor.Y = b.cam.ScreenToWorld(p.X, p.Y)
	}
	b.Step(cursor, follow)
}

// Step advances the pit by one tick with the cursor given in world units.
// Each body moves before it is resolved against the bodies after it.
func (b *Ballpit) Step(cursor r3.Vec, follow bool) {
	g := b.cfg.Gravity * b.cfg.GravityScale

	for i := range b.bodies {
		body := &b.bodies[i]

		body.Vel.Y -= g
		body.Vel.X = Damp(body.Vel.X, b.cfg.Friction)
		body.Vel.Y = Damp(body.Vel.Y, b.cfg.Friction)

		if follow {
			b.pushFromCursor(body, cursor)
		}

		body.Pos = r3.Add(body.Pos, body.Vel)

		body.Pos.X, body.Vel.X, _ = Bounce(body.Pos.X, body.Vel.X, body.Radius, b.halfW, b.cfg.WallBounce)
		body.Pos.Y, body.Vel.Y, _ = Bounce(body.Pos.Y, body.Vel.Y, body.Radius, b.halfH, b.cfg.WallBounce)

		for j := i + 1; j < len(b.bodies); j++ {
			ResolvePair(body, &b.bodies[j], b.cfg.Spring)
		}
	}
}

func (b *Ballpit) pushFromCursor(body *components.Body, cursor r3.Vec) {
	diff := r3.Sub(body.Pos, cursor)
	diff.Z = 0
	d := r3.Norm(diff)
	if d == 0 {
		return
	}
	f := PointerForce(d, b.cfg.CursorRadius, b.cfg.CursorForce*b.cfg.CursorRadius)
	if f == 0 {
		return
	}
	body.Vel = r3.Add(body.Vel, r3.Scale(f/d, diff))
}

// Speeds implements Effect.
func (b *Ballpit) Speeds(dst []float64) []float64 {
	for i := range b.bodies {
		dst = append(dst, b.bodies[i].Speed())
	}
	return dst
}

// Escaped implements Effect.
func (b *Ballpit) Escaped() int {
	n := 0
	for i := range b.bodies {
		p := b.bodies[i].Pos
		if math.Abs(p.X) > b.halfW || math.Abs(p.Y) > b.halfH {
			n++
		}
	}
	return n
}
