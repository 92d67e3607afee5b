package systems

import (
	"image/color"

	"github.com/pthm-cable/backdrop/components"
	"github.com/pthm-cable/backdrop/config"
)

// FieldParticle is one node of the information field.
type FieldParticle struct {
	Pos     components.Position
	Vel     components.Velocity
	Radius  float32
	Entropy float32
	Tint    color.RGBA
}

var fieldEdges = Edges{X: BoundWrap, Y: BoundWrap}

// Field is a cloud of blue particles that scatter from the pointer and,
// at high composition strength, bind into a mesh. Drawn with trails.
type Field struct {
	cfg         config.FieldConfig
	spawn       *Spawner
	bounds      Bounds
	composition float32

	particles []FieldParticle
	grid      *SpatialGrid
	scratch   []components.Position
	links     []Link
}

// NewField creates a field for a width x height viewport.
func NewField(cfg config.FieldConfig, spawn *Spawner, width, height float32) *Field {
	f := &Field{
		cfg:         cfg,
		spawn:       spawn,
		composition: float32(cfg.Composition),
	}
	f.Resize(width, height)
	return f
}

// Name implements Effect.
func (f *Field) Name() string { return NameField }

// Count implements Effect.
func (f *Field) Count() int { return len(f.particles) }

// Particles returns the current particles. Callers must not modify them.
func (f *Field) Particles() []FieldParticle { return f.particles }

// Composition returns the current composition strength.
func (f *Field) Composition() float32 { return f.composition }

// SetComposition changes the composition strength.
func (f *Field) SetComposition(s float32) { f.composition = s }

// Linked reports whether the mesh is visible at the current composition.
func (f *Field) Linked() bool { return f.composition > float32(f.cfg.LinkMinimum) }

// TrailFade is the alpha of the per-frame fade clear.
func (f *Field) TrailFade() float32 { return float32(f.cfg.TrailFade) }

// LinkWidth is the stroke width of mesh lines in pixels.
func (f *Field) LinkWidth() float32 { return float32(f.cfg.LinkWidth) }

// LinkColor is the colour of mesh lines at the current composition.
func (f *Field) LinkColor() color.RGBA {
	return HSLColor(200, 0.5, 0.5, 0.1*float64(f.composition))
}

// Drift is the velocity multiplier for the current composition. Weak
// composition lets particles wander faster.
func (f *Field) Drift() float32 {
	if f.composition < 1 {
		return 2
	}
	return 0.5
}

// Resize implements Effect.
func (f *Field) Resize(width, height float32) {
	f.bounds = Bounds{Width: width, Height: height}
	f.grid = NewSpatialGrid(width, height, float32(f.cfg.LinkDistance))

	n := f.cfg.Count
	if n < 0 {
		n = 0
	}
	speed := float32(f.cfg.InitialSpeed)
	f.particles = make([]FieldParticle, n)
	for i := range f.particles {
		x, y := f.spawn.Position(width, height)
		hue := f.cfg.HueBase + f.spawn.Float64()*f.cfg.HueSpread
		f.particles[i] = FieldParticle{
			Pos:     components.Position{X: x, Y: y},
			Vel:     components.Velocity{X: f.spawn.Symmetric(speed), Y: f.spawn.Symmetric(speed)},
			Radius:  f.spawn.Uniform(1, 2.5),
			Entropy: f.spawn.Float(),
			Tint:    HSLColor(hue, 0.8, 0.7, 0.6),
		}
	}
	f.links = f.links[:0]
}

// Update implements Effect.
func (f *Field) Update(p components.PointerSnapshot) {
	drift := f.Drift()
	push := float32(f.cfg.CursorPush)

	for i := range f.particles {
		pos := &f.particles[i].Pos
		vel := f.particles[i].Vel
		pos.X += vel.X * drift
		pos.Y += vel.Y * drift

		if p.Active {
			ux, uy, d := direction(p.X, p.Y, pos.X, pos.Y)
			if force := float32(PointerForce(float64(d), f.cfg.CursorRadius, 1)); force > 0 {
				pos.X += ux * force * push
				pos.Y += uy * force * push
			}
		}

		fieldEdges.Apply(pos, &f.particles[i].Vel, f.bounds, 0)
	}

	f.links = f.links[:0]
	if !f.Linked() {
		return
	}
	f.scratch = f.scratch[:0]
	f.grid.Clear()
	for i := range f.particles {
		pos := f.particles[i].Pos
		f.scratch = append(f.scratch, pos)
		f.grid.Insert(int32(i), pos.X, pos.Y)
	}
	f.links = f.grid.LinksInto(f.links, f.scratch, float32(f.cfg.LinkDistance), 1)
	// The mesh is drawn at one opacity
	a := 0.1 * f.composition
	for i := range f.links {
		f.links[i].Alpha = a
	}
}

// Links returns the mesh lines found by the last Update.
func (f *Field) Links() []Link { return f.links }

// Speeds implements Effect.
func (f *Field) Speeds(dst []float64) []float64 {
	drift := f.Drift()
	for i := range f.particles {
		v := f.particles[i].Vel
		dst = append(dst, float64(velocityMagnitude(v.X, v.Y)*drift))
	}
	return dst
}

// Escaped implements Effect.
func (f *Field) Escaped() int {
	n := 0
	for i := range f.particles {
		pos := f.particles[i].Pos
		if pos.X < 0 || pos.X > f.bounds.Width || pos.Y < 0 || pos.Y > f.bounds.Height {
			n++
		}
	}
	return n
}
