package systems

import (
	"math"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/backdrop/components"
	"github.com/pthm-cable/backdrop/config"
)

// snowEdges drifts flakes across the sides and restarts them at the top.
var snowEdges = Edges{X: BoundWrap, Y: BoundReset}

// Snow is a field of falling, spinning snowflakes. Depth drives size,
// fall speed and opacity so a few large flakes pass close to the viewer.
type Snow struct {
	cfg    config.SnowConfig
	spawn  *Spawner
	bounds Bounds

	world  *ecs.World
	mapper *ecs.Map5[components.Position, components.Velocity, components.Depth, components.Spin, components.Appearance]
	filter *ecs.Filter5[components.Position, components.Velocity, components.Depth, components.Spin, components.Appearance]
	count  int
}

// NewSnow creates a snowfall for a width x height viewport.
func NewSnow(cfg config.SnowConfig, spawn *Spawner, width, height float32) *Snow {
	s := &Snow{cfg: cfg, spawn: spawn}
	s.Resize(width, height)
	return s
}

// Name implements Effect.
func (s *Snow) Name() string { return NameSnow }

// Count implements Effect.
func (s *Snow) Count() int { return s.count }

// Bounds returns the viewport the flakes fall through.
func (s *Snow) Bounds() Bounds { return s.bounds }

// PoolSize returns how many flakes a viewport of the given width holds.
func (s *Snow) PoolSize(width float32) int {
	c := int(math.Floor(float64(width) * s.cfg.Density))
	if c < 0 {
		return 0
	}
	return c
}

// Resize implements Effect.
func (s *Snow) Resize(width, height float32) {
	s.bounds = Bounds{Width: width, Height: height}
	s.world = ecs.NewWorld()
	s.mapper = ecs.NewMap5[components.Position, components.Velocity, components.Depth, components.Spin, components.Appearance](s.world)
	s.filter = ecs.NewFilter5[components.Position, components.Velocity, components.Depth, components.Spin, components.Appearance](s.world)

	s.count = s.PoolSize(width)
	for i := 0; i < s.count; i++ {
		x, y := s.spawn.Position(width, height)
		depth := s.spawn.BiasedDepth(s.cfg.NearChance)
		pos := components.Position{X: x, Y: y}
		vel := components.Velocity{
			X: s.spawn.Symmetric(float32(s.cfg.Drift)),
			Y: float32(s.cfg.BaseFall) + depth*float32(s.cfg.DepthFall),
		}
		d := components.Depth{Z: depth}
		spin := components.Spin{
			Angle: s.spawn.Uniform(0, 2*math.Pi),
			Rate:  s.spawn.Symmetric(float32(s.cfg.MaxSpin)),
		}
		app := components.Appearance{
			Size:  float32(s.cfg.BaseSize) + depth*float32(s.cfg.DepthSize),
			Alpha: 0.4 + depth*0.6,
			Tint:  White,
		}
		app.TargetAlpha = app.Alpha
		s.mapper.NewEntity(&pos, &vel, &d, &spin, &app)
	}
}

// Update implements Effect. Snow ignores the pointer.
func (s *Snow) Update(_ components.PointerSnapshot) {
	wobble := s.cfg.Wobble
	query := s.filter.Query()
	for query.Next() {
		pos, vel, _, spin, app := query.Get()

		pos.Y += vel.Y
		pos.X += vel.X + float32(math.Sin(float64(pos.Y)*0.01)*wobble)
		spin.Angle += spin.Rate

		// A flake that fell past the bottom starts again above the top
		if _, reset := snowEdges.Apply(pos, vel, s.bounds, app.Size); reset {
			pos.X = s.spawn.Float() * s.bounds.Width
		}
	}
}

// Each calls fn with every flake.
func (s *Snow) Each(fn func(pos components.Position, depth components.Depth, spin components.Spin, app components.Appearance)) {
	query := s.filter.Query()
	for query.Next() {
		pos, _, d, spin, app := query.Get()
		fn(*pos, *d, *spin, *app)
	}
}

// Speeds implements Effect.
func (s *Snow) Speeds(dst []float64) []float64 {
	query := s.filter.Query()
	for query.Next() {
		_, vel, _, _, _ := query.Get()
		dst = append(dst, float64(velocityMagnitude(vel.X, vel.Y)))
	}
	return dst
}

// Escaped implements Effect. A flake is only out once it clears the size margin.
func (s *Snow) Escaped() int {
	n := 0
	query := s.filter.Query()
	for query.Next() {
		pos, _, _, _, app := query.Get()
		m := app.Size
		if pos.X < -m || pos.X > s.bounds.Width+m || pos.Y < -m || pos.Y > s.bounds.Height+m {
			n++
		}
	}
	return n
}
