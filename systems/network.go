package systems

import (
	"image/color"
	"math"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/backdrop/components"
	"github.com/pthm-cable/backdrop/config"
)

// networkEdges wraps particles on both axes.
var networkEdges = Edges{X: BoundWrap, Y: BoundWrap}

// Network is a drifting particle mesh. Nearby particles are joined by faint
// lines and the pointer pushes particles away while brightening them.
type Network struct {
	cfg       config.NetworkConfig
	spawn     *Spawner
	bounds    Bounds
	palette   []color.RGBA
	linkColor color.RGBA

	world  *ecs.World
	mapper *ecs.Map3[components.Position, components.Velocity, components.Appearance]
	filter *ecs.Filter3[components.Position, components.Velocity, components.Appearance]
	count  int

	grid    *SpatialGrid
	scratch []components.Position
	links   []Link
}

// NewNetwork creates a network filling a width x height viewport.
func NewNetwork(cfg config.NetworkConfig, spawn *Spawner, width, height float32) *Network {
	n := &Network{
		cfg:       cfg,
		spawn:     spawn,
		palette:   ParsePalette(cfg.Palette),
		linkColor: HexColor(cfg.LinkColor, 1),
	}
	n.Resize(width, height)
	return n
}

// Name implements Effect.
func (n *Network) Name() string { return NameNetwork }

// Count implements Effect.
func (n *Network) Count() int { return n.count }

// Bounds returns the viewport the particles live in.
func (n *Network) Bounds() Bounds { return n.bounds }

// LinkWidth is the stroke width of link lines in pixels.
func (n *Network) LinkWidth() float32 { return float32(n.cfg.LinkWidth) }

// LinkColor is the base colour for link lines.
func (n *Network) LinkColor() color.RGBA { return n.linkColor }

// PoolSize returns how many particles a viewport of the given width holds.
func (n *Network) PoolSize(width float32) int {
	c := int(math.Floor(float64(width) * n.cfg.Density))
	if c > n.cfg.MaxCount {
		c = n.cfg.MaxCount
	}
	if c < 0 {
		c = 0
	}
	return c
}

// Resize implements Effect. The world is rebuilt rather than emptied.
func (n *Network) Resize(width, height float32) {
	n.bounds = Bounds{Width: width, Height: height}
	n.world = ecs.NewWorld()
	n.mapper = ecs.NewMap3[components.Position, components.Velocity, components.Appearance](n.world)
	n.filter = ecs.NewFilter3[components.Position, components.Velocity, components.Appearance](n.world)
	n.grid = NewSpatialGrid(width, height, float32(n.cfg.LinkDistance))

	n.count = n.PoolSize(width)
	speed := float32(n.cfg.InitialSpeed)
	for i := 0; i < n.count; i++ {
		x, y := n.spawn.Position(width, height)
		pos := components.Position{X: x, Y: y}
		vel := components.Velocity{X: n.spawn.Symmetric(speed), Y: n.spawn.Symmetric(speed)}
		alpha := n.spawn.Uniform(float32(n.cfg.MinAlpha), float32(n.cfg.MaxAlpha))
		app := components.Appearance{
			Size:        n.spawn.Uniform(float32(n.cfg.MinSize), float32(n.cfg.MaxSize)),
			Alpha:       alpha,
			TargetAlpha: alpha,
			Tint:        n.palette[n.spawn.Pick(len(n.palette))],
		}
		n.mapper.NewEntity(&pos, &vel, &app)
	}
	n.links = n.links[:0]
}

// Update implements Effect.
func (n *Network) Update(p components.PointerSnapshot) {
	radius := n.cfg.CursorRadius
	push := float32(n.cfg.CursorPush)
	ease := float32(n.cfg.AlphaEase)

	n.scratch = n.scratch[:0]
	query := n.filter.Query()
	for query.Next() {
		pos, vel, app := query.Get()

		pos.X += vel.X
		pos.Y += vel.Y
		networkEdges.Apply(pos, vel, n.bounds, 0)

		if p.Active {
			ux, uy, d := direction(pos.X, pos.Y, p.X, p.Y)
			if f := float32(PointerForce(float64(d), radius, 1)); f > 0 {
				pos.X -= ux * f * push
				pos.Y -= uy * f * push
				app.Alpha = min(1, app.TargetAlpha+f)
			} else {
				app.Alpha += (app.TargetAlpha - app.Alpha) * ease
			}
		}

		n.scratch = append(n.scratch, *pos)
	}

	n.rebuildLinks()
}

func (n *Network) rebuildLinks() {
	n.grid.Clear()
	for i, pos := range n.scratch {
		n.grid.Insert(int32(i), pos.X, pos.Y)
	}
	n.links = n.grid.LinksInto(n.links[:0], n.scratch, float32(n.cfg.LinkDistance), float32(n.cfg.LinkAlpha))
}

// Links returns the lines found by the last Update.
func (n *Network) Links() []Link { return n.links }

// Each calls fn with every particle.
func (n *Network) Each(fn func(pos components.Position, app components.Appearance)) {
	query := n.filter.Query()
	for query.Next() {
		pos, _, app := query.Get()
		fn(*pos, *app)
	}
}

// Speeds implements Effect.
func (n *Network) Speeds(dst []float64) []float64 {
	query := n.filter.Query()
	for query.Next() {
		_, vel, _ := query.Get()
		dst = append(dst, float64(velocityMagnitude(vel.X, vel.Y)))
	}
	return dst
}

// Escaped implements Effect.
func (n *Network) Escaped() int {
	c := 0
	query := n.filter.Query()
	for query.Next() {
		pos, _, _ := query.Get()
		if pos.X < 0 || pos.X > n.bounds.Width || pos.Y < 0 || pos.Y > n.bounds.Height {
			c++
		}
	}
	return c
}
