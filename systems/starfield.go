package systems

import (
	"image/color"
	"math"

	"github.com/ojrac/opensimplex-go"

	"github.com/pthm-cable/backdrop/components"
	"github.com/pthm-cable/backdrop/config"
)

var (
	starWhite  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	starBlue   = color.RGBA{R: 199, G: 210, B: 254, A: 255}
	starPurple = color.RGBA{R: 233, G: 213, B: 255, A: 255}
)

// Star is a point of light drifting left. Faster stars read as closer.
type Star struct {
	components.Position
	components.Depth
	Size       float32
	Speed      float32
	Brightness float32
	Tint       color.RGBA
}

// Nebula is a soft coloured cloud in the middle band of the sky.
type Nebula struct {
	components.Position
	Radius    float32
	Speed     float32
	Tint      color.RGBA // Alpha carries the palette opacity
	BaseAlpha float32
	Alpha     float32 // BaseAlpha after shimmer
}

// BlackHole is a slow-drifting dark core with a squashed accretion disk.
type BlackHole struct {
	components.Position
	Radius     float32
	DiskRadius float32
	Opacity    float32
}

const (
	blackHoleDrift  = 0.01
	blackHoleMargin = 100
	shimmerRate     = 0.002
)

// Starfield is the home page sky: stars, nebula clouds and a black hole.
type Starfield struct {
	cfg     config.StarfieldConfig
	spawn   *Spawner
	bounds  Bounds
	noise   opensimplex.Noise
	palette []color.RGBA
	alphas  []float32
	tick    int64

	stars  []Star
	clouds []Nebula
	hole   *BlackHole
}

// NewStarfield creates a sky for a width x height viewport.
func NewStarfield(cfg config.StarfieldConfig, spawn *Spawner, width, height float32) *Starfield {
	s := &Starfield{
		cfg:   cfg,
		spawn: spawn,
		noise: opensimplex.New(cfg.NoiseSeed),
	}
	for _, e := range cfg.CloudPalette {
		s.palette = append(s.palette, HexColor(e.Color, e.Alpha))
		s.alphas = append(s.alphas, float32(e.Alpha))
	}
	if len(s.palette) == 0 {
		s.palette = []color.RGBA{White}
		s.alphas = []float32{0.1}
	}
	s.Resize(width, height)
	return s
}

// Name implements Effect.
func (s *Starfield) Name() string { return NameStarfield }

// Count implements Effect. Clouds and the black hole are counted alongside stars.
func (s *Starfield) Count() int {
	n := len(s.stars) + len(s.clouds)
	if s.hole != nil {
		n++
	}
	return n
}

// Stars returns the current stars. Callers must not modify them.
func (s *Starfield) Stars() []Star { return s.stars }

// Clouds returns the current nebula clouds. Callers must not modify them.
func (s *Starfield) Clouds() []Nebula { return s.clouds }

// Hole returns the black hole, or nil when disabled.
func (s *Starfield) Hole() *BlackHole { return s.hole }

// StarCount returns how many stars a viewport holds.
func (s *Starfield) StarCount(width, height float32) int {
	if width <= 0 || height <= 0 || s.cfg.PixelsPerStar <= 0 {
		return 0
	}
	return int(math.Floor(float64(width) * float64(height) / s.cfg.PixelsPerStar))
}

// Resize implements Effect.
func (s *Starfield) Resize(width, height float32) {
	s.bounds = Bounds{Width: width, Height: height}
	s.tick = 0

	s.stars = make([]Star, s.StarCount(width, height))
	for i := range s.stars {
		s.stars[i] = s.newStar()
	}

	n := s.cfg.Clouds
	if n < 0 {
		n = 0
	}
	s.clouds = make([]Nebula, n)
	for i := range s.clouds {
		s.clouds[i] = s.newCloud()
	}

	s.hole = nil
	if s.cfg.BlackHole {
		s.hole = &BlackHole{
			Position:   components.Position{X: width * 0.8, Y: height * 0.25},
			Radius:     3,
			DiskRadius: 15,
			Opacity:    0.5,
		}
	}
}

func (s *Starfield) newStar() Star {
	x, y := s.spawn.Position(s.bounds.Width, s.bounds.Height)
	depth := s.spawn.Float()

	size := s.spawn.Float()
	if !s.spawn.Chance(s.cfg.SmallChance) {
		size = s.spawn.Uniform(0, 1.5)
	}

	tint := starWhite
	switch {
	case s.spawn.Chance(0.2):
		tint = starBlue
	case s.spawn.Chance(0.1):
		tint = starPurple
	}

	return Star{
		Position:   components.Position{X: x, Y: y},
		Depth:      components.Depth{Z: depth},
		Size:       size,
		Speed:      float32(s.cfg.BaseSpeed) + depth*float32(s.cfg.DepthSpeed),
		Brightness: s.spawn.Uniform(float32(s.cfg.MinBrightness), 1),
		Tint:       tint,
	}
}

func (s *Starfield) newCloud() Nebula {
	k := s.spawn.Pick(len(s.palette))
	return Nebula{
		Position:  components.Position{X: s.spawn.Float() * s.bounds.Width, Y: s.bandY()},
		Radius:    s.spawn.Uniform(100, 300),
		Speed:     s.spawn.Uniform(0.02, 0.05),
		Tint:      s.palette[k],
		BaseAlpha: s.alphas[k],
		Alpha:     s.alphas[k],
	}
}

// bandY picks a height in the middle band of the viewport.
func (s *Starfield) bandY() float32 {
	return s.bounds.Height*0.3 + s.spawn.Float()*s.bounds.Height*0.4
}

// Update implements Effect. The sky ignores the pointer.
func (s *Starfield) Update(_ components.PointerSnapshot) {
	s.tick++
	t := float64(s.tick) * shimmerRate

	for i := range s.clouds {
		c := &s.clouds[i]
		c.X -= c.Speed
		if c.X < -c.Radius {
			c.X = s.bounds.Width + c.Radius
			c.Y = s.bandY()
		}
		n := float32(s.noise.Eval2(float64(i), t))
		c.Alpha = clamp01(c.BaseAlpha * (1 + float32(s.cfg.CloudShimmer)*n))
	}

	for i := range s.stars {
		st := &s.stars[i]
		st.X -= st.Speed
		if st.X < 0 {
			st.X = s.bounds.Width
			st.Y = s.spawn.Float() * s.bounds.Height
		}
	}

	if h := s.hole; h != nil {
		h.X -= blackHoleDrift
		if h.X < -blackHoleMargin {
			h.X = s.bounds.Width + blackHoleMargin
			h.Y = s.spawn.Float() * s.bounds.Height * 0.5
		}
	}
}

// Speeds implements Effect.
func (s *Starfield) Speeds(dst []float64) []float64 {
	for i := range s.stars {
		dst = append(dst, float64(s.stars[i].Speed))
	}
	for i := range s.clouds {
		dst = append(dst, float64(s.clouds[i].Speed))
	}
	if s.hole != nil {
		dst = append(dst, blackHoleDrift)
	}
	return dst
}

// Escaped implements Effect. Clouds and the black hole leave the viewport
// on purpose before they respawn, so only stars are counted.
func (s *Starfield) Escaped() int {
	n := 0
	for i := range s.stars {
		st := &s.stars[i]
		if st.X < 0 || st.X > s.bounds.Width || st.Y < 0 || st.Y > s.bounds.Height {
			n++
		}
	}
	return n
}
