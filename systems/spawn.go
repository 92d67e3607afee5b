package systems

import (
	"math/rand"
	"time"
)

// Spawner draws the random initial state for entity pools.
// Each effect owns its own Spawner so pools are reproducible per seed.
type Spawner struct {
	rng *rand.Rand
}

// NewSpawner creates a spawner seeded with seed. Seed 0 picks a time-based seed.
func NewSpawner(seed int64) *Spawner {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Spawner{rng: rand.New(rand.NewSource(seed))}
}

// Float returns a value in [0, 1).
func (s *Spawner) Float() float32 {
	return s.rng.Float32()
}

// Float64 returns a value in [0, 1).
func (s *Spawner) Float64() float64 {
	return s.rng.Float64()
}

// Uniform returns a value in [lo, hi).
func (s *Spawner) Uniform(lo, hi float32) float32 {
	return lo + s.rng.Float32()*(hi-lo)
}

// Uniform64 returns a value in [lo, hi).
func (s *Spawner) Uniform64(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

// Symmetric returns a value in [-mag, mag).
func (s *Spawner) Symmetric(mag float32) float32 {
	return (s.rng.Float32() - 0.5) * 2 * mag
}

// Symmetric64 returns a value in [-mag, mag).
func (s *Spawner) Symmetric64(mag float64) float64 {
	return (s.rng.Float64() - 0.5) * 2 * mag
}

// Position returns a point uniformly inside a width x height viewport.
// A non-positive dimension collapses that coordinate onto 0.
func (s *Spawner) Position(width, height float32) (x, y float32) {
	x = s.rng.Float32() * max(width, 0)
	y = s.rng.Float32() * max(height, 0)
	return x, y
}

// Chance reports true with probability p.
func (s *Spawner) Chance(p float64) bool {
	return s.rng.Float64() < p
}

// BiasedDepth returns a depth in [0.8, 1) with probability nearChance,
// otherwise in [0, 0.5). Most entities end up far from the viewer.
func (s *Spawner) BiasedDepth(nearChance float64) float32 {
	if s.Chance(nearChance) {
		return s.Uniform(0.8, 1)
	}
	return s.Uniform(0, 0.5)
}

// Pick returns an index in [0, n). An empty choice returns 0.
func (s *Spawner) Pick(n int) int {
	if n <= 0 {
		return 0
	}
	return s.rng.Intn(n)
}
