package systems

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/backdrop/components"
)

// ResolvePair pushes two overlapping bodies apart through their velocities.
// The correction is a spring toward the touching position: a is moved by
// -delta and b by +delta, so momentum is conserved. Coincident centres are
// separated along +X. Returns delta and whether the bodies overlapped.
func ResolvePair(a, b *components.Body, spring float64) (r3.Vec, bool) {
	diff := r3.Sub(a.Pos, b.Pos)
	dist := r3.Norm(diff)
	minDist := a.Radius + b.Radius
	if dist >= minDist {
		return r3.Vec{}, false
	}

	dir := r3.Vec{X: 1}
	if dist > 0 {
		dir = r3.Scale(1/dist, diff)
	}
	target := r3.Add(b.Pos, r3.Scale(minDist, dir))
	delta := r3.Scale(spring, r3.Sub(a.Pos, target))

	a.Vel = r3.Sub(a.Vel, delta)
	b.Vel = r3.Add(b.Vel, delta)
	return delta, true
}
