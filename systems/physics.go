// Package systems holds the per-tick update logic for every effect.
// Nothing here touches the renderer, so the effects run headless.
package systems

import "github.com/pthm-cable/backdrop/components"

// Bounds is the viewport entities live in, in pixels.
type Bounds struct {
	Width, Height float32
}

// BoundPolicy is what happens to an entity that leaves the viewport on one axis.
type BoundPolicy uint8

const (
	BoundWrap   BoundPolicy = iota // reappear at the opposite edge
	BoundBounce                    // clamp inside and reflect velocity
	BoundReset                     // respawn at the edge it entered through
)

func (p BoundPolicy) String() string {
	switch p {
	case BoundWrap:
		return "wrap"
	case BoundBounce:
		return "bounce"
	case BoundReset:
		return "reset"
	}
	return "unknown"
}

// Apply keeps pos inside [lo, hi] on one axis and reports whether the policy
// acted. Only BoundBounce changes the velocity.
func (p BoundPolicy) Apply(pos, vel, lo, hi float32) (float32, float32, bool) {
	switch p {
	case BoundWrap:
		pos, hit := Wrap(pos, lo, hi)
		return pos, vel, hit
	case BoundBounce:
		if pos < lo {
			return lo, -vel, true
		}
		if pos > hi {
			return hi, -vel, true
		}
	case BoundReset:
		if pos >= lo && pos <= hi {
			break
		}
		if vel >= 0 {
			return lo, vel, true
		}
		return hi, vel, true
	}
	return pos, vel, false
}

// Edges is the boundary policy of a 2D effect, per axis.
type Edges struct {
	X, Y BoundPolicy
}

// Apply keeps pos inside b grown by margin on every side.
func (e Edges) Apply(pos *components.Position, vel *components.Velocity, b Bounds, margin float32) (hitX, hitY bool) {
	pos.X, vel.X, hitX = e.X.Apply(pos.X, vel.X, -margin, b.Width+margin)
	pos.Y, vel.Y, hitY = e.Y.Apply(pos.Y, vel.Y, -margin, b.Height+margin)
	return hitX, hitY
}

// Wrap moves v to the opposite edge once it passes outside [lo, hi].
// A value inside the range is returned unchanged.
func Wrap(v, lo, hi float32) (float32, bool) {
	if v < lo {
		return hi, true
	}
	if v > hi {
		return lo, true
	}
	return v, false
}

// Bounce keeps a body of radius r inside [-half, half] on one axis.
// On contact the position is clamped to the wall and the velocity
// reflected and scaled by restitution. A body wider than the range is
// held at the centre.
func Bounce(pos, vel, r, half, restitution float64) (float64, float64, bool) {
	if r >= half {
		if pos != 0 || vel != 0 {
			return 0, -vel * restitution, true
		}
		return 0, 0, false
	}
	if pos+r > half {
		return half - r, -vel * restitution, true
	}
	if pos-r < -half {
		return -half + r, -vel * restitution, true
	}
	return pos, vel, false
}

// Damp scales a velocity component by the per-tick friction factor.
func Damp(v, friction float64) float64 {
	return v * friction
}

// TerminalVelocity is the steady fall speed of a body under per-tick gravity g
// that is then damped by friction each tick.
func TerminalVelocity(g, friction float64) float64 {
	if friction >= 1 {
		return 0
	}
	return g * friction / (1 - friction)
}
