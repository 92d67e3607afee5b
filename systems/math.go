package systems

import "math"

func clamp01(v float32) float32 {
	return float32(math.Min(1, math.Max(0, float64(v))))
}

func distanceSq(x1, y1, x2, y2 float32) float32 {
	dx, dy := x1-x2, y1-y2
	return dx*dx + dy*dy
}

func distance(x1, y1, x2, y2 float32) float32 {
	return velocityMagnitude(x1-x2, y1-y2)
}

func velocityMagnitude(vx, vy float32) float32 {
	return float32(math.Hypot(float64(vx), float64(vy)))
}

// direction returns the unit vector from (x1,y1) towards (x2,y2) and the
// distance between them. Coincident points report +X.
func direction(x1, y1, x2, y2 float32) (ux, uy, dist float32) {
	dx, dy := x2-x1, y2-y1
	dist = velocityMagnitude(dx, dy)
	if dist == 0 {
		return 1, 0, 0
	}
	return dx / dist, dy / dist, dist
}
