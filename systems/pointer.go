package systems

// PointerForce returns the push magnitude for an entity dist away from the
// pointer. It is zero at or beyond radius and rises linearly to scale at the
// pointer itself.
func PointerForce(dist, radius, scale float64) float64 {
	if radius <= 0 || dist < 0 || dist >= radius {
		return 0
	}
	return (radius - dist) / radius * scale
}
