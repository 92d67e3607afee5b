package components

import "image/color"

// Appearance holds the visual attributes of a particle.
// Alpha eases toward TargetAlpha in effects that animate opacity.
type Appearance struct {
	Size        float32
	Alpha       float32
	TargetAlpha float32
	Tint        color.RGBA
}

// Shade returns Tint with its alpha channel replaced by alpha in [0, 1].
func (a Appearance) Shade(alpha float32) color.RGBA {
	c := a.Tint
	c.A = uint8(clampUnit(alpha) * 255)
	return c
}

func clampUnit(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
