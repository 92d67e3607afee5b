// Package main tunes ball pit physics with CMA-ES.
package main

import (
	"github.com/pthm-cable/backdrop/config"
)

// ParamSpec defines a single tunable parameter.
type ParamSpec struct {
	Name    string  // Human-readable name
	Path    string  // Config path for logging
	Min     float64 // Lower bound
	Max     float64 // Upper bound
	Default float64 // Default value
}

// ParamVector holds the set of tunable parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the ball pit parameter set.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			{Name: "gravity", Path: "ballpit.gravity", Min: 0, Max: 0.2, Default: 0.01},
			{Name: "friction", Path: "ballpit.friction", Min: 0.9, Max: 0.9999, Default: 0.9975},
			{Name: "wall_bounce", Path: "ballpit.wall_bounce", Min: 0.1, Max: 1.0, Default: 0.95},
			{Name: "spring", Path: "ballpit.spring", Min: 0.1, Max: 1.0, Default: 0.5},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// DefaultVector returns the default parameter values as a slice.
func (pv *ParamVector) DefaultVector() []float64 {
	v := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v[i] = spec.Default
	}
	return v
}

// FromConfig reads the current values out of cfg, in Specs order.
func (pv *ParamVector) FromConfig(cfg *config.Config) []float64 {
	bp := cfg.Ballpit
	return pv.Clamp([]float64{bp.Gravity, bp.Friction, bp.WallBounce, bp.Spring})
}

// Normalize converts raw parameter values to [0,1] range.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	normalized := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		normalized[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return normalized
}

// Denormalize converts [0,1] values back to raw parameter values.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	raw := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		raw[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return raw
}

// Clamp ensures all values are within bounds.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	clamped := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		val := v[i]
		if val < spec.Min {
			val = spec.Min
		}
		if val > spec.Max {
			val = spec.Max
		}
		clamped[i] = val
	}
	return clamped
}

// ApplyToConfig writes parameter values into the base ball pit settings.
// Order must match Specs order.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, values []float64) {
	clamped := pv.Clamp(values)
	cfg.Ballpit.Gravity = clamped[0]
	cfg.Ballpit.Friction = clamped[1]
	cfg.Ballpit.WallBounce = clamped[2]
	cfg.Ballpit.Spring = clamped[3]
}
