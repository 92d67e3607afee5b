package systems

import "github.com/pthm-cable/backdrop/components"

// Effect is one animated layer. The driver calls Update once per frame; the
// renderer reads the resulting state and never writes it back.
type Effect interface {
	// Name identifies the effect in config, logs and telemetry.
	Name() string
	// Resize regenerates the entity pool for a new viewport in pixels.
	Resize(width, height float32)
	// Update advances the simulation by one tick.
	Update(p components.PointerSnapshot)
	// Count is the number of live entities.
	Count() int
	// Speeds appends the speed of every entity to dst.
	Speeds(dst []float64) []float64
	// Escaped counts entities currently outside the viewport.
	Escaped() int
}

// Effect names as used in page presets.
const (
	NameBallpit   = "ballpit"
	NameNetwork   = "network"
	NameStarfield = "starfield"
	NameSnow      = "snow"
	NameField     = "field"
	NameCloud     = "cloud"
)

// Names lists every known effect.
var Names = []string{NameStarfield, NameNetwork, NameCloud, NameBallpit, NameField, NameSnow}
