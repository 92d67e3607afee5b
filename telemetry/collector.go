package telemetry

import (
	"math"

	"github.com/pthm-cable/backdrop/systems"
)

// eventCounts is the per-effect tally for the current window.
type eventCounts struct {
	mounts          int
	resizes         int
	surfaceFailures int
}

// Collector accumulates lifecycle events within time windows and produces
// one EffectStats per effect when a window closes.
type Collector struct {
	windowDurationSec   float64
	windowDurationTicks int32
	dt                  float32

	windowStartTick int32
	counts          map[string]*eventCounts
	speeds          []float64
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in seconds
// dt: seconds per tick (used for tick-to-time conversion)
func NewCollector(windowDurationSec float64, dt float32) *Collector {
	// dt is a float32, so 1/60 is not exact; round rather than truncate
	ticksPerWindow := int32(math.Round(windowDurationSec / float64(dt)))
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}

	return &Collector{
		windowDurationSec:   windowDurationSec,
		windowDurationTicks: ticksPerWindow,
		dt:                  dt,
		counts:              make(map[string]*eventCounts),
	}
}

func (c *Collector) countsFor(effect string) *eventCounts {
	ec, ok := c.counts[effect]
	if !ok {
		ec = &eventCounts{}
		c.counts[effect] = ec
	}
	return ec
}

// Record tallies a lifecycle event.
func (c *Collector) Record(e Event) {
	ec := c.countsFor(e.Effect)
	switch e.Type {
	case EventMount:
		ec.mounts++
	case EventResize:
		ec.resizes++
	case EventSurfaceFailed:
		ec.surfaceFailures++
	}
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Flush samples every effect, produces its EffectStats and resets the
// counters for the next window.
func (c *Collector) Flush(currentTick int32, effects []systems.Effect) []EffectStats {
	out := make([]EffectStats, 0, len(effects))
	for _, e := range effects {
		c.speeds = e.Speeds(c.speeds[:0])
		mean, p10, p50, p90, maxV := ComputeSpeedStats(c.speeds)
		ec := c.countsFor(e.Name())

		out = append(out, EffectStats{
			WindowStartTick: c.windowStartTick,
			WindowEndTick:   currentTick,
			SimTimeSec:      float64(currentTick) * float64(c.dt),
			Effect:          e.Name(),
			Count:           e.Count(),
			Escaped:         e.Escaped(),
			SpeedMean:       mean,
			SpeedP10:        p10,
			SpeedP50:        p50,
			SpeedP90:        p90,
			SpeedMax:        maxV,
			Mounts:          ec.mounts,
			Resizes:         ec.resizes,
			SurfaceFailures: ec.surfaceFailures,
		})
	}

	c.windowStartTick = currentTick
	clear(c.counts)
	return out
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() int32 {
	return c.windowDurationTicks
}
