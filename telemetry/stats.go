package telemetry

import (
	"log/slog"
	"sort"
)

// EffectStats holds one effect's state at the end of a stats window.
type EffectStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`
	Effect          string  `csv:"effect"`

	// Pool at window end
	Count   int `csv:"count"`
	Escaped int `csv:"escaped"`

	// Speed distribution (sampled at window end)
	SpeedMean float64 `csv:"speed_mean"`
	SpeedP10  float64 `csv:"speed_p10"`
	SpeedP50  float64 `csv:"speed_p50"`
	SpeedP90  float64 `csv:"speed_p90"`
	SpeedMax  float64 `csv:"speed_max"`

	// Lifecycle events during the window
	Mounts          int `csv:"mounts"`
	Resizes         int `csv:"resizes"`
	SurfaceFailures int `csv:"surface_failures"`
}

// Percentile calculates the p-th percentile of a sorted slice.
// p should be in [0, 1]. Returns 0 if slice is empty.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	// Linear interpolation
	idx := p * float64(n-1)
	lo := int(idx)
	hi := lo + 1
	if hi >= n {
		return sorted[n-1]
	}

	frac := idx - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// ComputeSpeedStats calculates mean, percentiles and maximum. The input is
// sorted in place.
func ComputeSpeedStats(values []float64) (mean, p10, p50, p90, maxV float64) {
	n := len(values)
	if n == 0 {
		return 0, 0, 0, 0, 0
	}

	var sum float64
	for _, v := range values {
		sum += v
	}
	mean = sum / float64(n)

	sort.Float64s(values)
	p10 = Percentile(values, 0.10)
	p50 = Percentile(values, 0.50)
	p90 = Percentile(values, 0.90)
	maxV = values[n-1]

	return mean, p10, p50, p90, maxV
}

// LogValue implements slog.LogValuer for structured logging.
func (s EffectStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.String("effect", s.Effect),
		slog.Int("count", s.Count),
		slog.Int("escaped", s.Escaped),
		slog.Float64("speed_mean", s.SpeedMean),
		slog.Float64("speed_p50", s.SpeedP50),
		slog.Float64("speed_max", s.SpeedMax),
		slog.Int("mounts", s.Mounts),
		slog.Int("resizes", s.Resizes),
		slog.Int("surface_failures", s.SurfaceFailures),
	)
}

// LogStats logs the window stats using slog.
func (s EffectStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndTick,
		"sim_time", s.SimTimeSec,
		"effect", s.Effect,
		"count", s.Count,
		"escaped", s.Escaped,
		"speed_mean", s.SpeedMean,
		"speed_p10", s.SpeedP10,
		"speed_p50", s.SpeedP50,
		"speed_p90", s.SpeedP90,
		"speed_max", s.SpeedMax,
		"mounts", s.Mounts,
		"resizes", s.Resizes,
		"surface_failures", s.SurfaceFailures,
	)
}
