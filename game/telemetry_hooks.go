package game

import (
	"log/slog"

	"github.com/pthm-cable/backdrop/telemetry"
)

// recordEvent logs a layer lifecycle event and counts it in the current window.
func (g *Game) recordEvent(e telemetry.Event) {
	g.collector.Record(e)

	switch e.Type {
	case telemetry.EventSurfaceFailed:
		// Decorative layers fail quietly
		slog.Debug("layer", "event", e.Type.String(), "effect", e.Effect, "tick", e.Tick)
	case telemetry.EventUnmount:
		slog.Info("layer", "event", e.Type.String(), "effect", e.Effect, "tick", e.Tick)
	default:
		slog.Info("layer",
			"event", e.Type.String(),
			"effect", e.Effect,
			"tick", e.Tick,
			"width", e.Width,
			"height", e.Height,
		)
	}
}

// flushTelemetry writes a stats window once it has closed.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush(g.tick) {
		return
	}

	stats := g.collector.Flush(g.tick, g.Effects())
	perfStats := g.perfCollector.Stats()

	if g.statsCallback != nil {
		g.statsCallback(stats)
	}

	if g.logStats {
		for _, s := range stats {
			s.LogStats()
		}
		perfStats.LogStats()
	}

	if g.outputManager != nil {
		if err := g.outputManager.WriteEffects(stats); err != nil {
			slog.Error("failed to write effect stats", "error", err)
		}
		if err := g.outputManager.WritePerf(perfStats, g.tick); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	}
}
