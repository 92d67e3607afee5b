package main

import (
	"context"
	"math"
	"sync"

	"github.com/pthm-cable/backdrop/config"
	"github.com/pthm-cable/backdrop/driver"
	"github.com/pthm-cable/backdrop/game"
	"github.com/pthm-cable/backdrop/systems"
	"github.com/pthm-cable/backdrop/telemetry"
)

// escapePenalty is added per body found outside the pit at the end of a run.
const escapePenalty = 10.0

// Target describes the motion a tuned pit should settle into, in world
// units per tick.
type Target struct {
	SpeedP50 float64
	SpeedP90 float64
}

// FitnessEvaluator runs headless ball pits and scores how far their settled
// speed distribution is from the target. Lower is better.
type FitnessEvaluator struct {
	params      *ParamVector
	target      Target
	ticks       int
	seeds       []int64
	baseConfig  *config.Config
	statsWindow float64

	mu        sync.Mutex
	lastStats telemetry.EffectStats
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, target Target, ticks int, seeds []int64, baseCfg *config.Config) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:      params,
		target:      target,
		ticks:       ticks,
		seeds:       seeds,
		baseConfig:  baseCfg,
		statsWindow: 2.0,
	}
}

// LastStats returns the final window of the most recent run.
func (fe *FitnessEvaluator) LastStats() telemetry.EffectStats {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastStats
}

// Evaluate scores a raw parameter vector, averaged over all seeds.
func (fe *FitnessEvaluator) Evaluate(raw []float64) float64 {
	cfg := *fe.baseConfig
	fe.params.ApplyToConfig(&cfg, raw)

	var total float64
	for _, seed := range fe.seeds {
		stats, ok := fe.run(&cfg, seed)
		if !ok {
			return math.Inf(1)
		}
		total += fe.score(stats)

		fe.mu.Lock()
		fe.lastStats = stats
		fe.mu.Unlock()
	}
	return total / float64(len(fe.seeds))
}

// score is the relative squared error of the speed percentiles plus a
// penalty for escaped bodies.
func (fe *FitnessEvaluator) score(s telemetry.EffectStats) float64 {
	rel := func(got, want float64) float64 {
		if want <= 0 {
			return got * got
		}
		d := (got - want) / want
		return d * d
	}
	return rel(s.SpeedP50, fe.target.SpeedP50) +
		rel(s.SpeedP90, fe.target.SpeedP90) +
		escapePenalty*float64(s.Escaped)
}

// run drives a single headless ball pit and returns its last stats window.
func (fe *FitnessEvaluator) run(cfg *config.Config, seed int64) (telemetry.EffectStats, bool) {
	var last telemetry.EffectStats
	got := false

	g, err := game.NewGame(cfg, game.Options{
		Effects:        []string{systems.NameBallpit},
		Seed:           seed,
		Headless:       true,
		Width:          800,
		Height:         600,
		StatsWindowSec: fe.statsWindow,
		StatsCallback: func(stats []telemetry.EffectStats) {
			last, got = stats[0], true
		},
	})
	if err != nil {
		return last, false
	}
	defer g.Unload()

	loop := driver.New(g, g, driver.NewTicker(0), driver.WithMaxFrames(fe.ticks))
	if err := loop.Run(context.Background()); err != nil {
		return last, false
	}
	return last, got
}
