package main

import (
	"math"
	"testing"

	"github.com/pthm-cable/backdrop/config"
	"github.com/pthm-cable/backdrop/telemetry"
)

func TestParamVectorRoundTrip(t *testing.T) {
	pv := NewParamVector()
	raw := pv.DefaultVector()
	back := pv.Denormalize(pv.Normalize(raw))
	for i := range raw {
		if math.Abs(back[i]-raw[i]) > 1e-12 {
			t.Errorf("%s: %v -> %v", pv.Specs[i].Name, raw[i], back[i])
		}
	}
}

func TestParamVectorClamp(t *testing.T) {
	pv := NewParamVector()
	got := pv.Clamp([]float64{-1, 2, 0.5, 5})
	want := []float64{0, 0.9999, 0.5, 1.0}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("%s = %v, want %v", pv.Specs[i].Name, got[i], want[i])
		}
	}
}

func TestApplyToConfig(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	pv := NewParamVector()
	pv.ApplyToConfig(cfg, []float64{0.05, 0.99, 0.5, 0.3})

	if cfg.Ballpit.Gravity != 0.05 || cfg.Ballpit.Friction != 0.99 ||
		cfg.Ballpit.WallBounce != 0.5 || cfg.Ballpit.Spring != 0.3 {
		t.Errorf("unexpected ballpit config %+v", cfg.Ballpit)
	}

	got := pv.FromConfig(cfg)
	if got[0] != 0.05 || got[3] != 0.3 {
		t.Errorf("FromConfig = %v", got)
	}
}

func TestScore(t *testing.T) {
	fe := &FitnessEvaluator{target: Target{SpeedP50: 0.1, SpeedP90: 0.2}}

	if s := fe.score(telemetry.EffectStats{SpeedP50: 0.1, SpeedP90: 0.2}); s != 0 {
		t.Errorf("on-target score = %v, want 0", s)
	}
	off := fe.score(telemetry.EffectStats{SpeedP50: 0.2, SpeedP90: 0.2})
	if math.Abs(off-1) > 1e-9 {
		t.Errorf("double median score = %v, want 1", off)
	}
	escaped := fe.score(telemetry.EffectStats{SpeedP50: 0.1, SpeedP90: 0.2, Escaped: 1})
	if escaped != escapePenalty {
		t.Errorf("escaped score = %v, want %v", escaped, escapePenalty)
	}
}

func TestEvaluateRunsHeadless(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	pv := NewParamVector()
	fe := NewFitnessEvaluator(pv, Target{SpeedP50: 0.02, SpeedP90: 0.08}, 150, []int64{1}, cfg)

	f := fe.Evaluate(pv.DefaultVector())
	if math.IsInf(f, 0) || math.IsNaN(f) {
		t.Fatalf("fitness = %v", f)
	}
	if last := fe.LastStats(); last.Count != cfg.Ballpit.Count {
		t.Errorf("last stats count = %d, want %d", last.Count, cfg.Ballpit.Count)
	}
	// The evaluator works on a copy of the base config
	if cfg.Ballpit.Gravity != 0.01 {
		t.Errorf("base config modified: gravity %v", cfg.Ballpit.Gravity)
	}
}
