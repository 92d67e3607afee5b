package systems

import (
	"math"
	"testing"

	"github.com/pthm-cable/backdrop/components"
)

func newTestSnow(t *testing.T, width, height float32) *Snow {
	t.Helper()
	return NewSnow(testConfig(t).Snow, NewSpawner(17), width, height)
}

func TestSnowCount(t *testing.T) {
	s := newTestSnow(t, 1000, 600)
	if s.Count() != 50 {
		t.Errorf("count = %d, want 50", s.Count())
	}
}

func TestSnowDepthDrivesAppearance(t *testing.T) {
	s := newTestSnow(t, 4000, 600)
	s.Each(func(_ components.Position, d components.Depth, _ components.Spin, app components.Appearance) {
		if !(d.Z >= 0.8 && d.Z < 1) && !(d.Z >= 0 && d.Z < 0.5) {
			t.Fatalf("depth %v outside near/far bands", d.Z)
		}
		if math.Abs(float64(app.Size-(2+d.Z*15))) > 1e-5 {
			t.Fatalf("size %v does not follow depth %v", app.Size, d.Z)
		}
		if math.Abs(float64(app.Alpha-(0.4+d.Z*0.6))) > 1e-5 {
			t.Fatalf("alpha %v does not follow depth %v", app.Alpha, d.Z)
		}
	})
}

func TestSnowStaysInLifecycle(t *testing.T) {
	s := newTestSnow(t, 800, 300)
	for i := 0; i < 2000; i++ {
		s.Update(components.PointerSnapshot{})
	}
	if n := s.Escaped(); n != 0 {
		t.Errorf("%d flakes escaped the viewport margin", n)
	}
	if s.Count() != 40 {
		t.Errorf("count changed to %d", s.Count())
	}
}

func TestSnowResetsAtBottom(t *testing.T) {
	s := newTestSnow(t, 800, 600)

	// Park every flake just below the bottom margin
	query := s.filter.Query()
	for query.Next() {
		pos, _, _, _, app := query.Get()
		pos.Y = 600 + app.Size
	}

	s.Update(components.PointerSnapshot{})

	s.Each(func(p components.Position, _ components.Depth, _ components.Spin, app components.Appearance) {
		if p.Y != -app.Size {
			t.Fatalf("flake y = %v, want reset to %v", p.Y, -app.Size)
		}
	})
}

func TestSnowSpins(t *testing.T) {
	s := newTestSnow(t, 800, 600)
	before := map[float32]float32{}
	s.Each(func(p components.Position, _ components.Depth, sp components.Spin, _ components.Appearance) {
		before[sp.Rate] = sp.Angle
	})
	s.Update(components.PointerSnapshot{})
	s.Each(func(_ components.Position, _ components.Depth, sp components.Spin, _ components.Appearance) {
		if math.Abs(float64(sp.Rate)) > 0.01 {
			t.Fatalf("spin rate %v too fast", sp.Rate)
		}
		if a, ok := before[sp.Rate]; ok && math.Abs(float64(sp.Angle-(a+sp.Rate))) > 1e-5 {
			t.Fatalf("angle %v, want %v", sp.Angle, a+sp.Rate)
		}
	})
}
