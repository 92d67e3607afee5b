package systems

import (
	"testing"

	"github.com/pthm-cable/backdrop/camera"
	"github.com/pthm-cable/backdrop/components"
)

func TestResizeRegeneratesPools(t *testing.T) {
	cfg := testConfig(t)
	newCam := func() *camera.Camera {
		return camera.New(800, 600, cfg.Camera.Distance, cfg.Camera.FOV, cfg.Camera.Near, cfg.Camera.Far)
	}

	tests := []struct {
		effect    Effect
		wantAfter int
	}{
		{NewBallpit(cfg.Ballpit, NewSpawner(1), newCam()), 100},
		{NewNetwork(cfg.Network, NewSpawner(2), 800, 600), 60},
		{NewStarfield(cfg.Starfield, NewSpawner(3), 800, 600), 200 + 20 + 1},
		{NewSnow(cfg.Snow, NewSpawner(4), 800, 600), 20},
		{NewField(cfg.Field, NewSpawner(5), 800, 600), 100},
		{NewCloud(cfg.Cloud, NewSpawner(6), newCam()), 1500},
	}

	for _, tt := range tests {
		t.Run(tt.effect.Name(), func(t *testing.T) {
			for i := 0; i < 30; i++ {
				tt.effect.Update(components.PointerSnapshot{X: 300, Y: 200, Active: true})
			}

			tt.effect.Resize(400, 300)

			if got := tt.effect.Count(); got != tt.wantAfter {
				t.Errorf("count after resize = %d, want %d", got, tt.wantAfter)
			}
			if n := tt.effect.Escaped(); n != 0 {
				t.Errorf("%d entities outside the new viewport", n)
			}
			if got := len(tt.effect.Speeds(nil)); got == 0 {
				t.Error("no speeds sampled after resize")
			}
		})
	}
}

func TestBallpitResizeFollowsCamera(t *testing.T) {
	cfg := testConfig(t)
	cam := camera.New(800, 600, cfg.Camera.Distance, cfg.Camera.FOV, cfg.Camera.Near, cfg.Camera.Far)
	b := NewBallpit(cfg.Ballpit, NewSpawner(1), cam)
	hw, hh := b.HalfExtents()

	// Same aspect ratio: same world, new pixels
	b.Resize(400, 300)
	nhw, nhh := b.HalfExtents()
	if nhw != hw || nhh != hh {
		t.Errorf("half extents changed from (%v, %v) to (%v, %v)", hw, hh, nhw, nhh)
	}

	// Wider window: wider world
	b.Resize(1200, 300)
	if whw, _ := b.HalfExtents(); whw <= hw {
		t.Errorf("wider viewport should widen the pit, got %v <= %v", whw, hw)
	}
	if n := b.Escaped(); n != 0 {
		t.Errorf("%d bodies spawned outside the walls", n)
	}
}
