package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Ballpit.Count != 100 {
		t.Errorf("ballpit count = %d, want 100", cfg.Ballpit.Count)
	}
	if cfg.Ballpit.FollowCursor {
		t.Error("ballpit follow_cursor should default to false")
	}
	if len(cfg.Ballpit.Palette) != 6 {
		t.Errorf("ballpit palette has %d colours, want 6", len(cfg.Ballpit.Palette))
	}
	if cfg.Network.MaxCount != 300 {
		t.Errorf("network max_count = %d, want 300", cfg.Network.MaxCount)
	}
	if cfg.Derived.ScreenW32 != float32(cfg.Screen.Width) {
		t.Errorf("derived width %v does not match %d", cfg.Derived.ScreenW32, cfg.Screen.Width)
	}
	if _, ok := cfg.Page("home"); !ok {
		t.Error("expected a home page preset")
	}
}

func TestLoadOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "user.yaml")
	data := []byte("ballpit:\n  count: 12\nnetwork:\n  link_distance: 50\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Ballpit.Count != 12 {
		t.Errorf("ballpit count = %d, want 12", cfg.Ballpit.Count)
	}
	// Fields absent from the overlay keep their defaults
	if cfg.Ballpit.Friction != 0.9975 {
		t.Errorf("ballpit friction = %v, want default 0.9975", cfg.Ballpit.Friction)
	}
	if cfg.Network.LinkDistance != 50 {
		t.Errorf("network link distance = %v, want 50", cfg.Network.LinkDistance)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestBallpitForPage(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}

	store := cfg.BallpitFor("store")
	if store.Count != 35 || store.Gravity != 0.05 || store.Friction != 0.995 || !store.FollowCursor {
		t.Errorf("store override not applied: %+v", store)
	}
	// Fields the override leaves out come from the base section
	if store.Spring != cfg.Ballpit.Spring {
		t.Errorf("spring = %v, want base %v", store.Spring, cfg.Ballpit.Spring)
	}

	plain := cfg.BallpitFor("unknown")
	if plain.Count != cfg.Ballpit.Count {
		t.Errorf("unknown page should use base settings, got count %d", plain.Count)
	}
}

func TestWriteYAMLRoundtrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Snow.Density = 0.2

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Snow.Density != 0.2 {
		t.Errorf("snow density = %v, want 0.2", loaded.Snow.Density)
	}
}
