// Package config provides configuration loading and access for the effects.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all effect configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Driver    DriverConfig    `yaml:"driver"`
	Camera    CameraConfig    `yaml:"camera"`
	Ballpit   BallpitConfig   `yaml:"ballpit"`
	Network   NetworkConfig   `yaml:"network"`
	Starfield StarfieldConfig `yaml:"starfield"`
	Snow      SnowConfig      `yaml:"snow"`
	Field     FieldConfig     `yaml:"field"`
	Cloud     CloudConfig     `yaml:"cloud"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Pages     []PageConfig    `yaml:"pages"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int  `yaml:"width"`
	Height    int  `yaml:"height"`
	TargetFPS int  `yaml:"target_fps"`
	Resizable bool `yaml:"resizable"`
}

// DriverConfig holds frame loop settings.
type DriverConfig struct {
	HeadlessFPS int     `yaml:"headless_fps"` // 0 = run frames back to back
	FadeIn      float64 `yaml:"fade_in"`      // Seconds for a layer to fade in after mount
}

// CameraConfig holds the perspective camera used by the 3D effects.
type CameraConfig struct {
	Distance float64 `yaml:"distance"` // Camera z position, looking at the origin
	FOV      float64 `yaml:"fov"`      // Vertical field of view in degrees
	Near     float64 `yaml:"near"`
	Far      float64 `yaml:"far"`
}

// BallpitConfig holds the ball pit physics parameters.
type BallpitConfig struct {
	Count        int      `yaml:"count"`
	Gravity      float64  `yaml:"gravity"`       // Acceleration magnitude (scaled by GravityScale per tick)
	GravityScale float64  `yaml:"gravity_scale"` // Per-tick multiplier applied to gravity
	Friction     float64  `yaml:"friction"`      // Velocity damping per tick
	WallBounce   float64  `yaml:"wall_bounce"`   // Restitution on wall contact
	FollowCursor bool     `yaml:"follow_cursor"`
	MinRadius    float64  `yaml:"min_radius"`
	MaxRadius    float64  `yaml:"max_radius"`
	InitialSpeed float64  `yaml:"initial_speed"` // Max abs initial velocity per axis
	CursorRadius float64  `yaml:"cursor_radius"` // Pointer influence radius in world units
	CursorForce  float64  `yaml:"cursor_force"`  // Force per world unit of penetration into the cursor radius
	Spring       float64  `yaml:"spring"`        // Fraction of penetration fed back as velocity
	Palette      []string `yaml:"palette"`
}

// NetworkConfig holds the mouse-reactive particle network parameters.
type NetworkConfig struct {
	Density      float64  `yaml:"density"`   // Particles per pixel of viewport width
	MaxCount     int      `yaml:"max_count"` // Cap on pool size
	InitialSpeed float64  `yaml:"initial_speed"`
	MinSize      float64  `yaml:"min_size"`
	MaxSize      float64  `yaml:"max_size"`
	MinAlpha     float64  `yaml:"min_alpha"`
	MaxAlpha     float64  `yaml:"max_alpha"`
	CursorRadius float64  `yaml:"cursor_radius"`
	CursorPush   float64  `yaml:"cursor_push"` // Displacement per tick at full force
	AlphaEase    float64  `yaml:"alpha_ease"`  // Fraction of alpha gap closed per tick
	LinkDistance float64  `yaml:"link_distance"`
	LinkWidth    float64  `yaml:"link_width"` // Line width in pixels
	LinkAlpha    float64  `yaml:"link_alpha"` // Line opacity at zero distance
	LinkColor    string   `yaml:"link_color"`
	Palette      []string `yaml:"palette"`
}

// StarfieldConfig holds the starfield, nebula and black hole parameters.
type StarfieldConfig struct {
	PixelsPerStar float64        `yaml:"pixels_per_star"` // Viewport area per star
	BaseSpeed     float64        `yaml:"base_speed"`
	DepthSpeed    float64        `yaml:"depth_speed"` // Extra speed at depth 1
	SmallChance   float64        `yaml:"small_chance"`
	MinBrightness float64        `yaml:"min_brightness"`
	Clouds        int            `yaml:"clouds"`
	CloudShimmer  float64        `yaml:"cloud_shimmer"` // Fraction of base alpha modulated by noise
	CloudPalette  []PaletteEntry `yaml:"cloud_palette"`
	BlackHole     bool           `yaml:"black_hole"`
	NoiseSeed     int64          `yaml:"noise_seed"`
}

// PaletteEntry is a colour with its own opacity.
type PaletteEntry struct {
	Color string  `yaml:"color"`
	Alpha float64 `yaml:"alpha"`
}

// SnowConfig holds the snowfall parameters.
type SnowConfig struct {
	Density    float64 `yaml:"density"`     // Flakes per pixel of viewport width
	NearChance float64 `yaml:"near_chance"` // Chance a flake is close to the viewer
	BaseSize   float64 `yaml:"base_size"`
	DepthSize  float64 `yaml:"depth_size"`
	BaseFall   float64 `yaml:"base_fall"`
	DepthFall  float64 `yaml:"depth_fall"`
	Drift      float64 `yaml:"drift"`  // Max abs lateral speed
	Wobble     float64 `yaml:"wobble"` // Sinusoidal lateral amplitude
	MaxSpin    float64 `yaml:"max_spin"`
}

// FieldConfig holds the information-field parameters.
type FieldConfig struct {
	Count        int     `yaml:"count"`
	Composition  float64 `yaml:"composition"` // Composition strength; links appear above LinkMinimum
	InitialSpeed float64 `yaml:"initial_speed"`
	CursorRadius float64 `yaml:"cursor_radius"`
	CursorPush   float64 `yaml:"cursor_push"`
	LinkDistance float64 `yaml:"link_distance"`
	LinkWidth    float64 `yaml:"link_width"`   // Line width in pixels
	LinkMinimum  float64 `yaml:"link_minimum"` // Composition needed before links are drawn
	TrailFade    float64 `yaml:"trail_fade"`   // Alpha of the per-frame fade clear
	HueBase      float64 `yaml:"hue_base"`
	HueSpread    float64 `yaml:"hue_spread"`
}

// CloudConfig holds the rotating store point cloud parameters.
type CloudConfig struct {
	Count   int     `yaml:"count"`
	Extent  float64 `yaml:"extent"` // Edge length of the cube the points fill
	SpinX   float64 `yaml:"spin_x"` // Radians per tick
	SpinY   float64 `yaml:"spin_y"`
	Size    float64 `yaml:"size"`
	Opacity float64 `yaml:"opacity"`
	Color   string  `yaml:"color"`
	Fog     float64 `yaml:"fog"` // Exponential fog density
	FOV     float64 `yaml:"fov"` // Vertical field of view of the cloud's own camera, degrees
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"` // Seconds between logged windows
	PerfCollectorWindow int     `yaml:"perf_collector_window"`
}

// PageConfig names a set of effects shown together.
type PageConfig struct {
	Name       string         `yaml:"name"`
	Effects    []string       `yaml:"effects"`
	Background string         `yaml:"background"`        // Clear colour behind the layers
	Ballpit    *BallpitConfig `yaml:"ballpit,omitempty"` // Optional per-page override
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenW32 float32        // Screen.Width as float32
	ScreenH32 float32        // Screen.Height as float32
	FrameDT   float64        // Seconds per frame at TargetFPS
	PageIndex map[string]int // name -> index into Pages
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.computeDerived()

	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)
	if c.Screen.TargetFPS > 0 {
		c.Derived.FrameDT = 1.0 / float64(c.Screen.TargetFPS)
	} else {
		c.Derived.FrameDT = 1.0 / 60.0
	}

	c.Derived.PageIndex = make(map[string]int, len(c.Pages))
	for i, p := range c.Pages {
		c.Derived.PageIndex[p.Name] = i
	}
}

// Page returns the named page preset.
func (c *Config) Page(name string) (PageConfig, bool) {
	i, ok := c.Derived.PageIndex[name]
	if !ok {
		return PageConfig{}, false
	}
	return c.Pages[i], true
}

// BallpitFor returns the ball pit settings for a page, applying the page override if present.
func (c *Config) BallpitFor(page string) BallpitConfig {
	bp := c.Ballpit
	p, ok := c.Page(page)
	if !ok || p.Ballpit == nil {
		return bp
	}
	o := p.Ballpit
	if o.Count != 0 {
		bp.Count = o.Count
	}
	if o.Gravity != 0 {
		bp.Gravity = o.Gravity
	}
	if o.Friction != 0 {
		bp.Friction = o.Friction
	}
	if o.WallBounce != 0 {
		bp.WallBounce = o.WallBounce
	}
	// follow_cursor is a plain bool; a page override always states it
	bp.FollowCursor = o.FollowCursor
	return bp
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
