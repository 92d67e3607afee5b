package game

import (
	"fmt"
	"image/color"
	"log/slog"
	"time"

	"github.com/pthm-cable/backdrop/camera"
	"github.com/pthm-cable/backdrop/components"
	"github.com/pthm-cable/backdrop/config"
	"github.com/pthm-cable/backdrop/driver"
	"github.com/pthm-cable/backdrop/systems"
	"github.com/pthm-cable/backdrop/telemetry"
	"github.com/pthm-cable/backdrop/ui"
)

// Options configures a Game.
type Options struct {
	Page           string
	Effects        []string // Overrides the page's effect list
	Seed           int64    // 0 = time-based
	Headless       bool
	Width, Height  float32 // Initial viewport; zero uses the screen config
	LogStats       bool
	StatsWindowSec float64 // 0 = use config
	OutputDir      string
	Controls       bool
	StatsCallback  func([]telemetry.EffectStats)
}

// Game is a page of stacked effect layers. It is both the Stage and the
// Surface of a driver.Loop: Acquire mounts the layers and each frame runs
// Update then Render.
type Game struct {
	cfg      *config.Config
	page     string
	headless bool

	seed    int64
	cam     *camera.Camera
	pointer *components.Pointer
	layers  []*Layer

	background    color.RGBA
	width, height float32
	tick          int32

	// Telemetry
	perfCollector *telemetry.PerfCollector
	perfSnapshot  telemetry.PerfStats
	collector     *telemetry.Collector
	outputManager *telemetry.OutputManager
	logStats      bool
	statsCallback func([]telemetry.EffectStats)

	// UI
	hud       *ui.HUD
	perfPanel *ui.PerfPanel
	controls  *ui.ControlsPanel
	showHUD   bool
}

var (
	_ driver.Stage   = (*Game)(nil)
	_ driver.Surface = (*Game)(nil)
)

// NewGame builds the layers for a page. Nothing is mounted until Acquire.
func NewGame(cfg *config.Config, opts Options) (*Game, error) {
	names, background, err := resolveEffects(cfg, opts.Page, opts.Effects)
	if err != nil {
		return nil, err
	}

	width, height := opts.Width, opts.Height
	if width <= 0 || height <= 0 {
		width, height = cfg.Derived.ScreenW32, cfg.Derived.ScreenH32
	}

	statsWindowSec := cfg.Telemetry.StatsWindow
	if opts.StatsWindowSec > 0 {
		statsWindowSec = opts.StatsWindowSec
	}

	g := &Game{
		cfg:           cfg,
		page:          opts.Page,
		headless:      opts.Headless,
		seed:          opts.Seed,
		pointer:       &components.Pointer{},
		background:    systems.HexColor(background, 1),
		width:         width,
		height:        height,
		perfCollector: telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		collector:     telemetry.NewCollector(statsWindowSec, float32(cfg.Derived.FrameDT)),
		logStats:      opts.LogStats,
		statsCallback: opts.StatsCallback,
	}
	g.cam = camera.New(width, height, cfg.Camera.Distance, cfg.Camera.FOV, cfg.Camera.Near, cfg.Camera.Far)

	if g.seed == 0 {
		g.seed = time.Now().UnixNano()
	}
	seen := make(map[string]int, len(names))
	for _, name := range names {
		spawn := systems.NewSpawner(layerSeed(g.seed, name, seen[name]))
		seen[name]++
		e, err := g.newEffect(name, spawn)
		if err != nil {
			return nil, err
		}
		g.layers = append(g.layers, newLayer(e, cfg.Driver.FadeIn))
	}

	if !g.headless {
		g.hud = ui.NewHUD()
		g.perfPanel = ui.NewPerfPanel(int32(width)-230, 10, 220)
		if opts.Controls {
			g.controls = ui.NewControlsPanel(10, int32(height)-220, 260)
			g.controls.SetVisible(true)
		}
	}

	if opts.OutputDir != "" {
		om, err := telemetry.NewOutputManager(opts.OutputDir)
		if err != nil {
			return nil, fmt.Errorf("creating output manager: %w", err)
		}
		if err := om.WriteConfig(cfg); err != nil {
			om.Close()
			return nil, fmt.Errorf("writing config snapshot: %w", err)
		}
		g.outputManager = om
		slog.Info("output enabled", "dir", om.Dir())
	}

	return g, nil
}

// Update handles input and resize, then advances every running layer by one tick.
func (g *Game) Update() {
	g.perfCollector.StartFrame()

	g.perfCollector.StartPhase(telemetry.PhaseInput)
	if !g.headless {
		g.handleInput()
	}

	g.perfCollector.StartPhase(telemetry.PhaseResize)
	if !g.headless {
		g.handleResize()
	}

	g.perfCollector.StartPhase(telemetry.PhaseUpdate)
	g.step()
}

// step runs a single tick on every running layer.
func (g *Game) step() {
	p := g.pointer.Snapshot()
	dt := float32(g.cfg.Derived.FrameDT)
	for _, l := range g.layers {
		if l.state != driver.Running {
			continue
		}
		l.update(p, dt)
	}
	g.tick++
}

// Render draws the layers and flushes telemetry.
func (g *Game) Render() {
	g.perfCollector.StartPhase(telemetry.PhaseRender)
	if !g.headless {
		g.draw()
		g.perfCollector.RecordPresent()
	}

	g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	g.flushTelemetry()
	g.perfCollector.EndFrame()
}

// Resize propagates a new viewport to the camera, every effect and every surface.
func (g *Game) Resize(width, height float32) {
	if width == g.width && height == g.height {
		return
	}
	g.width, g.height = width, height
	g.cam.Resize(width, height)

	for _, l := range g.layers {
		if err := l.resize(width, height); err != nil {
			slog.Debug("surface lost on resize", "effect", l.Name(), "error", err)
			l.unmount()
			g.recordEvent(telemetry.NewSurfaceFailedEvent(g.tick, l.Name()))
			continue
		}
		if l.state == driver.Running {
			g.recordEvent(telemetry.NewResizeEvent(g.tick, l.Name(), width, height))
		}
	}

	if g.perfPanel != nil {
		g.perfPanel.SetPosition(int32(width)-230, 10)
	}
}

// Pointer returns the shared pointer state. Input handlers write it; effects
// read a snapshot once per tick.
func (g *Game) Pointer() *components.Pointer { return g.pointer }

// Layers returns the layers back to front.
func (g *Game) Layers() []*Layer { return g.layers }

// Effects returns every layer's effect, back to front.
func (g *Game) Effects() []systems.Effect {
	out := make([]systems.Effect, len(g.layers))
	for i, l := range g.layers {
		out[i] = l.effect
	}
	return out
}

// Size returns the current viewport.
func (g *Game) Size() (width, height float32) { return g.width, g.height }

// Tick returns the number of completed ticks.
func (g *Game) Tick() int32 { return g.tick }

// PerfStats returns frame timing over the rolling window.
func (g *Game) PerfStats() telemetry.PerfStats { return g.perfCollector.Stats() }

// Unload unmounts every layer and closes output files.
func (g *Game) Unload() {
	g.Release()
	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}
