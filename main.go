package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/pthm-cable/backdrop/config"
	"github.com/pthm-cable/backdrop/driver"
	"github.com/pthm-cable/backdrop/game"
	"github.com/pthm-cable/backdrop/renderer"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	page := flag.String("page", "home", "Page to show (home, store, research, winter, all)")
	effects := flag.String("effect", "", "Comma-separated effects to show instead of the page's list")
	headless := flag.Bool("headless", false, "Run without graphics")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	statsWindow := flag.Float64("stats-window", 0, "Stats window size in seconds (0 = use config)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	controls := flag.Bool("controls", false, "Show the parameter controls panel (F1 toggles)")
	debug := flag.Bool("debug", false, "Log debug events such as surface failures")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	opts := game.Options{
		Page:           *page,
		Effects:        splitList(*effects),
		Seed:           rngSeed,
		Headless:       *headless,
		LogStats:       *logStats,
		StatsWindowSec: *statsWindow,
		OutputDir:      *outputDir,
		Controls:       *controls,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var frames driver.Frames
	if *headless {
		ticker := driver.NewTicker(cfg.Driver.HeadlessFPS)
		defer ticker.Stop()
		frames = ticker
	} else {
		win := renderer.OpenWindow(cfg.Screen, "Backdrop")
		defer win.Close()
		frames = win
	}

	g, err := game.NewGame(cfg, opts)
	if err != nil {
		slog.Error("failed to create game", "error", err)
		os.Exit(1)
	}
	defer g.Unload()

	var names []string
	for _, l := range g.Layers() {
		names = append(names, l.Name())
	}
	slog.Info("starting",
		"page", *page,
		"effects", names,
		"seed", rngSeed,
		"headless", *headless,
		"max_ticks", *maxTicks,
	)

	loop := driver.New(g, g, frames, driver.WithMaxFrames(*maxTicks))
	if err := loop.Run(ctx); err != nil {
		slog.Error("driver stopped", "error", err)
		return
	}
	slog.Info("stopped", "tick", g.Tick(), "frames", loop.Frames())
}

// splitList splits a comma-separated flag value, dropping empty entries.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
