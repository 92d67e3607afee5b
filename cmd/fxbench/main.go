// Command fxbench runs every effect headless at several viewport sizes and
// reports simulation throughput.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pthm-cable/backdrop/config"
	"github.com/pthm-cable/backdrop/driver"
	"github.com/pthm-cable/backdrop/game"
	"github.com/pthm-cable/backdrop/systems"
	"github.com/pthm-cable/backdrop/telemetry"
)

// Viewport is a benchmark window size in pixels.
type Viewport struct {
	Width, Height float32
}

var defaultViewports = []Viewport{{640, 360}, {1280, 800}, {1920, 1080}, {3840, 2160}}

// BenchRow is one effect at one viewport size.
type BenchRow struct {
	Effect      string  `csv:"effect"`
	Width       int     `csv:"width"`
	Height      int     `csv:"height"`
	Count       int     `csv:"count"`
	Ticks       int32   `csv:"ticks"`
	ElapsedMS   int64   `csv:"elapsed_ms"`
	TicksPerSec float64 `csv:"ticks_per_sec"`
	AvgFrameUS  int64   `csv:"avg_frame_us"`
	MaxFrameUS  int64   `csv:"max_frame_us"`
	UpdatePct   float64 `csv:"update_pct"`
	Escaped     int     `csv:"escaped"`
}

// runBench drives one effect headless for the given number of ticks.
func runBench(ctx context.Context, cfg *config.Config, effect string, vp Viewport, ticks int, seed int64) (BenchRow, error) {
	g, err := game.NewGame(cfg, game.Options{
		Effects:  []string{effect},
		Seed:     seed,
		Headless: true,
		Width:    vp.Width,
		Height:   vp.Height,
	})
	if err != nil {
		return BenchRow{}, err
	}
	defer g.Unload()

	loop := driver.New(g, g, driver.NewTicker(0), driver.WithMaxFrames(ticks))

	start := time.Now()
	if err := loop.Run(ctx); err != nil {
		return BenchRow{}, err
	}
	elapsed := time.Since(start)

	e := g.Effects()[0]
	perf := g.PerfStats().ToCSV(g.Tick())
	row := BenchRow{
		Effect:     effect,
		Width:      int(vp.Width),
		Height:     int(vp.Height),
		Count:      e.Count(),
		Ticks:      g.Tick(),
		ElapsedMS:  elapsed.Milliseconds(),
		AvgFrameUS: perf.AvgFrameUS,
		MaxFrameUS: perf.MaxFrameUS,
		UpdatePct:  perf.UpdatePct,
		Escaped:    e.Escaped(),
	}
	if s := elapsed.Seconds(); s > 0 {
		row.TicksPerSec = float64(row.Ticks) / s
	}
	return row, nil
}

// parseViewports parses "WxH,WxH".
func parseViewports(s string) ([]Viewport, error) {
	if s == "" {
		return defaultViewports, nil
	}
	var out []Viewport
	for _, part := range strings.Split(s, ",") {
		w, h, ok := strings.Cut(strings.TrimSpace(part), "x")
		if !ok {
			return nil, fmt.Errorf("viewport %q: want WxH", part)
		}
		wi, err := strconv.Atoi(w)
		if err != nil {
			return nil, fmt.Errorf("viewport %q: %w", part, err)
		}
		hi, err := strconv.Atoi(h)
		if err != nil {
			return nil, fmt.Errorf("viewport %q: %w", part, err)
		}
		if wi <= 0 || hi <= 0 {
			return nil, fmt.Errorf("viewport %q: size must be positive", part)
		}
		out = append(out, Viewport{float32(wi), float32(hi)})
	}
	return out, nil
}

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	ticks := flag.Int("ticks", 600, "Ticks per run")
	seed := flag.Int64("seed", 1, "RNG seed")
	sizes := flag.String("sizes", "", "Comma-separated viewports, e.g. 800x600,1920x1080 (empty = defaults)")
	effects := flag.String("effects", "", "Comma-separated effects (empty = all)")
	outputDir := flag.String("output-dir", "", "Directory for bench.csv (empty = log only)")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	viewports, err := parseViewports(*sizes)
	if err != nil {
		slog.Error("bad -sizes", "error", err)
		os.Exit(1)
	}

	names := systems.Names
	if *effects != "" {
		names = strings.Split(*effects, ",")
	}

	var out *telemetry.CSVFile
	if *outputDir != "" {
		if err := os.MkdirAll(*outputDir, 0755); err != nil {
			slog.Error("failed to create output directory", "error", err)
			os.Exit(1)
		}
		out, err = telemetry.CreateCSV(filepath.Join(*outputDir, "bench.csv"))
		if err != nil {
			slog.Error("failed to create bench.csv", "error", err)
			os.Exit(1)
		}
		defer out.Close()
	}

	ctx := context.Background()
	for _, name := range names {
		for _, vp := range viewports {
			row, err := runBench(ctx, cfg, name, vp, *ticks, *seed)
			if err != nil {
				slog.Error("bench failed", "effect", name, "error", err)
				os.Exit(1)
			}
			slog.Info("bench",
				"effect", row.Effect,
				"width", row.Width,
				"height", row.Height,
				"count", row.Count,
				"ticks_per_sec", row.TicksPerSec,
				"avg_frame_us", row.AvgFrameUS,
				"escaped", row.Escaped,
			)
			if out == nil {
				continue
			}
			if err := out.Append([]BenchRow{row}); err != nil {
				slog.Error("failed to write bench.csv", "error", err)
				os.Exit(1)
			}
		}
	}
}
