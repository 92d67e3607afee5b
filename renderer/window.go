package renderer

import (
	"context"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/backdrop/config"
)

// Window is the frame source for interactive runs. Frames are paced by the
// target FPS set when the window opened.
type Window struct{}

// OpenWindow creates the raylib window described by cfg.
func OpenWindow(cfg config.ScreenConfig, title string) *Window {
	flags := uint32(rl.FlagMsaa4xHint)
	if cfg.Resizable {
		flags |= rl.FlagWindowResizable
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), title)
	rl.SetTargetFPS(int32(cfg.TargetFPS))
	return &Window{}
}

// Next reports whether another frame should run.
func (w *Window) Next(ctx context.Context) bool {
	return ctx.Err() == nil && !rl.WindowShouldClose()
}

// Size returns the current window size in pixels.
func (w *Window) Size() (width, height int32) {
	return int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
}

// Close closes the window.
func (w *Window) Close() {
	rl.CloseWindow()
}
