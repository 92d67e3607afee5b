// Package driver runs the per-frame Update then Render cycle for a stage.
package driver

import (
	"context"
	"log/slog"
	"sync"
)

// State is the lifecycle state of a Loop.
type State uint8

const (
	Idle State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "idle"
}

// Stage is advanced and drawn once per frame.
type Stage interface {
	Update()
	Render()
}

// Surface is the drawing target a stage needs before its first frame.
type Surface interface {
	Acquire() error
	Release()
}

// Frames paces the loop. Next blocks until the next frame is due and
// reports false when no more frames will come.
type Frames interface {
	Next(ctx context.Context) bool
}

// Option configures a Loop.
type Option func(*Loop)

// WithMaxFrames stops the loop after n frames. Zero means unlimited.
func WithMaxFrames(n int) Option {
	return func(l *Loop) {
		l.maxFrames = n
	}
}

// Loop drives a Stage frame by frame. It is Idle until Run acquires the
// surface and returns to Idle when Run returns.
type Loop struct {
	stage     Stage
	surface   Surface
	frames    Frames
	maxFrames int

	mu     sync.Mutex
	state  State
	cancel context.CancelFunc
	count  int
}

// New creates an idle loop. surface may be nil for headless stages.
func New(stage Stage, surface Surface, frames Frames, opts ...Option) *Loop {
	l := &Loop{
		stage:   stage,
		surface: surface,
		frames:  frames,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Run acquires the surface and runs frames until ctx is cancelled, Stop is
// called, the frame source ends or the frame limit is hit. A surface that
// cannot be acquired leaves the loop Idle and is not an error.
func (l *Loop) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Claim the loop before acquiring so a concurrent Run sees Running.
	l.mu.Lock()
	if l.state == Running {
		l.mu.Unlock()
		return nil
	}
	l.state = Running
	l.cancel = cancel
	l.count = 0
	l.mu.Unlock()

	defer func() {
		l.mu.Lock()
		l.state = Idle
		l.cancel = nil
		l.mu.Unlock()
	}()

	if l.surface != nil {
		if err := l.surface.Acquire(); err != nil {
			slog.Debug("surface unavailable, loop not started", "error", err)
			return nil
		}
		defer l.surface.Release()
	}

	for ctx.Err() == nil {
		if !l.frames.Next(ctx) {
			break
		}
		// Stop may have landed while waiting for the frame
		if ctx.Err() != nil {
			break
		}

		l.stage.Update()
		l.stage.Render()

		l.mu.Lock()
		l.count++
		done := l.maxFrames > 0 && l.count >= l.maxFrames
		l.mu.Unlock()
		if done {
			break
		}
	}
	return nil
}

// Stop cancels the next frame. It is safe to call from the stage itself or
// from another goroutine, and is a no-op on an idle loop.
func (l *Loop) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cancel != nil {
		l.cancel()
	}
}

// State returns the current lifecycle state.
func (l *Loop) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Frames returns the number of frames completed by the current or last run.
func (l *Loop) Frames() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.count
}
