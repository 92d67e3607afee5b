package driver

import (
	"context"
	"time"
)

// Ticker paces frames on wall time for runs without a display.
type Ticker struct {
	t *time.Ticker
}

// NewTicker creates a frame source at fps frames per second. fps <= 0 runs
// frames back to back.
func NewTicker(fps int) *Ticker {
	if fps <= 0 {
		return &Ticker{}
	}
	return &Ticker{t: time.NewTicker(time.Second / time.Duration(fps))}
}

// Next waits for the next tick.
func (t *Ticker) Next(ctx context.Context) bool {
	if t.t == nil {
		return ctx.Err() == nil
	}
	select {
	case <-ctx.Done():
		return false
	case <-t.t.C:
		return true
	}
}

// Stop releases the underlying timer.
func (t *Ticker) Stop() {
	if t.t != nil {
		t.t.Stop()
	}
}
