package driver

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

// recorder logs every call in order.
type recorder struct {
	calls    []string
	onUpdate func()
}

func (r *recorder) Update() {
	r.calls = append(r.calls, "update")
	if r.onUpdate != nil {
		r.onUpdate()
	}
}

func (r *recorder) Render() { r.calls = append(r.calls, "render") }

type fakeSurface struct {
	err      error
	acquired int
	released int
}

func (s *fakeSurface) Acquire() error {
	s.acquired++
	return s.err
}

func (s *fakeSurface) Release() { s.released++ }

// countFrames yields n frames then ends.
type countFrames struct{ n int }

func (f *countFrames) Next(ctx context.Context) bool {
	if ctx.Err() != nil || f.n == 0 {
		return false
	}
	f.n--
	return true
}

func TestLoop_UpdateBeforeRender(t *testing.T) {
	r := &recorder{}
	s := &fakeSurface{}
	l := New(r, s, &countFrames{n: 3})

	if err := l.Run(context.Background()); err != nil {
		t.Fatal(err)
	}

	want := []string{"update", "render", "update", "render", "update", "render"}
	if len(r.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", r.calls, want)
	}
	for i := range want {
		if r.calls[i] != want[i] {
			t.Fatalf("call %d = %s, want %s", i, r.calls[i], want[i])
		}
	}
	if l.Frames() != 3 {
		t.Errorf("Frames = %d, want 3", l.Frames())
	}
	if s.acquired != 1 || s.released != 1 {
		t.Errorf("surface acquired %d released %d, want 1/1", s.acquired, s.released)
	}
	if l.State() != Idle {
		t.Errorf("state after run = %v, want idle", l.State())
	}
}

func TestLoop_SurfaceFailureStaysIdle(t *testing.T) {
	r := &recorder{}
	s := &fakeSurface{err: errors.New("no context")}
	l := New(r, s, &countFrames{n: 5})

	if err := l.Run(context.Background()); err != nil {
		t.Fatalf("surface failure should be silent, got %v", err)
	}
	if len(r.calls) != 0 {
		t.Errorf("stage ran %d calls without a surface", len(r.calls))
	}
	if s.released != 0 {
		t.Error("failed surface should not be released")
	}
	if l.State() != Idle {
		t.Errorf("state = %v, want idle", l.State())
	}
}

// gatedSurface blocks Acquire until gate is closed.
type gatedSurface struct {
	entered  chan struct{}
	gate     chan struct{}
	acquired atomic.Int32
}

func (s *gatedSurface) Acquire() error {
	s.acquired.Add(1)
	s.entered <- struct{}{}
	<-s.gate
	return nil
}

func (s *gatedSurface) Release() {}

func TestLoop_ConcurrentRunStartsOnce(t *testing.T) {
	s := &gatedSurface{entered: make(chan struct{}, 2), gate: make(chan struct{})}
	l := New(&recorder{}, s, &countFrames{n: 2})

	first := make(chan error, 1)
	go func() { first <- l.Run(context.Background()) }()
	<-s.entered

	if l.State() != Running {
		t.Fatalf("state while acquiring = %v, want running", l.State())
	}

	second := make(chan error, 1)
	go func() { second <- l.Run(context.Background()) }()
	select {
	case err := <-second:
		if err != nil {
			t.Fatalf("second Run: %v", err)
		}
	case <-time.After(time.Second):
		close(s.gate)
		t.Fatal("second Run did not return while the first was running")
	}

	close(s.gate)
	if err := <-first; err != nil {
		t.Fatal(err)
	}
	if n := s.acquired.Load(); n != 1 {
		t.Errorf("surface acquired %d times, want 1", n)
	}
	if l.Frames() != 2 {
		t.Errorf("Frames = %d, want 2", l.Frames())
	}
}

func TestLoop_RunAfterSurfaceFailure(t *testing.T) {
	r := &recorder{}
	s := &fakeSurface{err: errors.New("no context")}
	l := New(r, s, &countFrames{n: 1})
	l.Run(context.Background())

	s.err = nil
	l.Run(context.Background())
	if l.Frames() != 1 {
		t.Errorf("Frames = %d, want 1 once the surface is back", l.Frames())
	}
	if s.acquired != 2 {
		t.Errorf("acquired %d times, want 2", s.acquired)
	}
}

func TestLoop_NilSurface(t *testing.T) {
	r := &recorder{}
	l := New(r, nil, &countFrames{n: 2})
	l.Run(context.Background())
	if l.Frames() != 2 {
		t.Errorf("Frames = %d, want 2", l.Frames())
	}
}

func TestLoop_StopCancelsNextFrame(t *testing.T) {
	r := &recorder{}
	l := New(r, nil, &countFrames{n: 100})
	r.onUpdate = func() {
		if l.State() != Running {
			t.Error("state should be running during update")
		}
		if len(r.calls) == 3 { // second update
			l.Stop()
		}
	}

	l.Run(context.Background())
	if l.Frames() != 2 {
		t.Errorf("Frames = %d, want 2 (current frame finishes, next is cancelled)", l.Frames())
	}
	if r.calls[len(r.calls)-1] != "render" {
		t.Error("frame in progress should still render")
	}
}

func TestLoop_ContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	r := &recorder{}
	r.onUpdate = cancel
	l := New(r, nil, &countFrames{n: 100})

	l.Run(ctx)
	if l.Frames() != 1 {
		t.Errorf("Frames = %d, want 1", l.Frames())
	}
}

func TestLoop_MaxFrames(t *testing.T) {
	r := &recorder{}
	l := New(r, nil, NewTicker(0), WithMaxFrames(7))
	l.Run(context.Background())
	if l.Frames() != 7 {
		t.Errorf("Frames = %d, want 7", l.Frames())
	}
}

func TestLoop_StopWhenIdle(t *testing.T) {
	l := New(&recorder{}, nil, &countFrames{})
	l.Stop()
	if l.State() != Idle {
		t.Error("stop on idle loop should leave it idle")
	}
}

func TestTicker_Paced(t *testing.T) {
	tk := NewTicker(100)
	defer tk.Stop()

	start := time.Now()
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		if !tk.Next(ctx) {
			t.Fatal("ticker ended early")
		}
	}
	if time.Since(start) < 25*time.Millisecond {
		t.Errorf("3 frames at 100fps took %v, want >= 25ms", time.Since(start))
	}
}

func TestTicker_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	paced := NewTicker(10)
	defer paced.Stop()
	if paced.Next(ctx) {
		t.Error("paced ticker should end on cancelled context")
	}
	if NewTicker(0).Next(ctx) {
		t.Error("unpaced ticker should end on cancelled context")
	}
}
