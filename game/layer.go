package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/pthm-cable/backdrop/components"
	"github.com/pthm-cable/backdrop/driver"
	"github.com/pthm-cable/backdrop/renderer"
	"github.com/pthm-cable/backdrop/systems"
)

// sizer is implemented by renderers that cover the whole viewport themselves.
type sizer interface {
	SetSize(width, height int32)
}

// Layer is one mounted effect: its entity pool, the renderer that reads it
// and the surface it draws into. A layer that could not get a surface stays
// Idle and is never updated or drawn.
type Layer struct {
	effect   systems.Effect
	renderer renderer.Renderer
	surface  *renderer.Surface
	state    driver.State

	fadeIn  float32
	fade    *gween.Tween
	opacity float32
}

func newLayer(effect systems.Effect, fadeIn float64) *Layer {
	return &Layer{effect: effect, fadeIn: float32(fadeIn)}
}

// Name returns the effect name.
func (l *Layer) Name() string { return l.effect.Name() }

// Effect returns the layer's effect.
func (l *Layer) Effect() systems.Effect { return l.effect }

// State returns Running once mounted.
func (l *Layer) State() driver.State { return l.state }

// Opacity returns the fade-in progress in [0, 1].
func (l *Layer) Opacity() float32 { return l.opacity }

// mount acquires a surface for r and starts the fade. A nil renderer mounts
// without drawing, for headless runs.
func (l *Layer) mount(width, height int32, r renderer.Renderer) error {
	if r != nil {
		s := renderer.NewSurface(width, height)
		if err := s.Acquire(); err != nil {
			return err
		}
		if sz, ok := r.(sizer); ok {
			sz.SetSize(width, height)
		}
		l.surface = s
		l.renderer = r
	}

	l.state = driver.Running
	if l.fadeIn > 0 {
		l.fade = gween.New(0, 1, l.fadeIn, ease.OutQuad)
		l.opacity = 0
	} else {
		l.fade = nil
		l.opacity = 1
	}
	return nil
}

func (l *Layer) unmount() {
	if l.surface != nil {
		l.surface.Release()
		l.surface = nil
	}
	if l.renderer != nil {
		l.renderer.Unload()
		l.renderer = nil
	}
	l.state = driver.Idle
}

// update advances the effect and the fade by one frame.
func (l *Layer) update(p components.PointerSnapshot, dt float32) {
	l.effect.Update(p)
	if l.fade != nil {
		v, done := l.fade.Update(dt)
		l.opacity = v
		if done {
			l.opacity = 1
			l.fade = nil
		}
	}
}

// resize regenerates the pool and reallocates the surface.
func (l *Layer) resize(width, height float32) error {
	l.effect.Resize(width, height)
	if l.surface == nil {
		return nil
	}
	w, h := int32(width), int32(height)
	if sz, ok := l.renderer.(sizer); ok {
		sz.SetSize(w, h)
	}
	return l.surface.Resize(w, h)
}

// draw renders the effect into the layer surface.
func (l *Layer) draw() {
	if l.surface == nil || !l.surface.Ready() {
		return
	}
	l.surface.Begin()
	l.renderer.Clear()
	l.renderer.Draw()
	l.surface.End()
}

// composite blends the layer surface onto the window.
func (l *Layer) composite() {
	if l.surface == nil {
		return
	}
	l.surface.Composite(rl.Fade(rl.White, l.opacity))
}
