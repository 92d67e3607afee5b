package components

import "sync"

// PointerSnapshot is a copy of the pointer state taken at the start of an update.
type PointerSnapshot struct {
	X, Y   float32
	Active bool
}

// Pointer is the shared cursor cell. Input handlers write it, effect updates
// read it through Snapshot. A read may be one event stale.
type Pointer struct {
	mu     sync.Mutex
	x, y   float32
	active bool
}

// Move records a pointer-move event and marks the pointer active.
func (p *Pointer) Move(x, y float32) {
	p.mu.Lock()
	p.x, p.y = x, y
	p.active = true
	p.mu.Unlock()
}

// Leave records a pointer-leave event. The last position is kept.
func (p *Pointer) Leave() {
	p.mu.Lock()
	p.active = false
	p.mu.Unlock()
}

// Snapshot returns the current pointer state.
func (p *Pointer) Snapshot() PointerSnapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return PointerSnapshot{X: p.x, Y: p.y, Active: p.active}
}
