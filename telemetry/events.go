// Package telemetry provides frame timing, per-effect window stats and CSV output.
package telemetry

// EventType identifies layer lifecycle events.
type EventType uint8

const (
	EventMount EventType = iota
	EventUnmount
	EventResize
	EventSurfaceFailed
)

func (t EventType) String() string {
	switch t {
	case EventMount:
		return "mount"
	case EventUnmount:
		return "unmount"
	case EventResize:
		return "resize"
	case EventSurfaceFailed:
		return "surface_failed"
	}
	return "unknown"
}

// Event is a single lifecycle event for one effect layer.
type Event struct {
	Type   EventType
	Tick   int32
	Effect string

	// Viewport after the event, in pixels
	Width, Height float32
}

// NewMountEvent creates a mount event.
func NewMountEvent(tick int32, effect string, width, height float32) Event {
	return Event{Type: EventMount, Tick: tick, Effect: effect, Width: width, Height: height}
}

// NewUnmountEvent creates an unmount event.
func NewUnmountEvent(tick int32, effect string) Event {
	return Event{Type: EventUnmount, Tick: tick, Effect: effect}
}

// NewResizeEvent creates a resize event.
func NewResizeEvent(tick int32, effect string, width, height float32) Event {
	return Event{Type: EventResize, Tick: tick, Effect: effect, Width: width, Height: height}
}

// NewSurfaceFailedEvent records that an effect could not get a drawing surface.
func NewSurfaceFailedEvent(tick int32, effect string) Event {
	return Event{Type: EventSurfaceFailed, Tick: tick, Effect: effect}
}
