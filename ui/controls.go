package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/backdrop/systems"
)

// Tunables is the live-editable subset of effect parameters.
type Tunables struct {
	Gravity      float32
	Friction     float32
	WallBounce   float32
	FollowCursor bool
	Composition  float32
}

// slider describes one raygui slider row.
type slider struct {
	label    string
	min, max float32
	value    *float32
}

// ControlsPanel draws raygui sliders for the ball pit and field parameters.
// Edits are collected while drawing and pushed to the effects by Apply, so
// effect state only changes during update.
type ControlsPanel struct {
	painter *Painter
	x, y    int32
	width   int32
	visible bool

	ballpit *systems.Ballpit
	field   *systems.Field

	values Tunables
	dirty  bool
}

// NewControlsPanel creates a new controls panel.
func NewControlsPanel(x, y, width int32) *ControlsPanel {
	return &ControlsPanel{
		painter: NewPainter(),
		x:       x,
		y:       y,
		width:   width,
	}
}

// Bind attaches the effects the panel edits. Either may be nil.
func (c *ControlsPanel) Bind(ballpit *systems.Ballpit, field *systems.Field) {
	c.ballpit = ballpit
	c.field = field
	if ballpit != nil {
		p := ballpit.Params()
		c.values.Gravity = float32(p.Gravity)
		c.values.Friction = float32(p.Friction)
		c.values.WallBounce = float32(p.WallBounce)
		c.values.FollowCursor = p.FollowCursor
	}
	if field != nil {
		c.values.Composition = field.Composition()
	}
	c.dirty = false
}

// SetVisible shows or hides the panel.
func (c *ControlsPanel) SetVisible(visible bool) {
	c.visible = visible
}

// IsVisible returns whether the panel is shown.
func (c *ControlsPanel) IsVisible() bool {
	return c.visible
}

// Toggle switches panel visibility.
func (c *ControlsPanel) Toggle() bool {
	c.visible = !c.visible
	return c.visible
}

// Values returns the current control values.
func (c *ControlsPanel) Values() Tunables {
	return c.values
}

// Set replaces the control values; they take effect on the next Apply.
func (c *ControlsPanel) Set(v Tunables) {
	if v != c.values {
		c.values = v
		c.dirty = true
	}
}

// Apply pushes pending edits to the bound effects. Returns true if anything changed.
func (c *ControlsPanel) Apply() bool {
	if !c.dirty {
		return false
	}
	c.dirty = false

	if c.ballpit != nil {
		p := c.ballpit.Params()
		p.Gravity = float64(c.values.Gravity)
		p.Friction = float64(c.values.Friction)
		p.WallBounce = float64(c.values.WallBounce)
		p.FollowCursor = c.values.FollowCursor
		c.ballpit.SetParams(p)
	}
	if c.field != nil {
		c.field.SetComposition(c.values.Composition)
	}
	return true
}

// Draw renders the panel. Must be called between BeginDrawing and EndDrawing.
func (c *ControlsPanel) Draw() {
	if !c.visible || (c.ballpit == nil && c.field == nil) {
		return
	}

	r := c.painter
	padding := r.Theme.Padding
	rowHeight := int32(36)

	next := c.values
	var rows []slider
	if c.ballpit != nil {
		rows = append(rows,
			slider{"Gravity", 0, 0.2, &next.Gravity},
			slider{"Friction", 0.9, 1, &next.Friction},
			slider{"Wall bounce", 0, 1, &next.WallBounce},
		)
	}
	if c.field != nil {
		rows = append(rows, slider{"Composition", 0, 2, &next.Composition})
	}

	height := int32(len(rows))*rowHeight + padding*3 + r.Theme.LineHeight
	if c.ballpit != nil {
		height += rowHeight
	}
	r.Panel(c.x, c.y, c.width, height)

	y := c.y + padding
	y = r.Header(c.x+padding, y, "Controls")

	sliderW := float32(c.width - padding*2 - 50)
	for _, s := range rows {
		rl.DrawText(s.label, c.x+padding, y, r.Theme.FontSize, r.Theme.Label)
		y += r.Theme.LineHeight
		*s.value = gui.SliderBar(
			rl.Rectangle{X: float32(c.x + padding), Y: float32(y), Width: sliderW, Height: 14},
			"", "",
			*s.value, s.min, s.max,
		)
		rl.DrawText(fmt.Sprintf("%.3f", *s.value), c.x+padding+int32(sliderW)+6, y, r.Theme.FontSize, r.Theme.Value)
		y += rowHeight - r.Theme.LineHeight
	}

	if c.ballpit != nil {
		next.FollowCursor = gui.CheckBox(
			rl.Rectangle{X: float32(c.x + padding), Y: float32(y), Width: 14, Height: 14},
			"Follow cursor",
			next.FollowCursor,
		)
	}

	c.Set(next)
}
