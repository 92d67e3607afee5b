package game

import rl "github.com/gen2brain/raylib-go/raylib"

// handleInput feeds the pointer and processes keyboard toggles.
func (g *Game) handleInput() {
	if rl.IsCursorOnScreen() {
		m := rl.GetMousePosition()
		g.pointer.Move(m.X, m.Y)
	} else {
		g.pointer.Leave()
	}

	if rl.IsKeyPressed(rl.KeyF1) && g.controls != nil {
		g.controls.Toggle()
	}
	if rl.IsKeyPressed(rl.KeyF3) {
		g.showHUD = !g.showHUD
	}
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	// Slider edits from the previous frame
	if g.controls != nil {
		g.controls.Apply()
	}
}

// handleResize checks for window resize and propagates new dimensions.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	g.Resize(float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()))
}
