package renderer

import (
	"errors"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ErrSurfaceUnavailable is returned when a layer cannot get a render target.
var ErrSurfaceUnavailable = errors.New("drawing surface unavailable")

// Surface is an offscreen render target the size of the viewport.
// Each effect layer draws into its own surface, which is then composited
// onto the window.
type Surface struct {
	target        rl.RenderTexture2D
	width, height int32
	loaded        bool
}

// NewSurface creates an unloaded surface. Call Acquire before drawing.
func NewSurface(width, height int32) *Surface {
	return &Surface{width: width, height: height}
}

// Acquire loads the render texture.
func (s *Surface) Acquire() error {
	if s.loaded {
		return nil
	}
	if !rl.IsWindowReady() {
		return fmt.Errorf("%w: no window", ErrSurfaceUnavailable)
	}
	if s.width <= 0 || s.height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrSurfaceUnavailable, s.width, s.height)
	}

	s.target = rl.LoadRenderTexture(s.width, s.height)
	if s.target.ID == 0 {
		return fmt.Errorf("%w: render texture not created", ErrSurfaceUnavailable)
	}
	s.loaded = true

	rl.BeginTextureMode(s.target)
	rl.ClearBackground(rl.Blank)
	rl.EndTextureMode()
	return nil
}

// Release frees the render texture.
func (s *Surface) Release() {
	if !s.loaded {
		return
	}
	rl.UnloadRenderTexture(s.target)
	s.target = rl.RenderTexture2D{}
	s.loaded = false
}

// Resize reallocates the render texture for a new viewport.
func (s *Surface) Resize(width, height int32) error {
	if width == s.width && height == s.height {
		return nil
	}
	wasLoaded := s.loaded
	s.Release()
	s.width, s.height = width, height
	if !wasLoaded {
		return nil
	}
	return s.Acquire()
}

// Ready reports whether the surface can be drawn into.
func (s *Surface) Ready() bool { return s.loaded }

// Size returns the surface dimensions in pixels.
func (s *Surface) Size() (width, height int32) { return s.width, s.height }

// Begin redirects drawing into the surface.
func (s *Surface) Begin() {
	rl.BeginTextureMode(s.target)
}

// End restores drawing to the window.
func (s *Surface) End() {
	rl.EndTextureMode()
}

// Composite draws the surface onto the current target, scaled by tint.
func (s *Surface) Composite(tint rl.Color) {
	if !s.loaded {
		return
	}
	// Render textures are stored bottom-up
	src := rl.Rectangle{
		X:      0,
		Y:      0,
		Width:  float32(s.width),
		Height: -float32(s.height),
	}
	rl.DrawTextureRec(s.target.Texture, src, rl.Vector2{}, tint)
}
