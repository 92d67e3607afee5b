package components

import (
	"image/color"
	"testing"
)

func TestAppearanceShade(t *testing.T) {
	a := Appearance{Tint: color.RGBA{R: 255, G: 255, B: 255, A: 255}}
	if got := a.Shade(0.5).A; got != 127 {
		t.Errorf("Shade(0.5).A = %d, want 127", got)
	}
	if got := a.Shade(2).A; got != 255 {
		t.Errorf("Shade(2).A = %d, want 255", got)
	}
	if got := a.Shade(-1).A; got != 0 {
		t.Errorf("Shade(-1).A = %d, want 0", got)
	}
	if got := a.Shade(1).R; got != 255 {
		t.Errorf("Shade should keep RGB, got R=%d", got)
	}
}
