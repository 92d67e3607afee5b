package systems

import (
	"image/color"
	"log/slog"

	"github.com/lucasb-eyer/go-colorful"
)

// White is the fallback tint for unparseable colours.
var White = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// ParsePalette converts hex strings to opaque colours.
// Entries that fail to parse fall back to white.
func ParsePalette(hexes []string) []color.RGBA {
	out := make([]color.RGBA, 0, len(hexes))
	for _, h := range hexes {
		out = append(out, HexColor(h, 1))
	}
	if len(out) == 0 {
		out = append(out, White)
	}
	return out
}

// HexColor parses a #rrggbb string and applies alpha in [0, 1].
func HexColor(hex string, alpha float64) color.RGBA {
	c, err := colorful.Hex(hex)
	if err != nil {
		slog.Warn("bad palette colour", "hex", hex, "error", err)
		c = colorful.Color{R: 1, G: 1, B: 1}
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: alphaByte(alpha)}
}

// HSLColor builds a colour from hue in degrees, saturation and lightness in [0, 1].
func HSLColor(h, s, l, alpha float64) color.RGBA {
	r, g, b := colorful.Hsl(h, s, l).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: alphaByte(alpha)}
}

func alphaByte(a float64) uint8 {
	if a <= 0 {
		return 0
	}
	if a >= 1 {
		return 255
	}
	return uint8(a * 255)
}
