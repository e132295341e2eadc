package wheel

import (
	"image/color"
	"math"
)

// HSL is a color in hue (0-360), saturation and lightness (0-1).
type HSL struct {
	H, S, L float64
}

// Palette is the deep-navy cycle assigned to slots by index mod len(Palette).
var Palette = []HSL{
	{220, 0.45, 0.18},
	{220, 0.42, 0.22},
	{220, 0.40, 0.26},
	{220, 0.38, 0.30},
}

// SlotColor returns the palette entry for slot i.
func SlotColor(i int) HSL {
	return Palette[i%len(Palette)]
}

var (
	LabelColor   = color.RGBA{R: 0xe9, G: 0xee, B: 0xf7, A: 0xff}
	OutlineColor = color.RGBA{A: 0xff}
)

// ToRGBA converts to an opaque color.RGBA.
func (c HSL) ToRGBA() color.RGBA {
	h := math.Mod(c.H, 360)
	if h < 0 {
		h += 360
	}
	chroma := (1 - math.Abs(2*c.L-1)) * c.S
	x := chroma * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := c.L - chroma/2

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = chroma, x, 0
	case h < 120:
		r, g, b = x, chroma, 0
	case h < 180:
		r, g, b = 0, chroma, x
	case h < 240:
		r, g, b = 0, x, chroma
	case h < 300:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}
	return color.RGBA{
		R: uint8(math.Round((r + m) * 255)),
		G: uint8(math.Round((g + m) * 255)),
		B: uint8(math.Round((b + m) * 255)),
		A: 0xff,
	}
}
