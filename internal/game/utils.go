package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// rect is an axis-aligned box in device-independent pixels.
type rect struct {
	x, y, w, h float64
}

func (r rect) contains(px, py float64) bool {
	return px >= r.x && px <= r.x+r.w && py >= r.y && py <= r.y+r.h
}

func (r rect) center() (float64, float64) {
	return r.x + r.w/2, r.y + r.h/2
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// mix blends a toward b by t in [0, 1].
func mix(a, b color.RGBA, t float64) color.RGBA {
	t = clamp01(t)
	lerp := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return color.RGBA{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: lerp(a.A, b.A)}
}

// paintVertices colors path vertices for DrawTriangles against a white source.
func paintVertices(vs []ebiten.Vertex, c color.RGBA) {
	r := float32(c.R) / 0xff
	g := float32(c.G) / 0xff
	b := float32(c.B) / 0xff
	a := float32(c.A) / 0xff
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = r
		vs[i].ColorG = g
		vs[i].ColorB = b
		vs[i].ColorA = a
	}
}

// resultsGrid splits n result lines into columns of at most maxRows rows.
func resultsGrid(n, maxRows int) (rows, cols int) {
	if n <= 0 {
		return 0, 0
	}
	if maxRows < 1 {
		maxRows = 1
	}
	rows = n
	if rows > maxRows {
		rows = maxRows
	}
	cols = (n + rows - 1) / rows
	return rows, cols
}
