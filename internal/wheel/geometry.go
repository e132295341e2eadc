package wheel

import "math"

const (
	viewportPad = 40
	minSide     = 420
	maxSide     = 760

	minFontSize = 12
	maxFontSize = 22
	fontBudget  = 260
)

// Geometry is the wheel canvas layout in device-independent pixels. Scale is
// the device pixel ratio drawing code multiplies by.
type Geometry struct {
	Side        float64
	OriginX     float64
	OriginY     float64
	CenterX     float64
	CenterY     float64
	OuterRadius float64
	TextRadius  float64
	InnerRadius float64
	Scale       float64
}

// ComputeGeometry sizes the canvas from the viewport: the shorter side minus
// padding, clamped to [420, 760]. The canvas is centered horizontally and
// pinned to the top padding. It depends only on the viewport, never on
// rotation, so a resize mid-spin is harmless.
func ComputeGeometry(viewW, viewH, scale float64) Geometry {
	side := clampFloat(math.Min(viewW, viewH)-viewportPad*2, minSide, maxSide)
	if scale < 1 || math.IsNaN(scale) {
		scale = 1
	}
	originX := math.Max(0, (viewW-side)/2)
	originY := float64(viewportPad) / 2
	return Geometry{
		Side:        side,
		OriginX:     originX,
		OriginY:     originY,
		CenterX:     originX + side/2,
		CenterY:     originY + side/2,
		OuterRadius: side * 0.44,
		TextRadius:  side * 0.355,
		InnerRadius: math.Max(32, side*0.06),
		Scale:       scale,
	}
}

// FontSize shrinks labels as the wheel fills up: 260/n clamped to [12, 22].
func FontSize(n int) float64 {
	if n < 1 {
		n = 1
	}
	return clampFloat(fontBudget/float64(n), minFontSize, maxFontSize)
}

// WedgeAngles returns the start and end angle (radians) of slot i.
func WedgeAngles(startAngle float64, i, n int) (float64, float64) {
	arc := 2 * math.Pi / float64(n)
	a := startAngle + float64(i)*arc
	return a, a + arc
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
