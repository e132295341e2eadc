package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/iburimskiy/prize-wheel/internal/config"
	"github.com/iburimskiy/prize-wheel/internal/wheel"
)

var (
	backgroundColor = color.RGBA{R: 0x0b, G: 0x12, B: 0x20, A: 0xff}
	hubColor        = color.RGBA{R: 0x12, G: 0x1c, B: 0x30, A: 0xff}
	pointerColor    = color.RGBA{R: 0xf2, G: 0xb8, B: 0x3c, A: 0xff}
	pointerFlash    = color.RGBA{R: 0xff, G: 0xf4, B: 0xd6, A: 0xff}
	mutedTextColor  = color.RGBA{R: 0x8a, G: 0x96, B: 0xad, A: 0xff}
)

func (g *Game) drawWheel(screen *ebiten.Image) {
	cx, cy := g.px(g.geo.CenterX), g.px(g.geo.CenterY)
	outer, inner := g.px(g.geo.OuterRadius), g.px(g.geo.InnerRadius)

	n := g.engine.WheelLen()
	switch n {
	case 0:
		vector.StrokeCircle(screen, cx, cy, outer, g.px(2), mutedTextColor, true)
		g.drawCentered(screen, "No names left", g.face(18), g.geo.CenterX, g.geo.CenterY-g.geo.InnerRadius-24, mutedTextColor)
		return
	case 1:
		// a single wedge is the whole ring; Arc cannot close a full turn
		vector.DrawFilledCircle(screen, cx, cy, outer, wheel.SlotColor(0).ToRGBA(), true)
		vector.StrokeCircle(screen, cx, cy, outer, g.px(2), wheel.OutlineColor, true)
	default:
		rotation := g.engine.Rotation()
		for i := 0; i < n; i++ {
			a0, a1 := wheel.WedgeAngles(rotation, i, n)
			var p vector.Path
			p.Arc(cx, cy, outer, float32(a0), float32(a1), vector.Clockwise)
			p.Arc(cx, cy, inner, float32(a1), float32(a0), vector.CounterClockwise)
			p.Close()
			g.fillPath(screen, &p, wheel.SlotColor(i).ToRGBA())
			g.strokePath(screen, &p, 2, wheel.OutlineColor)
		}
	}

	face := g.face(wheel.FontSize(n))
	rotation := g.engine.Rotation()
	for i := 0; i < n; i++ {
		a0, a1 := wheel.WedgeAngles(rotation, i, n)
		g.drawLabel(screen, g.engine.WheelLabel(i), face, (a0+a1)/2)
	}

	vector.DrawFilledCircle(screen, cx, cy, inner, hubColor, true)
	vector.StrokeCircle(screen, cx, cy, inner, g.px(2), wheel.OutlineColor, true)
}

// drawLabel centers a label on the text radius of its wedge, rotated along
// the wedge's bisector.
func (g *Game) drawLabel(screen *ebiten.Image, label string, face *text.GoTextFace, angle float64) {
	w, h := text.Measure(label, face, 0)
	x := (g.geo.CenterX + math.Cos(angle)*g.geo.TextRadius) * g.geo.Scale
	y := (g.geo.CenterY + math.Sin(angle)*g.geo.TextRadius) * g.geo.Scale

	op := &text.DrawOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Rotate(angle)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(wheel.LabelColor)
	text.Draw(screen, label, face, op)
}

// drawPointer draws the fixed marker at the top of the wheel. It flashes with
// the tick sound when a meter is attached.
func (g *Game) drawPointer(screen *ebiten.Image) {
	clr := pointerColor
	if g.meter != nil {
		clr = mix(pointerColor, pointerFlash, g.meter.Level())
	}

	cx := g.geo.CenterX
	top := g.geo.CenterY - g.geo.OuterRadius - config.PointerHeight/2
	var p vector.Path
	p.MoveTo(g.px(cx-config.PointerWidth/2), g.px(top))
	p.LineTo(g.px(cx+config.PointerWidth/2), g.px(top))
	p.LineTo(g.px(cx), g.px(top+config.PointerHeight))
	p.Close()
	g.fillPath(screen, &p, clr)
	g.strokePath(screen, &p, 2, wheel.OutlineColor)
}

func (g *Game) drawButton(screen *ebiten.Image, b *button) {
	var bg color.RGBA
	switch {
	case !b.enabled:
		bg = color.RGBA{R: 40, G: 48, B: 64, A: 255} // Disabled
	case b.pressed:
		bg = color.RGBA{R: 60, G: 80, B: 120, A: 255} // Pressed
	case b.hovered:
		bg = color.RGBA{R: 80, G: 100, B: 140, A: 255} // Hovered
	default:
		bg = color.RGBA{R: 100, G: 120, B: 160, A: 255} // Normal
	}

	r := b.bounds
	vector.DrawFilledRect(screen, g.px(r.x), g.px(r.y), g.px(r.w), g.px(r.h), bg, true)
	vector.StrokeRect(screen, g.px(r.x), g.px(r.y), g.px(r.w), g.px(r.h), g.px(2), color.RGBA{R: 150, G: 170, B: 200, A: 255}, true)

	fg := wheel.LabelColor
	if !b.enabled {
		fg = mutedTextColor
	}
	cx, cy := r.center()
	g.drawCentered(screen, b.label, g.face(18), cx, cy, fg)
}

func (g *Game) drawStatus(screen *ebiten.Image) {
	var status string
	switch g.engine.Phase() {
	case wheel.PhaseSpinning:
		status = "Spinning..."
	case wheel.PhaseFinished:
		status = fmt.Sprintf("All %d names drawn", g.engine.Total())
	default:
		status = fmt.Sprintf("%d of %d left - Enter to spin, Esc to quit", len(g.engine.Remaining()), g.engine.Total())
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	y := g.spinBtn.bounds.y + g.spinBtn.bounds.h + 24
	g.drawCentered(screen, status, g.face(14), g.geo.CenterX, y, mutedTextColor)
}

// drawCentered draws s centered on (x, y) in device-independent pixels.
func (g *Game) drawCentered(screen *ebiten.Image, s string, face *text.GoTextFace, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x*g.geo.Scale, y*g.geo.Scale)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, face, op)
}
