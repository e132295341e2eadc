package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/iburimskiy/prize-wheel/internal/config"
	"github.com/iburimskiy/prize-wheel/internal/wheel"
)

var (
	overlayColor    = color.RGBA{A: 0xa0}
	panelColor      = color.RGBA{R: 0x16, G: 0x22, B: 0x3a, A: 0xff}
	panelEdgeColor  = color.RGBA{R: 0x3c, G: 0x4e, B: 0x72, A: 0xff}
	modalTitleColor = color.RGBA{R: 0xf2, G: 0xb8, B: 0x3c, A: 0xff}
)

const (
	modalPad     = 24
	modalTitleH  = 48
	modalFooterH = 72
)

// winnerPanel is the winner dialog, centered on the viewport.
func (g *Game) winnerPanel() rect {
	w, h := float64(g.outW), float64(g.outH)
	return rect{(w - config.ModalWidth) / 2, (h - config.ModalHeight) / 2, config.ModalWidth, config.ModalHeight}
}

// resultsPanel sizes the results dialog to fit every winner, wrapping into
// columns when the list is taller than the viewport allows.
func (g *Game) resultsPanel(n int) (panel rect, rows, cols int) {
	w, h := float64(g.outW), float64(g.outH)
	maxBody := h - 2*modalPad - modalTitleH - modalFooterH - 80
	rows, cols = resultsGrid(n, int(maxBody/config.ResultsRowH))
	pw := float64(config.ResultsWidth)
	if cols > 2 {
		pw = w - 80
	}
	ph := modalTitleH + modalFooterH + 2*modalPad + float64(rows)*config.ResultsRowH
	return rect{(w - pw) / 2, (h - ph) / 2, pw, ph}, rows, cols
}

// placeOK puts the acknowledge button at the bottom of the open panel.
func (g *Game) placeOK() {
	var panel rect
	switch g.engine.Modal() {
	case wheel.ModalWinner:
		panel = g.winnerPanel()
	case wheel.ModalResults:
		panel, _, _ = g.resultsPanel(len(g.engine.Winners()))
	default:
		return
	}
	g.okBtn.bounds = rect{
		panel.x + (panel.w-config.ButtonWidth)/2,
		panel.y + panel.h - modalPad - config.ButtonHeight,
		config.ButtonWidth,
		config.ButtonHeight,
	}
}

func (g *Game) drawPanel(screen *ebiten.Image, panel rect, title string) {
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(sw), float32(sh), overlayColor, false)
	vector.DrawFilledRect(screen, g.px(panel.x), g.px(panel.y), g.px(panel.w), g.px(panel.h), panelColor, true)
	vector.StrokeRect(screen, g.px(panel.x), g.px(panel.y), g.px(panel.w), g.px(panel.h), g.px(2), panelEdgeColor, true)
	g.drawCentered(screen, title, g.face(26), panel.x+panel.w/2, panel.y+modalPad+modalTitleH/2, modalTitleColor)
}

func (g *Game) drawWinnerModal(screen *ebiten.Image) {
	panel := g.winnerPanel()
	g.drawPanel(screen, panel, "Winner!")

	nameY := panel.y + modalPad + modalTitleH + (panel.h-2*modalPad-modalTitleH-modalFooterH)/2
	g.drawCentered(screen, g.engine.TypedText(), g.face(30), panel.x+panel.w/2, nameY, wheel.LabelColor)
	g.drawButton(screen, &g.okBtn)
}

func (g *Game) drawResultsModal(screen *ebiten.Image) {
	lines := g.engine.ResultLines()
	panel, rows, cols := g.resultsPanel(len(lines))
	g.drawPanel(screen, panel, "Results")

	if cols > 0 {
		colW := (panel.w - 2*modalPad) / float64(cols)
		top := panel.y + modalPad + modalTitleH
		face := g.face(15)
		for i, line := range lines {
			col, row := i/rows, i%rows
			x := panel.x + modalPad + float64(col)*colW + colW/2
			y := top + float64(row)*config.ResultsRowH + config.ResultsRowH/2
			g.drawCentered(screen, line, face, x, y, wheel.LabelColor)
		}
	}
	g.drawButton(screen, &g.okBtn)
}
