package game

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/iburimskiy/prize-wheel/internal/config"
	"github.com/ncruces/zenity"
	"github.com/rs/zerolog/log"
)

func quitPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ)
}

func enterPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter)
}

func (g *Game) handleInput() {
	g.spinBtn.enabled = g.engine.CanSpin()
	g.loadBtn.enabled = !g.engine.Busy() && !g.engine.ModalOpen()
	g.okBtn.enabled = g.engine.ModalOpen()
	g.placeOK()

	if enterPressed() {
		if g.engine.ModalOpen() {
			g.engine.Acknowledge()
		} else {
			g.spin()
		}
		return
	}

	mx, my := ebiten.CursorPosition()
	x, y := float64(mx)/g.geo.Scale, float64(my)/g.geo.Scale

	// an open modal swallows clicks meant for the wheel controls
	if g.engine.ModalOpen() {
		if g.click(&g.okBtn, x, y) {
			g.engine.Acknowledge()
		}
		return
	}
	if g.click(&g.spinBtn, x, y) {
		g.spin()
	}
	if g.click(&g.loadBtn, x, y) {
		g.loadNames()
	}
}

// click tracks hover and press state for b and reports a completed click:
// pressed and released over the button.
func (g *Game) click(b *button, x, y float64) bool {
	b.hovered = b.enabled && b.bounds.contains(x, y)
	if b.hovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		b.pressed = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		clicked := b.pressed && b.hovered
		b.pressed = false
		return clicked
	}
	return false
}

func (g *Game) spin() {
	if err := g.engine.Spin(); err != nil {
		log.Debug().Err(err).Str("phase", g.engine.Phase().String()).Msg("spin rejected")
		return
	}
	g.lastErr = nil
}

// loadNames replaces the wheel with a list picked from disk. The dialog
// blocks the frame loop, which is fine: the wheel is idle when it opens.
func (g *Game) loadNames() {
	path, err := g.openDialog()
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return
		}
		g.reportLoadError(err)
		return
	}

	names, err := config.LoadNames(path)
	if err != nil {
		g.reportLoadError(err)
		return
	}
	if err := g.engine.Reset(names); err != nil {
		g.reportLoadError(err)
		return
	}
	g.lastErr = nil
	log.Info().Str("path", path).Int("segments", len(names)).Str("session", g.engine.Session()).Msg("names loaded")
}

func (g *Game) reportLoadError(err error) {
	g.lastErr = err
	log.Error().Err(err).Msg("failed to load names")
	if dlgErr := zenity.Error(err.Error(), zenity.Title("Could not load names"), zenity.ErrorIcon); dlgErr != nil {
		log.Debug().Err(dlgErr).Msg("error dialog unavailable")
	}
}

func selectNamesFile() (string, error) {
	return zenity.SelectFile(
		zenity.Title("Load names"),
		zenity.FileFilters{{
			Name:     "Names",
			Patterns: []string{"*.txt", "*.yaml", "*.yml"},
		}},
	)
}
