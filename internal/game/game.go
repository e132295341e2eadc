// Package game adapts the wheel engine to an Ebitengine window: it feeds
// display frames and input into the engine and draws its state.
package game

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/iburimskiy/prize-wheel/internal/config"
	"github.com/iburimskiy/prize-wheel/internal/wheel"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/image/font/gofont/goregular"
)

// Meter reports how loud the last tick was, in [0, 1].
type Meter interface {
	Level() float64
}

type button struct {
	label   string
	bounds  rect
	hovered bool
	pressed bool
	enabled bool
}

type Game struct {
	cfg    *config.Config
	engine *wheel.Engine
	meter  Meter

	geo        wheel.Geometry
	outW, outH int

	fontSource *text.GoTextFaceSource
	faces      map[float64]*text.GoTextFace
	whiteSub   *ebiten.Image
	vertices   []ebiten.Vertex
	indices    []uint16

	spinBtn button
	loadBtn button
	okBtn   button

	// openDialog picks a names file; swapped out when no desktop is available.
	openDialog func() (string, error)

	lastErr error
}

// New builds the window adapter around an engine. meter may be nil.
func New(cfg *config.Config, engine *wheel.Engine, meter Meter) (*Game, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, err
	}

	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)

	g := &Game{
		cfg:        cfg,
		engine:     engine,
		meter:      meter,
		fontSource: src,
		faces:      map[float64]*text.GoTextFace{},
		whiteSub:   white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
		spinBtn:    button{label: "Spin"},
		loadBtn:    button{label: "Load names"},
		okBtn:      button{label: "OK"},
		openDialog: selectNamesFile,
	}
	g.resize(config.WindowWidth, config.WindowHeight, 1)
	return g, nil
}

func (g *Game) Update() error {
	if quitPressed() {
		return ebiten.Termination
	}
	g.handleInput()
	g.engine.Tick()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	g.drawWheel(screen)
	g.drawPointer(screen)
	g.drawButton(screen, &g.spinBtn)
	g.drawButton(screen, &g.loadBtn)
	g.drawStatus(screen)

	switch g.engine.Modal() {
	case wheel.ModalWinner:
		g.drawWinnerModal(screen)
	case wheel.ModalResults:
		g.drawResultsModal(screen)
	}

	if zerolog.GlobalLevel() <= zerolog.DebugLevel {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("session %s  %s  TPS %.0f  FPS %.0f",
			g.engine.Session(), g.engine.Phase(), ebiten.ActualTPS(), ebiten.ActualFPS()), 8, 8)
	}
}

// Layout renders at device resolution while all geometry stays in
// device-independent pixels; drawing code multiplies by geo.Scale.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	scale := deviceScale()
	if outsideWidth != g.outW || outsideHeight != g.outH || scale != g.geo.Scale {
		g.resize(outsideWidth, outsideHeight, scale)
	}
	return int(math.Ceil(float64(outsideWidth) * scale)), int(math.Ceil(float64(outsideHeight) * scale))
}

// resize recomputes canvas geometry and button placement. Rotation lives in
// the engine and is untouched.
func (g *Game) resize(w, h int, scale float64) {
	g.outW, g.outH = w, h
	g.geo = wheel.ComputeGeometry(float64(w), float64(h), scale)

	y := g.geo.OriginY + g.geo.Side + config.ButtonGap
	g.spinBtn.bounds = rect{g.geo.CenterX - config.ButtonWidth - config.ButtonGap/2, y, config.ButtonWidth, config.ButtonHeight}
	g.loadBtn.bounds = rect{g.geo.CenterX + config.ButtonGap/2, y, config.ButtonWidth, config.ButtonHeight}

	log.Debug().
		Int("width", w).
		Int("height", h).
		Float64("scale", scale).
		Float64("side", g.geo.Side).
		Msg("canvas resized")
}

func deviceScale() float64 {
	m := ebiten.Monitor()
	if m == nil {
		return 1
	}
	return math.Max(1, m.DeviceScaleFactor())
}

// face returns a cached face for a size in device-independent pixels.
func (g *Game) face(size float64) *text.GoTextFace {
	px := size * g.geo.Scale
	if f, ok := g.faces[px]; ok {
		return f
	}
	f := &text.GoTextFace{Source: g.fontSource, Size: px}
	g.faces[px] = f
	return f
}

// px converts a device-independent length to screen pixels.
func (g *Game) px(v float64) float32 {
	return float32(v * g.geo.Scale)
}

func (g *Game) fillPath(dst *ebiten.Image, p *vector.Path, c color.RGBA) {
	g.vertices, g.indices = p.AppendVerticesAndIndicesForFilling(g.vertices[:0], g.indices[:0])
	paintVertices(g.vertices, c)
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true, FillRule: ebiten.NonZero}
	dst.DrawTriangles(g.vertices, g.indices, g.whiteSub, op)
}

func (g *Game) strokePath(dst *ebiten.Image, p *vector.Path, width float64, c color.RGBA) {
	g.vertices, g.indices = p.AppendVerticesAndIndicesForStroke(g.vertices[:0], g.indices[:0], &vector.StrokeOptions{
		Width:    g.px(width),
		LineJoin: vector.LineJoinRound,
	})
	paintVertices(g.vertices, c)
	dst.DrawTriangles(g.vertices, g.indices, g.whiteSub, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}
