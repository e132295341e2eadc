package wheel

import (
	"errors"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	ErrEmptyPool       = errors.New("wheel: no segments left")
	ErrBusy            = errors.New("wheel: spin in progress")
	ErrModalOpen       = errors.New("wheel: modal is open")
	ErrIndexOutOfRange = errors.New("wheel: index out of range")
)

// Phase is the spin engine state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSpinning
	PhaseSettling
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSpinning:
		return "spinning"
	case PhaseSettling:
		return "settling"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Timing holds the animation constants. Spin progress advances by
// FrameQuantum per Tick regardless of wall time; the settle delays run on the
// engine clock.
type Timing struct {
	FrameQuantum      time.Duration
	MinSpinDegrees    float64
	SpinDegreesRange  float64
	MinSpinDuration   time.Duration
	SpinDurationRange time.Duration
	SettleDelay       time.Duration
	RedrawDelay       time.Duration
	ResultsDelay      time.Duration
	TypeInterval      time.Duration
}

func DefaultTiming() Timing {
	return Timing{
		FrameQuantum:      30 * time.Millisecond,
		MinSpinDegrees:    2000,
		SpinDegreesRange:  3000,
		MinSpinDuration:   4000 * time.Millisecond,
		SpinDurationRange: 3000 * time.Millisecond,
		SettleDelay:       800 * time.Millisecond,
		RedrawDelay:       800 * time.Millisecond,
		ResultsDelay:      1500 * time.Millisecond,
		TypeInterval:      80 * time.Millisecond,
	}
}

// Clicker plays the boundary tick.
type Clicker interface {
	Click()
}

// AudioInit opens the audio output. It is called once, on the first spin, and
// a failure leaves the engine silent.
type AudioInit func() (Clicker, error)

// Rand supplies uniform values in [0, 1).
type Rand interface {
	Float64() float64
}

type stdRand struct{}

func (stdRand) Float64() float64 { return rand.Float64() }

type silentClicker struct{}

func (silentClicker) Click() {}

type settleStep int

const (
	stepNone settleStep = iota
	stepPresent
	stepRedraw
	stepResults
)

// Option configures an Engine.
type Option func(*Engine)

func WithClock(c clockwork.Clock) Option { return func(e *Engine) { e.clock = c } }

func WithRand(r Rand) Option { return func(e *Engine) { e.rng = r } }

func WithTiming(t Timing) Option { return func(e *Engine) { e.timing = t } }

func WithAudio(init AudioInit) Option { return func(e *Engine) { e.audioInit = init } }

func WithLogger(l zerolog.Logger) Option { return func(e *Engine) { e.baseLog = l } }

// Engine owns the whole widget state: pool, rotation, winners and the modal.
// It is not safe for concurrent use; the frame loop is its only caller.
type Engine struct {
	clock     clockwork.Clock
	rng       Rand
	timing    Timing
	audioInit AudioInit
	clicker   Clicker
	baseLog   zerolog.Logger
	log       zerolog.Logger
	session   string

	phase   Phase
	pool    *Pool
	total   int
	winners []string

	// frozen is the wheel as it looked when the last spin stopped. It stays on
	// screen until the redraw step, after the pool itself has shrunk.
	frozen []string

	startAngle    float64
	spinAngle     float64
	spinTime      time.Duration
	spinTimeTotal time.Duration
	lastTick      int
	winnerIndex   int
	ticks         int

	step settleStep
	due  time.Time

	modal       Modal
	modalName   string
	modalOpened time.Time
}

func NewEngine(labels []string, opts ...Option) *Engine {
	e := &Engine{
		clock:   clockwork.NewRealClock(),
		rng:     stdRand{},
		timing:  DefaultTiming(),
		baseLog: log.Logger,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.reset(labels)
	return e
}

func (e *Engine) reset(labels []string) {
	e.session = uuid.New().String()[:8]
	e.log = e.baseLog.With().Str("session", e.session).Logger()
	e.phase = PhaseIdle
	e.pool = NewPool(labels)
	e.total = len(labels)
	e.winners = nil
	e.frozen = nil
	e.startAngle = 0
	e.spinAngle = 0
	e.spinTime = 0
	e.spinTimeTotal = 0
	e.lastTick = -1
	e.step = stepNone
	e.modal = ModalNone
	e.modalName = ""
}

// Reset starts a new session with a fresh list of labels. It is refused while
// a spin is in flight or a modal is open.
func (e *Engine) Reset(labels []string) error {
	switch {
	case e.Busy():
		return ErrBusy
	case e.modal != ModalNone:
		return ErrModalOpen
	}
	e.reset(labels)
	e.log.Info().Int("segments", len(labels)).Msg("wheel loaded")
	return nil
}

// Spin starts a spin from Idle. A second trigger while the wheel is spinning
// or settling returns ErrBusy and changes nothing.
func (e *Engine) Spin() error {
	switch {
	case e.Busy():
		return ErrBusy
	case e.pool.Empty():
		return ErrEmptyPool
	case e.modal != ModalNone:
		return ErrModalOpen
	}

	e.ensureAudio()

	t := e.timing
	e.spinAngle = math.Floor(e.rng.Float64()*t.SpinDegreesRange) + t.MinSpinDegrees
	e.spinTimeTotal = t.MinSpinDuration + time.Duration(e.rng.Float64()*float64(t.SpinDurationRange))
	e.spinTime = 0
	e.lastTick = -1
	e.phase = PhaseSpinning

	e.log.Debug().
		Float64("spin_degrees", e.spinAngle).
		Dur("duration", e.spinTimeTotal).
		Int("segments", e.pool.Len()).
		Msg("spin started")
	return nil
}

func (e *Engine) ensureAudio() {
	if e.clicker != nil {
		return
	}
	e.clicker = silentClicker{}
	if e.audioInit == nil {
		return
	}
	c, err := e.audioInit()
	if err != nil {
		e.log.Warn().Err(err).Msg("audio unavailable, ticks will be silent")
		return
	}
	if c != nil {
		e.clicker = c
	}
}

// Tick advances the engine by one display frame.
func (e *Engine) Tick() {
	switch e.phase {
	case PhaseSpinning:
		e.advanceSpin()
	case PhaseSettling, PhaseFinished:
		e.runDue()
	}
}

func (e *Engine) advanceSpin() {
	e.spinTime += e.timing.FrameQuantum
	if e.spinTime >= e.spinTimeTotal {
		e.stop()
		return
	}

	change := EaseOut(float64(e.spinTime), 0, e.spinAngle, float64(e.spinTimeTotal))
	e.startAngle += change * math.Pi / 180

	idx := PointerIndex(e.startAngle, e.pool.Len())
	if idx != e.lastTick {
		e.clicker.Click()
		e.ticks++
		e.lastTick = idx
	}
}

// stop picks the winner with the same pointer formula the ticks use, records
// it and removes it from the pool in one step so pool+winners stays constant.
func (e *Engine) stop() {
	e.frozen = e.pool.Labels()
	e.winnerIndex = PointerIndex(e.startAngle, e.pool.Len())
	label, err := e.pool.RemoveWinner(e.winnerIndex)
	if err != nil {
		// unreachable: PointerIndex is clamped to the pool
		e.log.Error().Err(err).Msg("winner removal failed")
		e.phase = PhaseIdle
		return
	}
	e.winners = append(e.winners, label)
	e.phase = PhaseSettling
	e.schedule(stepPresent, e.clock.Now().Add(e.timing.SettleDelay))

	e.log.Info().
		Str("winner", label).
		Int("index", e.winnerIndex).
		Int("remaining", e.pool.Len()).
		Int("ticks", e.ticks).
		Msg("spin settled")
	e.ticks = 0
}

func (e *Engine) schedule(s settleStep, at time.Time) {
	e.step = s
	e.due = at
}

// runDue fires every settle step whose deadline has passed. Each follow-up is
// scheduled from the previous deadline, not from now, so a clock that jumps
// far ahead still walks the same timeline.
func (e *Engine) runDue() {
	now := e.clock.Now()
	for e.step != stepNone && !now.Before(e.due) {
		at := e.due
		switch e.step {
		case stepPresent:
			e.openModal(ModalWinner, e.winners[len(e.winners)-1], at)
			if e.pool.Empty() {
				e.phase = PhaseFinished
				e.schedule(stepResults, at.Add(e.timing.ResultsDelay))
				e.log.Info().Int("winners", len(e.winners)).Msg("wheel exhausted")
			} else {
				e.schedule(stepRedraw, at.Add(e.timing.RedrawDelay))
			}
		case stepRedraw:
			e.startAngle = 0
			e.lastTick = -1
			e.frozen = nil
			e.phase = PhaseIdle
			e.step = stepNone
		case stepResults:
			e.openModal(ModalResults, "", at)
			e.step = stepNone
		}
	}
}

// Busy reports whether a spin is in flight (spinning or settling).
func (e *Engine) Busy() bool {
	return e.phase == PhaseSpinning || e.phase == PhaseSettling
}

func (e *Engine) Phase() Phase { return e.phase }

func (e *Engine) Session() string { return e.session }

// Rotation is the cumulative wheel angle in radians.
func (e *Engine) Rotation() float64 { return e.startAngle }

// Total is the number of segments the session started with.
func (e *Engine) Total() int { return e.total }

// Remaining returns the labels still in the pool.
func (e *Engine) Remaining() []string { return e.pool.Labels() }

// Winners returns the labels drawn so far, in draw order.
func (e *Engine) Winners() []string {
	out := make([]string, len(e.winners))
	copy(out, e.winners)
	return out
}

// Wheel returns the labels to draw: the frozen pre-removal wheel while a
// result is on display, the live pool otherwise.
func (e *Engine) Wheel() []string {
	if e.frozen != nil {
		out := make([]string, len(e.frozen))
		copy(out, e.frozen)
		return out
	}
	return e.pool.Labels()
}

// WheelLen is len(Wheel()) without the copy.
func (e *Engine) WheelLen() int {
	if e.frozen != nil {
		return len(e.frozen)
	}
	return e.pool.Len()
}

// WheelLabel is Wheel()[i] without the copy.
func (e *Engine) WheelLabel(i int) string {
	if e.frozen != nil {
		return e.frozen[i]
	}
	return e.pool.Label(i)
}

// CanSpin reports whether Spin would be accepted right now.
func (e *Engine) CanSpin() bool {
	return !e.Busy() && !e.pool.Empty() && e.modal == ModalNone
}
