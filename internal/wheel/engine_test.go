package wheel

import (
	"errors"
	"reflect"
	"sort"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

// seqRand cycles through fixed values.
type seqRand struct {
	vals []float64
	i    int
}

func (r *seqRand) Float64() float64 {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

type countingClicker struct{ clicks int }

func (c *countingClicker) Click() { c.clicks++ }

func newTestEngine(t *testing.T, labels []string, opts ...Option) (*Engine, *clockwork.FakeClock) {
	t.Helper()
	clock := clockwork.NewFakeClock()
	base := []Option{
		WithClock(clock),
		WithRand(&seqRand{vals: []float64{0.13, 0.71, 0.42, 0.97, 0.05, 0.58}}),
		WithLogger(zerolog.Nop()),
	}
	return NewEngine(labels, append(base, opts...)...), clock
}

// spinToStop ticks until the spin engine leaves Spinning.
func spinToStop(t *testing.T, e *Engine) {
	t.Helper()
	for i := 0; e.Phase() == PhaseSpinning; i++ {
		if i > 1000 {
			t.Fatal("spin never stopped")
		}
		e.Tick()
	}
}

// landOn forces the rotation so the spin stops with slot idx under the pointer.
func landOn(e *Engine, idx int) {
	e.phase = PhaseSpinning
	e.startAngle = AngleForIndex(idx, e.pool.Len())
	e.spinTime = 0
	e.spinTimeTotal = e.timing.FrameQuantum
	e.Tick()
}

func TestEngineScenarioMiddleWinner(t *testing.T) {
	e, _ := newTestEngine(t, []string{"A", "B", "C"})

	landOn(e, 1)

	if e.Phase() != PhaseSettling {
		t.Fatalf("phase = %v, want settling", e.Phase())
	}
	if got := e.Winners(); !reflect.DeepEqual(got, []string{"B"}) {
		t.Errorf("winners = %v, want [B]", got)
	}
	if got := e.Remaining(); !reflect.DeepEqual(got, []string{"A", "C"}) {
		t.Errorf("remaining = %v, want [A C]", got)
	}
	if got := e.Wheel(); !reflect.DeepEqual(got, []string{"A", "B", "C"}) {
		t.Errorf("wheel on display = %v, want the pre-removal wheel", got)
	}
}

func TestEngineSpinEmptyPool(t *testing.T) {
	initCalls := 0
	e, _ := newTestEngine(t, nil, WithAudio(func() (Clicker, error) {
		initCalls++
		return &countingClicker{}, nil
	}))

	if err := e.Spin(); !errors.Is(err, ErrEmptyPool) {
		t.Fatalf("Spin() err = %v, want ErrEmptyPool", err)
	}
	if e.Phase() != PhaseIdle {
		t.Errorf("phase = %v, want idle", e.Phase())
	}
	e.Tick()
	if e.Rotation() != 0 {
		t.Errorf("rotation moved to %v", e.Rotation())
	}
	if initCalls != 0 {
		t.Errorf("audio initialized %d times for a rejected spin", initCalls)
	}
}

func TestEngineRejectsSecondTrigger(t *testing.T) {
	e, clock := newTestEngine(t, []string{"A", "B", "C", "D"})

	if err := e.Spin(); err != nil {
		t.Fatalf("first Spin: %v", err)
	}
	angle, total := e.spinAngle, e.spinTimeTotal
	if err := e.Spin(); !errors.Is(err, ErrBusy) {
		t.Fatalf("second Spin err = %v, want ErrBusy", err)
	}
	if e.spinAngle != angle || e.spinTimeTotal != total {
		t.Errorf("second trigger changed the plan")
	}

	spinToStop(t, e)
	if err := e.Spin(); !errors.Is(err, ErrBusy) {
		t.Errorf("Spin while settling err = %v, want ErrBusy", err)
	}
	if err := e.Reset([]string{"X"}); !errors.Is(err, ErrBusy) {
		t.Errorf("Reset while settling err = %v, want ErrBusy", err)
	}

	clock.Advance(e.timing.SettleDelay + e.timing.RedrawDelay)
	e.Tick()
	if e.Phase() != PhaseIdle {
		t.Fatalf("phase = %v, want idle", e.Phase())
	}
	if err := e.Spin(); !errors.Is(err, ErrModalOpen) {
		t.Errorf("Spin with winner modal open err = %v, want ErrModalOpen", err)
	}
	e.Acknowledge()
	if err := e.Spin(); err != nil {
		t.Errorf("Spin after acknowledge: %v", err)
	}
}

func TestEngineSpinPlan(t *testing.T) {
	e, _ := newTestEngine(t, []string{"A", "B"}, WithRand(&seqRand{vals: []float64{0.5, 0.25}}))
	if err := e.Spin(); err != nil {
		t.Fatal(err)
	}
	if e.spinAngle != 3500 {
		t.Errorf("spin angle = %v, want 3500", e.spinAngle)
	}
	if want := e.timing.MinSpinDuration + e.timing.SpinDurationRange/4; e.spinTimeTotal != want {
		t.Errorf("duration = %v, want %v", e.spinTimeTotal, want)
	}
}

func TestEngineSettleTimeline(t *testing.T) {
	e, clock := newTestEngine(t, []string{"A", "B", "C"})

	landOn(e, 2)
	e.Tick()
	if e.ModalOpen() {
		t.Fatal("winner modal opened before the settle delay")
	}

	clock.Advance(e.timing.SettleDelay - 1)
	e.Tick()
	if e.ModalOpen() {
		t.Fatal("winner modal opened early")
	}

	clock.Advance(1)
	e.Tick()
	if e.Modal() != ModalWinner || e.WinnerName() != "C" {
		t.Fatalf("modal = %v name = %q, want winner C", e.Modal(), e.WinnerName())
	}
	if e.Phase() != PhaseSettling {
		t.Errorf("phase = %v, want settling until redraw", e.Phase())
	}
	if e.WheelLen() != 3 {
		t.Errorf("wheel redrawn before redraw delay")
	}

	clock.Advance(e.timing.RedrawDelay)
	e.Tick()
	if e.Phase() != PhaseIdle {
		t.Errorf("phase = %v, want idle", e.Phase())
	}
	if e.Rotation() != 0 {
		t.Errorf("rotation = %v, want reset to 0", e.Rotation())
	}
	if got := e.Wheel(); !reflect.DeepEqual(got, []string{"A", "B"}) {
		t.Errorf("wheel = %v, want [A B]", got)
	}
}

func TestEngineTypewriter(t *testing.T) {
	e, clock := newTestEngine(t, []string{"Ada", "Zoë"})
	landOn(e, 1)
	clock.Advance(e.timing.SettleDelay)
	e.Tick()

	want := []string{"", "Z", "Zo", "Zoë", "Zoë"}
	for i, w := range want {
		if got := e.TypedText(); got != w {
			t.Errorf("after %d intervals typed %q, want %q", i, got, w)
		}
		clock.Advance(e.timing.TypeInterval)
	}

	if !e.Acknowledge() {
		t.Fatal("Acknowledge found no modal")
	}
	if e.ModalOpen() || e.TypedText() != "" {
		t.Errorf("modal still open after acknowledge")
	}
	if e.Acknowledge() {
		t.Errorf("second Acknowledge reported an open modal")
	}
}

func TestEngineWinnerMatchesFinalPointer(t *testing.T) {
	e, clock := newTestEngine(t, []string{"A", "B", "C", "D", "E", "F", "G"})
	for round := 0; round < 7; round++ {
		if err := e.Spin(); err != nil {
			t.Fatalf("round %d: %v", round, err)
		}
		spinToStop(t, e)

		idx := PointerIndex(e.Rotation(), e.WheelLen())
		if idx != e.winnerIndex {
			t.Fatalf("round %d: pointer at %d, winner index %d", round, idx, e.winnerIndex)
		}
		winners := e.Winners()
		if e.WheelLabel(idx) != winners[len(winners)-1] {
			t.Fatalf("round %d: pointer label %q, winner %q", round, e.WheelLabel(idx), winners[len(winners)-1])
		}

		clock.Advance(e.timing.SettleDelay + e.timing.RedrawDelay)
		e.Tick()
		e.Acknowledge()
	}
}

func TestEngineExhaustsPool(t *testing.T) {
	labels := []string{"Ada", "Bo", "Cy", "Di", "Ed", "Fay", "Gus", "Hal", "Ivy", "Jo", "Kai"}
	e, clock := newTestEngine(t, labels)

	for round := 0; round < len(labels); round++ {
		if got := len(e.Remaining()) + len(e.Winners()); got != len(labels) {
			t.Fatalf("round %d: pool+winners = %d, want %d", round, got, len(labels))
		}
		if err := e.Spin(); err != nil {
			t.Fatalf("round %d: Spin: %v", round, err)
		}
		spinToStop(t, e)
		if got := len(e.Remaining()) + len(e.Winners()); got != len(labels) {
			t.Fatalf("round %d settling: pool+winners = %d", round, got)
		}
		clock.Advance(e.timing.SettleDelay)
		e.Tick()
		if e.Phase() != PhaseFinished {
			clock.Advance(e.timing.RedrawDelay)
			e.Tick()
		}
		e.Acknowledge()
	}

	if e.Phase() != PhaseFinished {
		t.Fatalf("phase = %v, want finished", e.Phase())
	}
	if len(e.Remaining()) != 0 {
		t.Errorf("remaining = %v, want empty", e.Remaining())
	}
	got := e.Winners()
	sort.Strings(got)
	want := append([]string(nil), labels...)
	sort.Strings(want)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("winners = %v, want a permutation of %v", got, want)
	}
}

func TestEngineLastSegmentShowsResults(t *testing.T) {
	e, clock := newTestEngine(t, []string{"A", "B"})

	landOn(e, 0)
	clock.Advance(e.timing.SettleDelay + e.timing.RedrawDelay)
	e.Tick()
	e.Acknowledge()

	landOn(e, 0)
	clock.Advance(e.timing.SettleDelay)
	e.Tick()
	if e.Phase() != PhaseFinished {
		t.Fatalf("phase = %v, want finished", e.Phase())
	}
	if e.Modal() != ModalWinner {
		t.Fatalf("modal = %v, want winner first", e.Modal())
	}
	if err := e.Spin(); !errors.Is(err, ErrEmptyPool) {
		t.Errorf("Spin after exhaustion err = %v, want ErrEmptyPool", err)
	}

	clock.Advance(e.timing.ResultsDelay)
	e.Tick()
	if e.Modal() != ModalResults {
		t.Fatalf("modal = %v, want results", e.Modal())
	}
	if got, want := e.ResultLines(), []string{"1. A", "2. B"}; !reflect.DeepEqual(got, want) {
		t.Errorf("results = %v, want %v", got, want)
	}

	e.Acknowledge()
	if err := e.Spin(); !errors.Is(err, ErrEmptyPool) {
		t.Errorf("Spin after results err = %v, want ErrEmptyPool", err)
	}
	if e.CanSpin() {
		t.Errorf("CanSpin true after exhaustion")
	}
}

func TestEngineAudioLazyAndOptional(t *testing.T) {
	clicker := &countingClicker{}
	initCalls := 0
	e, clock := newTestEngine(t, []string{"A", "B", "C", "D", "E", "F"}, WithAudio(func() (Clicker, error) {
		initCalls++
		return clicker, nil
	}))
	if initCalls != 0 {
		t.Fatalf("audio initialized before any spin")
	}

	for round := 0; round < 2; round++ {
		if err := e.Spin(); err != nil {
			t.Fatal(err)
		}
		spinToStop(t, e)
		clock.Advance(e.timing.SettleDelay + e.timing.RedrawDelay)
		e.Tick()
		e.Acknowledge()
	}
	if initCalls != 1 {
		t.Errorf("audio initialized %d times, want 1", initCalls)
	}
	if clicker.clicks == 0 {
		t.Errorf("no ticks during two spins")
	}
}

func TestEngineAudioFailureIsSilent(t *testing.T) {
	quiet, _ := newTestEngine(t, []string{"A", "B", "C"},
		WithRand(&seqRand{vals: []float64{0.3, 0.6}}),
		WithAudio(func() (Clicker, error) { return nil, errors.New("no device") }))
	plain, _ := newTestEngine(t, []string{"A", "B", "C"},
		WithRand(&seqRand{vals: []float64{0.3, 0.6}}))

	for _, e := range []*Engine{quiet, plain} {
		if err := e.Spin(); err != nil {
			t.Fatal(err)
		}
		spinToStop(t, e)
	}
	if !reflect.DeepEqual(quiet.Winners(), plain.Winners()) || quiet.Rotation() != plain.Rotation() {
		t.Errorf("audio failure changed the spin: %v/%v vs %v/%v",
			quiet.Winners(), quiet.Rotation(), plain.Winners(), plain.Rotation())
	}
}

func TestEngineReset(t *testing.T) {
	e, clock := newTestEngine(t, []string{"A", "B"})
	session := e.Session()
	landOn(e, 0)
	clock.Advance(e.timing.SettleDelay + e.timing.RedrawDelay)
	e.Tick()

	if err := e.Reset([]string{"X", "Y", "Z"}); !errors.Is(err, ErrModalOpen) {
		t.Fatalf("Reset with winner modal open = %v, want ErrModalOpen", err)
	}
	if e.Total() != 2 || len(e.Winners()) != 1 || e.Modal() != ModalWinner {
		t.Fatalf("rejected reset changed state: total=%d winners=%v modal=%v", e.Total(), e.Winners(), e.Modal())
	}

	e.Acknowledge()
	if err := e.Reset([]string{"X", "Y", "Z"}); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if e.Total() != 3 || len(e.Winners()) != 0 || e.ModalOpen() {
		t.Errorf("reset left state behind: total=%d winners=%v modal=%v", e.Total(), e.Winners(), e.Modal())
	}
	if e.Session() == session {
		t.Errorf("session id not renewed")
	}
}
