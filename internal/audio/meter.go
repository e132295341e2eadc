package audio

import (
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/jonboulle/clockwork"
)

const meterFalloff = 60 * time.Millisecond

// levelMeter records the peak of whatever was streamed through it most
// recently. The renderer reads Level to flash the pointer on each tick. Stream
// runs on the speaker goroutine, Level on the frame loop.
type levelMeter struct {
	clock clockwork.Clock

	mu   sync.RWMutex
	peak float64
	at   time.Time
}

func newLevelMeter(clock clockwork.Clock) *levelMeter {
	return &levelMeter{clock: clock}
}

// wrap returns a streamer that reports src's samples to the meter.
func (m *levelMeter) wrap(src beep.Streamer) beep.Streamer {
	return &meterTap{source: src, meter: m}
}

func (m *levelMeter) record(samples [][2]float64) {
	peak := 0.0
	for _, s := range samples {
		peak = math.Max(peak, math.Max(math.Abs(s[0]), math.Abs(s[1])))
	}
	if peak == 0 {
		return
	}
	m.mu.Lock()
	m.peak = peak
	m.at = m.clock.Now()
	m.mu.Unlock()
}

// Level returns the last recorded peak, faded exponentially with age.
func (m *levelMeter) Level() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.peak == 0 {
		return 0
	}
	age := m.clock.Since(m.at)
	return m.peak * math.Exp(-float64(age)/float64(meterFalloff))
}

type meterTap struct {
	source beep.Streamer
	meter  *levelMeter
}

func (t *meterTap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.source.Stream(samples)
	if n > 0 {
		t.meter.record(samples[:n])
	}
	return n, ok
}

func (t *meterTap) Err() error { return t.source.Err() }
