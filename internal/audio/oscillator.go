package audio

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

// Click shape: a square wave that ramps exponentially from near silence to
// peakGain in clickAttack, back down by clickDecay and stops at clickLength.
const (
	DefaultFrequency = 1100.0

	floorGain   = 0.0001
	peakGain    = 0.12
	clickAttack = 10 * time.Millisecond
	clickDecay  = 50 * time.Millisecond
	clickLength = 60 * time.Millisecond
)

// squareWave is an endless square oscillator at unity gain.
type squareWave struct {
	freq  float64
	phase float64
	rate  beep.SampleRate
}

func (o *squareWave) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		val := -1.0
		if o.phase < 0.5 {
			val = 1.0
		}
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
	}
	return len(samples), true
}

func (o *squareWave) Err() error { return nil }

// expEnvelope multiplies its source by floor→peak→floor exponential ramps and
// ends the stream after total samples.
type expEnvelope struct {
	streamer beep.Streamer
	position int
	attack   int
	decay    int
	total    int
}

func newExpEnvelope(s beep.Streamer, rate beep.SampleRate) *expEnvelope {
	return &expEnvelope{
		streamer: s,
		attack:   rate.N(clickAttack),
		decay:    rate.N(clickDecay),
		total:    rate.N(clickLength),
	}
}

func (e *expEnvelope) gain(pos int) float64 {
	switch {
	case pos < e.attack:
		return floorGain * math.Pow(peakGain/floorGain, float64(pos)/float64(e.attack))
	case pos < e.decay:
		return peakGain * math.Pow(floorGain/peakGain, float64(pos-e.attack)/float64(e.decay-e.attack))
	default:
		return floorGain
	}
}

func (e *expEnvelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.total {
		return 0, false
	}
	if remaining := e.total - e.position; len(samples) > remaining {
		samples = samples[:remaining]
	}
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		g := e.gain(e.position)
		samples[i][0] *= g
		samples[i][1] *= g
		e.position++
	}
	return n, ok
}

func (e *expEnvelope) Err() error { return e.streamer.Err() }

// renderClick pre-renders the tick so every Click replays a buffer instead of
// synthesizing on the speaker goroutine.
func renderClick(freq float64, rate beep.SampleRate) *beep.Buffer {
	buf := beep.NewBuffer(beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2})
	buf.Append(newExpEnvelope(&squareWave{freq: freq, rate: rate}, rate))
	return buf
}
