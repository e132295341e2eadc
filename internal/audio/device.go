// Package audio plays the boundary tick of the spinning wheel through the
// beep speaker. The device opens lazily on the first spin; when it cannot,
// the wheel keeps spinning without sound.
package audio

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

var ErrDisabled = errors.New("audio: disabled by configuration")

// maxTickSound caps how much of a custom tick file is kept.
const maxTickSound = 500 * time.Millisecond

// Config controls the tick output.
type Config struct {
	Enabled    bool
	Volume     float64 // 0..1
	SampleRate int
	Frequency  float64
	TickSound  string // optional wav/mp3/flac replacing the synthesized click
}

func DefaultConfig() Config {
	return Config{
		Enabled:    true,
		Volume:     1,
		SampleRate: 44100,
		Frequency:  DefaultFrequency,
	}
}

// Device owns the speaker for the session. Init is idempotent; Click and
// Level are safe to call before Init and do nothing until it succeeds.
type Device struct {
	cfg   Config
	click *beep.Buffer
	meter *levelMeter
	play  func(...beep.Streamer)

	initDone bool
}

func NewDevice(cfg Config) *Device {
	return &Device{
		cfg:   cfg,
		meter: newLevelMeter(clockwork.NewRealClock()),
		play:  speaker.Play,
	}
}

// Init prepares the click sample and opens the speaker once.
func (d *Device) Init() error {
	if d.initDone {
		return nil
	}
	if !d.cfg.Enabled {
		return ErrDisabled
	}

	rate := beep.SampleRate(d.cfg.SampleRate)
	click, err := d.loadClick(rate)
	if err != nil {
		return err
	}

	if err := speaker.Init(rate, rate.N(time.Second/20)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	d.click = click
	d.initDone = true
	log.Debug().Int("sample_rate", d.cfg.SampleRate).Int("click_samples", click.Len()).Msg("audio ready")
	return nil
}

func (d *Device) loadClick(rate beep.SampleRate) (*beep.Buffer, error) {
	if d.cfg.TickSound == "" {
		freq := d.cfg.Frequency
		if freq <= 0 {
			freq = DefaultFrequency
		}
		return renderClick(freq, rate), nil
	}
	return decodeClick(d.cfg.TickSound, rate)
}

// Click plays one tick. Overlapping ticks are mixed by the speaker.
func (d *Device) Click() {
	if !d.initDone {
		return
	}
	var s beep.Streamer = d.click.Streamer(0, d.click.Len())
	if d.cfg.Volume != 1 {
		s = &effects.Volume{
			Streamer: s,
			Base:     2,
			Volume:   math.Log2(math.Max(d.cfg.Volume, 1e-6)),
			Silent:   d.cfg.Volume <= 0,
		}
	}
	d.play(d.meter.wrap(s))
}

// Level is the recent tick loudness in [0, 1] relative to the synthesized
// click's peak, fading between ticks.
func (d *Device) Level() float64 {
	return math.Min(1, d.meter.Level()/peakGain)
}

// Close stops anything still playing.
func (d *Device) Close() {
	if !d.initDone {
		return
	}
	speaker.Lock()
	speaker.Clear()
	speaker.Unlock()
}

// decodeClick loads a custom tick sample, resampled to the speaker rate and
// buffered in memory so the file is closed before the first spin.
func decodeClick(path string, rate beep.SampleRate) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open tick sound: %w", err)
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	default:
		_ = f.Close()
		return nil, errors.New("unsupported tick sound type: " + ext)
	}
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("decode tick sound %s: %w", path, err)
	}
	defer streamer.Close()

	var s beep.Streamer = beep.Take(format.SampleRate.N(maxTickSound), streamer)
	if format.SampleRate != rate {
		s = beep.Resample(4, format.SampleRate, rate, s)
	}

	buf := beep.NewBuffer(beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2})
	buf.Append(s)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("read tick sound %s: %w", path, err)
	}
	return buf, nil
}
