package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/iburimskiy/prize-wheel/internal/audio"
	"github.com/iburimskiy/prize-wheel/internal/wheel"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

const (
	WindowWidth  = 860
	WindowHeight = 900

	// Button dimensions
	ButtonWidth  = 140
	ButtonHeight = 44
	ButtonGap    = 16

	// Modal panel
	ModalWidth   = 420
	ModalHeight  = 220
	ResultsWidth = 640
	ResultsRowH  = 22

	PointerWidth  = 28
	PointerHeight = 34
)

// Environment variables recognised on top of the YAML file.
const (
	envConfig       = "WHEEL_CONFIG"
	envSegmentsFile = "WHEEL_SEGMENTS_FILE"
	envAudioEnabled = "WHEEL_AUDIO_ENABLED"
	envVolume       = "WHEEL_VOLUME"
	envTickSound    = "WHEEL_TICK_SOUND"
	envLogLevel     = "WHEEL_LOG_LEVEL"
)

type Config struct {
	Title        string       `yaml:"title"`
	Segments     []string     `yaml:"segments"`
	SegmentsFile string       `yaml:"segments_file"`
	LogLevel     string       `yaml:"log_level"`
	Audio        AudioConfig  `yaml:"audio"`
	Timing       TimingConfig `yaml:"timing"`
}

type AudioConfig struct {
	Enabled    *bool   `yaml:"enabled"`
	Volume     float64 `yaml:"volume"`
	SampleRate int     `yaml:"sample_rate"`
	Frequency  float64 `yaml:"frequency"`
	TickSound  string  `yaml:"tick_sound"`
}

// TimingConfig overrides animation constants, in milliseconds. Zero keeps the
// default.
type TimingConfig struct {
	FrameMS          int     `yaml:"frame_ms"`
	MinSpinDegrees   float64 `yaml:"min_spin_degrees"`
	SpinDegreesRange float64 `yaml:"spin_degrees_range"`
	MinSpinMS        int     `yaml:"min_spin_ms"`
	SpinRangeMS      int     `yaml:"spin_range_ms"`
	SettleDelayMS    int     `yaml:"settle_delay_ms"`
	RedrawDelayMS    int     `yaml:"redraw_delay_ms"`
	ResultsDelayMS   int     `yaml:"results_delay_ms"`
	TypeIntervalMS   int     `yaml:"type_interval_ms"`
}

func Default() *Config {
	enabled := true
	return &Config{
		Title:    "Spin the Wheel",
		LogLevel: "info",
		Audio: AudioConfig{
			Enabled:    &enabled,
			Volume:     1,
			SampleRate: 44100,
			Frequency:  audio.DefaultFrequency,
		},
	}
}

// Load builds the configuration: .env (if present), then the YAML file at
// path or $WHEEL_CONFIG, then WHEEL_* overrides. Without any file the
// built-in roster is used.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := Default()
	if path == "" {
		path = os.Getenv(envConfig)
	}
	if path != "" {
		if err := cfg.readFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if cfg.SegmentsFile != "" {
		names, err := LoadNames(cfg.SegmentsFile)
		if err != nil {
			return nil, err
		}
		cfg.Segments = names
	}
	if len(cfg.Segments) == 0 {
		cfg.Segments = DefaultSegments()
	}
	return cfg, nil
}

func (c *Config) readFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(envSegmentsFile); v != "" {
		c.SegmentsFile = v
	}
	if v := os.Getenv(envTickSound); v != "" {
		c.Audio.TickSound = v
	}
	if v := os.Getenv(envLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(envAudioEnabled); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", envAudioEnabled, v, err)
		}
		c.Audio.Enabled = &enabled
	}
	if v := os.Getenv(envVolume); v != "" {
		vol, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", envVolume, v, err)
		}
		c.Audio.Volume = vol
	}
	return nil
}

// Level parses LogLevel, defaulting to info.
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || c.LogLevel == "" {
		return zerolog.InfoLevel
	}
	return lvl
}

// AudioDevice converts the audio section for audio.NewDevice.
func (c *Config) AudioDevice() audio.Config {
	out := audio.DefaultConfig()
	if c.Audio.Enabled != nil {
		out.Enabled = *c.Audio.Enabled
	}
	out.Volume = clamp01(c.Audio.Volume)
	if c.Audio.SampleRate > 0 {
		out.SampleRate = c.Audio.SampleRate
	}
	if c.Audio.Frequency > 0 {
		out.Frequency = c.Audio.Frequency
	}
	out.TickSound = c.Audio.TickSound
	return out
}

// WheelTiming applies the overrides to the engine defaults.
func (c *Config) WheelTiming() wheel.Timing {
	t := wheel.DefaultTiming()
	o := c.Timing
	setMS(&t.FrameQuantum, o.FrameMS)
	setMS(&t.MinSpinDuration, o.MinSpinMS)
	setMS(&t.SpinDurationRange, o.SpinRangeMS)
	setMS(&t.SettleDelay, o.SettleDelayMS)
	setMS(&t.RedrawDelay, o.RedrawDelayMS)
	setMS(&t.ResultsDelay, o.ResultsDelayMS)
	setMS(&t.TypeInterval, o.TypeIntervalMS)
	if o.MinSpinDegrees > 0 {
		t.MinSpinDegrees = o.MinSpinDegrees
	}
	if o.SpinDegreesRange > 0 {
		t.SpinDegreesRange = o.SpinDegreesRange
	}
	return t
}

func setMS(d *time.Duration, ms int) {
	if ms > 0 {
		*d = time.Duration(ms) * time.Millisecond
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
