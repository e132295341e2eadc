package main

import (
	"errors"
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/iburimskiy/prize-wheel/internal/audio"
	"github.com/iburimskiy/prize-wheel/internal/config"
	"github.com/iburimskiy/prize-wheel/internal/game"
	"github.com/iburimskiy/prize-wheel/internal/wheel"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config (default $WHEEL_CONFIG)")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	zerolog.SetGlobalLevel(cfg.Level())

	device := audio.NewDevice(cfg.AudioDevice())
	defer device.Close()

	engine := wheel.NewEngine(cfg.Segments,
		wheel.WithTiming(cfg.WheelTiming()),
		wheel.WithAudio(func() (wheel.Clicker, error) {
			if err := device.Init(); err != nil {
				return nil, err
			}
			return device, nil
		}),
	)

	g, err := game.New(cfg, engine, device)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up window")
	}

	log.Info().
		Str("session", engine.Session()).
		Int("segments", engine.Total()).
		Msg("wheel ready")

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(cfg.Title + " - Enter: spin / OK, Esc/Q: quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal().Err(err).Msg("game loop failed")
	}
}
