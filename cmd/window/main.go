//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/sheikhrachel/go-gol-sim/engine"
	"github.com/sheikhrachel/go-gol-sim/utils"
)

func main() {
	configPath := flag.String("config", "config.json", "path to the JSON configuration")
	flag.Parse()

	cfg, err := utils.LoadConfig(*configPath)
	if err != nil {
		log.Printf("using default configuration: %v", err)
		cfg = utils.DefaultConfig()
	}

	sim, err := engine.NewSimulation(cfg)
	if err != nil {
		log.Fatalf("%+v", err)
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetTPS(cfg.TicksPerSecond)
	ebiten.SetWindowSize(cfg.WindowSize.Width, cfg.WindowSize.Height)

	if err := ebiten.RunGame(newGame(sim, cfg)); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatalf("%+v", err)
	}
}
