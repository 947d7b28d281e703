//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"golife/internal/app"
	"golife/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := life.DefaultConfig()
	cfg.Dim = 200
	cfg.Density = 0.3
	cfg.Bind(flag.CommandLine)
	scale := flag.Int("scale", 3, "pixel scale multiplier")
	tps := flag.Int("tps", 60, "ticks per second")
	rate := flag.Int("rate", 15, "generations per second")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	for _, w := range cfg.Warnings() {
		log.Printf("warning: %v", w)
	}

	sim, err := life.New(cfg)
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(sim, *scale, cfg.Seed, *rate)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("golife — " + sim.Strategy())
	ebiten.SetTPS(*tps)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
	if err := sim.Err(); err != nil {
		log.Fatal(err)
	}
}
