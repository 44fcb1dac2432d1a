//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"golife/internal/app"
	"golife/internal/core"
	"golife/internal/session"
)

func main() {
	cfg := core.DefaultConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctrl, err := session.New(cfg)
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(ctrl, cfg)

	ebiten.SetWindowTitle("golife")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.WindowW, cfg.WindowH)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
