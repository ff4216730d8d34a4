//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"strings"

	"cand/internal/app"
	"cand/internal/core"
	_ "cand/internal/sims/sand"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q (available: %s)", cfg.Sim, strings.Join(core.SimNames(), ", "))
	}

	sim := factory(cfg.Set.Map())
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg.Seed, cfg.Panel)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("cand - " + sim.Name())
	ebiten.SetTPS(cfg.FPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
