package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"sync"
	"time"

	"cand/internal/app"
	"cand/internal/sims/sand"
)

func main() {
	steps := flag.Int("steps", 600, "ticks to simulate per seed")
	seeds := flag.Int("seeds", 8, "number of seeds to run, starting at -seed")
	first := flag.Int64("seed", 1, "first seed")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel runs")
	var overrides app.KVList
	flag.Var(&overrides, "set", "sim parameter override in key=value form (repeatable)")
	flag.Parse()

	if *steps <= 0 || *seeds <= 0 {
		log.Fatalf("steps and seeds must be positive (got %d, %d)", *steps, *seeds)
	}
	base := sand.FromMap(overrides.Map())
	size := sand.NewWithConfig(base).Size()
	fmt.Printf("Pouring %d seeds on a %dx%d grid (%d workers, %d steps)\n", *seeds, size.W, size.H, *workers, *steps)

	jobs := make(chan int64)
	results := make(chan sand.PourResult)
	var wg sync.WaitGroup

	for i := 0; i < max(*workers, 1); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range jobs {
				cfg := base
				cfg.Seed = seed
				results <- sand.RunPour(cfg, *steps)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for i := 0; i < *seeds; i++ {
			jobs <- *first + int64(i)
		}
		close(jobs)
	}()

	start := time.Now()
	var all []sand.PourResult
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Seed < all[j].Seed })
	elapsed := time.Since(start)

	violations := 0
	for _, res := range all {
		settled := "moving"
		if res.Settled() {
			settled = "settled"
		}
		fmt.Printf("seed=%d placed=%d occupied=%d lastChange=%d/%d %s violations=%d\n",
			res.Seed, res.Placed, res.Occupied, res.LastChange, res.Steps, settled, res.Violations)
		violations += res.Violations
	}
	fmt.Printf("\n%d runs in %s, %d conservation violations\n", len(all), elapsed.Round(time.Millisecond), violations)
	if violations > 0 {
		log.Fatal("material was created or destroyed during a tick")
	}
}
