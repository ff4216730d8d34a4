package sand

import (
	"slices"

	"cand/internal/core"
)

// PourResult captures telemetry from a deterministic headless pour used for
// benchmarking and regression checks.
type PourResult struct {
	Seed int64
	// Placed is the number of cells painted during the run.
	Placed int
	// Occupied is the number of occupied cells at the end of the run.
	Occupied int
	// Violations counts ticks that changed the number of occupied cells.
	Violations int
	// LastChange is the last tick that changed any cell, or -1.
	LastChange int
	// Steps is the number of ticks simulated.
	Steps int
}

// Settled reports whether the grid stopped changing before the run ended.
func (r PourResult) Settled() bool {
	return r.LastChange < r.Steps-1
}

// RunPour builds a world from cfg, lays a few fixed ledges, then pours
// alternating materials from random columns along the top for the first half
// of the run and lets the grid settle for the second half. The layout and
// every tie-break derive from cfg.Seed.
func RunPour(cfg Config, steps int) PourResult {
	world := NewWithConfig(cfg)
	world.Reset(cfg.Seed)
	res := PourResult{Seed: cfg.Seed, LastChange: -1, Steps: steps}

	layout := core.NewRNG(cfg.Seed ^ 0x5eed)
	size := world.Size()
	for i := 0; i < 3; i++ {
		y := size.H/4 + layout.IntN(max(size.H/2, 1))
		x0 := layout.IntN(size.W)
		for x := x0; x < min(x0+size.W/4, size.W); x++ {
			world.Set(x, y, StillGrey)
		}
	}

	pour := []Material{SolidWhite, LiquidBlue, SolidRed, LiquidBlue}
	radius := max(world.BrushRadius(), 1)
	prev := slices.Clone(world.Cells())
	for tick := 0; tick < steps; tick++ {
		if tick < steps/2 && tick%4 == 0 {
			world.Select(pour[(tick/4)%len(pour)])
			world.Hover(layout.IntN(size.W), size.H-1, radius)
			world.Paint(true)
			world.ClearHover()
		}

		before := world.Occupied()
		world.Step()
		if world.Occupied() != before {
			res.Violations++
		}

		cells := world.Cells()
		if !slices.Equal(prev, cells) {
			res.LastChange = tick
			copy(prev, cells)
		}
	}
	res.Placed = world.Placed()
	res.Occupied = world.Occupied()
	return res
}
