package sand

import (
	"math"

	"cand/internal/core"
)

// Resize discards the grid and reallocates it, all Empty, for a new cell
// size. The size is rounded to the nearest integer and clamped to at least 1;
// the grid is the configured extent divided by it. The placed counter resets.
// Resize must not be called during Step.
func (w *World) Resize(cellSize float64) {
	size := clampCellSize(cellSize)
	w.grid = core.NewGrid[Cell](w.cfg.ExtentW/size, w.cfg.ExtentH/size)
	w.display = make([]uint8, w.grid.Len())
	w.cellSize = size
	w.pendingCellSize = size
	w.placed = 0
}

func clampCellSize(size float64) int {
	if math.IsNaN(size) || size < 1 {
		return 1
	}
	if size > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(math.Round(size))
}
