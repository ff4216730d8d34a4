// Package sand implements a falling-sand sandbox: sand and solids fall and
// pile, liquids flow sideways and get displaced when something solid is
// underneath them, fixed blocks never move.
//
// Cells are stored row-major with row 0 at the bottom, so "down" is -W in
// linear index space. Screen-facing helpers (CellAt, HoveredAt, Cells) flip
// rows so callers can keep a top-left origin.
package sand

import (
	"cand/internal/core"
)

// World owns the cell grid and the interaction settings of the sandbox.
type World struct {
	cfg Config

	grid     *core.Grid[Cell]
	cellSize int
	// pendingCellSize is applied by the next Reset.
	pendingCellSize int

	selected    Material
	brushRadius int
	tps         int
	manual      bool
	tap         bool
	lines       bool

	placed int
	ticks  int

	display []uint8
	rng     core.Rand
}

// New returns a sandbox using the default configuration.
func New() *World {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig returns a sandbox configured from the provided options. The
// grid starts all Empty.
func NewWithConfig(cfg Config) *World {
	if cfg.ExtentW <= 0 {
		cfg.ExtentW = 1
	}
	if cfg.ExtentH <= 0 {
		cfg.ExtentH = 1
	}
	if cfg.DisplaceBudget <= 0 {
		cfg.DisplaceBudget = DisplaceBudget
	}
	if !cfg.Material.Valid() || cfg.Material == Empty {
		cfg.Material = SolidWhite
	}
	w := &World{
		cfg:         cfg,
		selected:    cfg.Material,
		brushRadius: max(cfg.BrushRadius, 0),
		tps:         max(cfg.TPS, 0),
		manual:      cfg.Manual,
		tap:         cfg.Tap,
		lines:       cfg.Lines,
		rng:         core.NewRNG(cfg.Seed),
	}
	w.Resize(float64(cfg.CellSize))
	return w
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "sand" }

// Size reports the grid dimensions in cells.
func (w *World) Size() core.Size { return core.Size{W: w.grid.W, H: w.grid.H} }

// Len returns the number of cells.
func (w *World) Len() int { return w.grid.Len() }

// CellSize returns the active pixels-per-cell.
func (w *World) CellSize() int { return w.cellSize }

// PendingCellSize returns the cell size the next Reset applies.
func (w *World) PendingCellSize() int { return w.pendingCellSize }

// SetPendingCellSize stores a cell size to apply on the next Reset.
func (w *World) SetPendingCellSize(size float64) {
	w.pendingCellSize = clampCellSize(size)
}

// Reset clears the grid, applying any pending cell size, and reseeds the
// tie-breaking source. A zero seed reuses the configured seed.
func (w *World) Reset(seed int64) {
	if seed == 0 {
		seed = w.cfg.Seed
	}
	w.rng.Seed(seed)
	w.Resize(float64(w.pendingCellSize))
}

// SetRand swaps the tie-breaking source.
func (w *World) SetRand(r core.Rand) {
	if r != nil {
		w.rng = r
	}
}

// Index returns the linear index of (x, y).
func (w *World) Index(x, y int) int { return w.grid.Index(x, y) }

// At returns the cell at (x, y). Out-of-range coordinates yield an empty cell.
func (w *World) At(x, y int) Cell {
	if c := w.grid.At(x, y); c != nil {
		return *c
	}
	return Cell{}
}

// CellAtIndex returns the cell at linear index i, or an empty cell when i is
// out of range.
func (w *World) CellAtIndex(i int) Cell {
	if i < 0 || i >= w.grid.Len() {
		return Cell{}
	}
	return w.grid.Cells()[i]
}

// Set writes a material at (x, y) regardless of what is there, keeping the
// hover flag. It reports false for out-of-range coordinates.
func (w *World) Set(x, y int, m Material) bool {
	c := w.grid.At(x, y)
	if c == nil || !m.Valid() {
		return false
	}
	c.Material = m
	return true
}

// Selected returns the material the brush paints.
func (w *World) Selected() Material { return w.selected }

// Select changes the brush material. Empty and unknown materials are rejected.
func (w *World) Select(m Material) bool {
	if m == Empty || !m.Valid() {
		return false
	}
	w.selected = m
	return true
}

// BrushRadius returns the brush radius in cells.
func (w *World) BrushRadius() int { return w.brushRadius }

// SetBrushRadius changes the brush radius, clamping negatives to zero.
func (w *World) SetBrushRadius(r int) { w.brushRadius = max(r, 0) }

// TPS returns the configured ticks per second.
func (w *World) TPS() int { return w.tps }

// SetTPS changes the tick rate, clamping negatives to zero.
func (w *World) SetTPS(tps int) { w.tps = max(tps, 0) }

// Manual reports whether ticks are driven by the step key.
func (w *World) Manual() bool { return w.manual }

// SetManual toggles manual stepping.
func (w *World) SetManual(on bool) { w.manual = on }

// Tap reports whether painting and manual steps trigger on press only.
func (w *World) Tap() bool { return w.tap }

// SetTap toggles tap mode.
func (w *World) SetTap(on bool) { w.tap = on }

// Lines reports whether the grid line overlay is enabled.
func (w *World) Lines() bool { return w.lines }

// SetLines toggles the grid line overlay.
func (w *World) SetLines(on bool) { w.lines = on }

// Placed returns the number of cells painted since the last resize.
func (w *World) Placed() int { return w.placed }

// Ticks returns the number of completed steps since creation.
func (w *World) Ticks() int { return w.ticks }

// Occupied counts the cells currently holding material.
func (w *World) Occupied() int {
	n := 0
	for _, c := range w.grid.Cells() {
		if c.Occupied() {
			n++
		}
	}
	return n
}

func init() {
	core.Register("sand", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
