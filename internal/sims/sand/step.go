package sand

import "cand/internal/core"

// Step advances the sandbox by one tick. Cells are visited once, in
// increasing index order, and moved in place. A cell written as a move
// destination is flagged Updated and skipped for the rest of the pass; the
// flags are cleared once the pass completes.
func (w *World) Step() {
	cells := w.grid.Cells()
	for i := range cells {
		c := cells[i]
		if !c.Occupied() || c.Updated || c.Has(CategoryFixed) {
			continue
		}
		w.update(i)
	}
	for i := range cells {
		cells[i].Updated = false
	}
	w.ticks++
}

func (w *World) update(i int) {
	cells := w.grid.Cells()
	c := cells[i]

	below, ok := w.grid.Neighbor(i, 0, -1)
	if !ok {
		return // on the floor
	}

	if c.Has(CategoryLiquid) && cells[below].Has(CategorySolid) {
		if dst, found := w.Displace(i, w.cfg.DisplaceBudget); found {
			w.move(i, dst)
		} else {
			w.swap(i, below)
		}
		return
	}

	if !cells[below].Occupied() {
		w.move(i, below)
		return
	}

	left, leftFree := w.free(i, -1, -1)
	right, rightFree := w.free(i, 1, -1)
	switch {
	case leftFree && rightFree:
		if w.rng.Bool() {
			w.move(i, left)
		} else {
			w.move(i, right)
		}
	case leftFree:
		w.move(i, left)
	case rightFree:
		w.move(i, right)
	case c.Has(CategoryLiquid):
		w.spill(i)
	}
}

// spill moves a liquid sideways into a random free lateral neighbor.
func (w *World) spill(i int) {
	dir := core.Sign(w.rng)
	dst, ok := w.free(i, dir, 0)
	if !ok {
		dst, ok = w.free(i, -dir, 0)
	}
	if ok {
		w.move(i, dst)
	}
}

// free returns the neighbor of i at (dx, dy) and whether it exists and is empty.
func (w *World) free(i, dx, dy int) (int, bool) {
	n, ok := w.grid.Neighbor(i, dx, dy)
	if !ok {
		return -1, false
	}
	return n, !w.grid.Cells()[n].Occupied()
}

// move transfers the material of src into dst and empties src. Hover flags
// stay with their positions.
func (w *World) move(src, dst int) {
	cells := w.grid.Cells()
	cells[dst].Material = cells[src].Material
	cells[dst].Updated = true
	cells[src].Material = Empty
	cells[src].Updated = false
}

// swap exchanges the materials of a and b and marks both as updated so
// neither is processed again this tick.
func (w *World) swap(a, b int) {
	cells := w.grid.Cells()
	cells[a].Material, cells[b].Material = cells[b].Material, cells[a].Material
	cells[a].Updated = true
	cells[b].Updated = true
}
