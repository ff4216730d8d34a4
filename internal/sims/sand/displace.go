package sand

import "cand/internal/core"

const (
	// DisplaceBudget is the default iteration budget of Displace.
	DisplaceBudget = 6
	// NoDestination is returned by Displace when no empty cell was reached.
	NoDestination = -1
)

// Displace searches for an empty cell to move the liquid at src into. The
// search walks from src, starting downward, tunnelling through liquid. When
// the next step is blocked it turns: up if the cell above the search position
// is empty or liquid, otherwise toward the open side, picking randomly when
// both sides are open. Every examined step costs one iteration; grid edges
// count as blocked. It returns the destination index, or NoDestination and
// false when the budget runs out or the search is boxed in.
func (w *World) Displace(src, budget int) (int, bool) {
	cells := w.grid.Cells()
	if src < 0 || src >= len(cells) || budget <= 0 {
		return NoDestination, false
	}

	pos := src
	dx, dy := 0, -1
	for iter := 0; iter < budget; iter++ {
		if next, ok := w.grid.Neighbor(pos, dx, dy); ok {
			switch {
			case !cells[next].Occupied():
				return next, true
			case cells[next].Has(CategoryLiquid):
				pos = next
				continue
			}
		}

		var turned bool
		dx, dy, turned = w.turn(pos)
		if !turned {
			return NoDestination, false
		}
	}
	return NoDestination, false
}

// turn picks a new search direction at pos.
func (w *World) turn(pos int) (dx, dy int, ok bool) {
	if w.open(pos, 0, 1) {
		return 0, 1, true
	}
	left := w.open(pos, -1, 0)
	right := w.open(pos, 1, 0)
	switch {
	case left && right:
		return core.Sign(w.rng), 0, true
	case left:
		return -1, 0, true
	case right:
		return 1, 0, true
	}
	return 0, 0, false
}

// open reports whether the neighbor exists and is empty or liquid.
func (w *World) open(pos, dx, dy int) bool {
	n, ok := w.grid.Neighbor(pos, dx, dy)
	if !ok {
		return false
	}
	c := w.grid.Cells()[n]
	return !c.Occupied() || c.Has(CategoryLiquid)
}
