package core

// Grid stores a 2D grid of cells in row-major order. Neighbor lookups are
// bounded: they never wrap across a row and never leave the backing slice.
type Grid[T any] struct {
	W, H int
	data []T
}

// NewGrid allocates a zeroed grid with the given dimensions.
func NewGrid[T any](w, h int) *Grid[T] {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid[T]{W: w, H: h, data: make([]T, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid[T]) Cells() []T { return g.data }

// Len returns the number of cells.
func (g *Grid[T]) Len() int { return len(g.data) }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid[T]) Index(x, y int) int { return y*g.W + x }

// XY returns the coordinates for the linear index i.
func (g *Grid[T]) XY(i int) (int, int) { return i % g.W, i / g.W }

// InBounds reports whether (x, y) lies inside the grid.
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.W && y < g.H
}

// At returns a pointer to the cell at (x, y), or nil when out of range.
func (g *Grid[T]) At(x, y int) *T {
	if !g.InBounds(x, y) {
		return nil
	}
	return &g.data[g.Index(x, y)]
}

// Neighbor returns the index offset from i by (dx, dy) and whether it exists.
func (g *Grid[T]) Neighbor(i, dx, dy int) (int, bool) {
	if i < 0 || i >= len(g.data) {
		return -1, false
	}
	x, y := g.XY(i)
	x += dx
	y += dy
	if !g.InBounds(x, y) {
		return -1, false
	}
	return g.Index(x, y), true
}

// Clear fills the grid with zero values.
func (g *Grid[T]) Clear() {
	clear(g.data)
}
