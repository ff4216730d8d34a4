package sand

// CellAt maps a point in grid pixel space (origin top left, y down) to cell
// coordinates. Points on or outside the drawable extent report ok=false.
func (w *World) CellAt(px, py float64) (x, y int, ok bool) {
	width := float64(w.grid.W * w.cellSize)
	height := float64(w.grid.H * w.cellSize)
	if px < 0 || py < 0 || px >= width || py >= height {
		return 0, 0, false
	}
	x = int(px) / w.cellSize
	sy := int(py) / w.cellSize
	return x, w.grid.H - 1 - sy, true
}

// Hover recomputes the hover set: exactly the cells within a square of
// half-width radius-1 around (x, y). A radius of zero or a point outside the
// grid leaves nothing hovered.
func (w *World) Hover(x, y, radius int) {
	w.ClearHover()
	if radius <= 0 || !w.grid.InBounds(x, y) {
		return
	}
	r := radius - 1
	x0, x1 := max(x-r, 0), min(x+r, w.grid.W-1)
	y0, y1 := max(y-r, 0), min(y+r, w.grid.H-1)
	cells := w.grid.Cells()
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			cells[w.grid.Index(cx, cy)].Hovered = true
		}
	}
}

// ClearHover unmarks every cell.
func (w *World) ClearHover() {
	cells := w.grid.Cells()
	for i := range cells {
		cells[i].Hovered = false
	}
}

// HoveredAt reports the hover flag at screen coordinates (row 0 on top).
func (w *World) HoveredAt(sx, sy int) bool {
	return w.At(sx, w.grid.H-1-sy).Hovered
}

// Paint fills every hovered empty cell with the selected material when commit
// is set. Occupied cells are never overwritten. It returns the number of
// cells written, which is also added to the placed counter.
func (w *World) Paint(commit bool) int {
	if !commit || w.selected == Empty {
		return 0
	}
	n := 0
	cells := w.grid.Cells()
	for i := range cells {
		c := &cells[i]
		if !c.Hovered || c.Occupied() {
			continue
		}
		c.Material = w.selected
		n++
	}
	w.placed += n
	return n
}
