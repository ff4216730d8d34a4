package core

import "sort"

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a cellular automaton must implement.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// Brush is implemented by sims that accept pointer-driven painting. Cell
// coordinates use a bottom-left origin.
type Brush interface {
	CellAt(px, py float64) (x, y int, ok bool)
	Hover(x, y, radius int)
	ClearHover()
	Paint(commit bool) int
}

// HoverProvider exposes the hover state of a cell in screen order (row 0 on
// top), for overlays that outline the brush.
type HoverProvider interface {
	HoveredAt(sx, sy int) bool
}

// MaterialSelector lets the HUD list and pick paintable materials.
type MaterialSelector interface {
	Materials() []uint8
	SelectedMaterial() uint8
	SelectMaterial(m uint8) bool
}

// Stats exposes diagnostic counters for debug overlays.
type Stats interface {
	Placed() int
	Occupied() int
	Ticks() int
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// SimNames returns the registered names in sorted order.
func SimNames() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
