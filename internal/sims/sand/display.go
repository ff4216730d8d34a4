package sand

import "image/color"

var sandPalette = buildSandPalette()

// Palette exposes the color palette used for rendering, indexed by Material.
// The last entry colors unknown values.
func (w *World) Palette() []color.RGBA {
	return sandPalette
}

func buildSandPalette() []color.RGBA {
	palette := make([]color.RGBA, materialCount+1)
	for i := range palette {
		palette[i] = materialColor(Material(i))
	}
	return palette
}

func materialColor(m Material) color.RGBA {
	switch m {
	case Empty:
		return color.RGBA{A: 255}
	case SolidWhite:
		return color.RGBA{R: 245, G: 245, B: 245, A: 255}
	case SolidRed:
		return color.RGBA{R: 230, G: 41, B: 55, A: 255}
	case LiquidBlue:
		return color.RGBA{R: 0, G: 121, B: 241, A: 255}
	case StillGrey:
		return color.RGBA{R: 80, G: 80, B: 80, A: 255}
	default:
		return color.RGBA{R: 200, G: 122, B: 255, A: 255}
	}
}

// Cells returns the material of every cell in screen order (row 0 on top),
// one byte per cell, for palette rendering.
func (w *World) Cells() []uint8 {
	g := w.grid
	cells := g.Cells()
	for y := 0; y < g.H; y++ {
		src := cells[g.Index(0, y):g.Index(0, y)+g.W]
		dst := w.display[(g.H-1-y)*g.W:]
		for x, c := range src {
			dst[x] = uint8(c.Material)
		}
	}
	return w.display
}

// Materials lists the paintable materials for selection widgets.
func (w *World) Materials() []uint8 {
	paintable := Paintable()
	out := make([]uint8, len(paintable))
	for i, m := range paintable {
		out[i] = uint8(m)
	}
	return out
}

// SelectedMaterial returns the brush material as a palette index.
func (w *World) SelectedMaterial() uint8 { return uint8(w.selected) }

// SelectMaterial changes the brush material from a palette index.
func (w *World) SelectMaterial(m uint8) bool { return w.Select(Material(m)) }
