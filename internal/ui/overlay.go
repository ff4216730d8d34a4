//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"cand/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type linesProvider interface {
	Lines() bool
}

type indexProvider interface {
	Index(x, y int) int
}

// Overlay draws grid lines, brush outlines and debug text on top of the
// simulation view.
type Overlay struct {
	sim   core.Sim
	scale int

	showIndex bool
	showDebug bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	return &Overlay{sim: sim, scale: scale}
}

// SetScale updates the pixel size of one cell.
func (o *Overlay) SetScale(scale int) { o.scale = scale }

// Update handles the overlay hotkeys: I toggles index labels on hovered
// cells, F3 toggles the debug readout.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyI) {
		o.showIndex = !o.showIndex
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		o.showDebug = !o.showDebug
	}
}

// Draw renders the overlay onto the provided screen. tickLabel is the
// scheduler state shown in the corner, e.g. "TPS: 60" or "TPS: MAN".
func (o *Overlay) Draw(screen *ebiten.Image, tickLabel string) {
	size := o.sim.Size()
	if size.W <= 0 || size.H <= 0 {
		return
	}
	scale := max(o.scale, 1)

	lines := false
	if lp, ok := o.sim.(linesProvider); ok {
		lines = lp.Lines() && scale > 3
	}
	hp, _ := o.sim.(core.HoverProvider)
	ip, _ := o.sim.(indexProvider)

	gridColor := color.RGBA{R: 130, G: 130, B: 130, A: 255}
	hoverColor := color.RGBA{R: 230, G: 230, B: 230, A: 255}
	for sy := 0; sy < size.H; sy++ {
		for sx := 0; sx < size.W; sx++ {
			hovered := hp != nil && hp.HoveredAt(sx, sy)
			if !lines && !hovered {
				continue
			}
			c := gridColor
			if hovered {
				c = hoverColor
			}
			x := float32(sx * scale)
			y := float32(sy * scale)
			vector.StrokeRect(screen, x, y, float32(scale), float32(scale), 1, c, false)
			if hovered && o.showIndex && ip != nil {
				label := fmt.Sprintf("%d", ip.Index(sx, size.H-1-sy))
				ebitenutil.DebugPrintAt(screen, label, int(x), int(y))
			}
		}
	}
	vector.StrokeRect(screen, 0, 0, float32(size.W*scale), float32(size.H*scale), 1, gridColor, false)

	o.drawStats(screen, size.W*scale, tickLabel)
}

func (o *Overlay) drawStats(screen *ebiten.Image, right int, tickLabel string) {
	lines := []string{tickLabel}
	if stats, ok := o.sim.(core.Stats); ok {
		lines = append(lines, fmt.Sprintf("Num: %d", stats.Placed()))
		if o.showDebug {
			lines = append(lines,
				fmt.Sprintf("Real Num: %d", stats.Occupied()),
				fmt.Sprintf("Ticks: %d", stats.Ticks()),
			)
		}
	}
	if o.showDebug {
		lines = append(lines, fmt.Sprintf("FPS: %0.1f", ebiten.ActualFPS()))
	}
	const charWidth, lineStep, margin = 6, 16, 10
	for i, line := range lines {
		x := right - margin - len(line)*charWidth
		ebitenutil.DebugPrintAt(screen, line, x, margin+i*lineStep)
	}
}
