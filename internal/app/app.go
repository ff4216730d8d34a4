//go:build ebiten

package app

import (
	"image/color"
	"time"

	"cand/internal/core"
	"cand/internal/render"
	"cand/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type paletteProvider interface {
	Palette() []color.RGBA
}

type cellSizer interface {
	CellSize() int
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	ctrl    *Controller
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	palette    []color.RGBA
	panelWidth int
	drawCells  bool
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, seed int64, panelWidth int) *Game {
	size := sim.Size()
	g := &Game{
		sim:        sim,
		ctrl:       NewController(sim, seed, 60),
		painter:    render.NewGridPainter(size.W, size.H),
		panelWidth: max(panelWidth, 0),
		drawCells:  true,
	}
	if pp, ok := sim.(paletteProvider); ok {
		g.palette = pp.Palette()
	} else {
		g.palette = []color.RGBA{{A: 255}, {R: 255, G: 255, B: 255, A: 255}}
	}
	g.overlay = ui.NewOverlay(sim, g.scale())
	g.hud = ui.NewHUD(sim, g.panelWidth)
	g.hud.OnReset = g.ctrl.Reset
	return g
}

func (g *Game) scale() int {
	if cs, ok := g.sim.(cellSizer); ok {
		return max(cs.CellSize(), 1)
	}
	return 1
}

func (g *Game) viewSize() (int, int) {
	size := g.sim.Size()
	scale := g.scale()
	return size.W * scale, size.H * scale
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.ctrl.SetSeed(time.Now().UnixNano())
		g.ctrl.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		g.drawCells = !g.drawCells
	}
	g.overlay.Update()

	viewW, _ := g.viewSize()
	panelClick := g.hud.Update(viewW)

	mx, my := ebiten.CursorPosition()
	g.ctrl.Frame(Input{
		CursorX:      float64(mx),
		CursorY:      float64(my),
		PaintPressed: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		PaintHeld:    ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		PanelClick:   panelClick || mx >= viewW,
		StepPressed:  inpututil.IsKeyJustPressed(ebiten.KeyN),
		StepHeld:     ebiten.IsKeyPressed(ebiten.KeyN),
		Reset:        inpututil.IsKeyJustPressed(ebiten.KeyR),
		ToggleLines:  inpututil.IsKeyJustPressed(ebiten.KeyG),
		Faster:       ebiten.IsKeyPressed(ebiten.KeyEqual),
		Slower:       ebiten.IsKeyPressed(ebiten.KeyMinus),
		Elapsed:      time.Second / time.Duration(max(ebiten.TPS(), 1)),
	})
	g.overlay.SetScale(g.scale())
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	size := g.sim.Size()
	if g.drawCells {
		g.painter.Blit(screen, g.sim.Cells(), size.W, size.H, g.palette, g.scale())
	}
	g.overlay.Draw(screen, g.ctrl.TickLabel())
	viewW, viewH := g.viewSize()
	g.hud.Draw(screen, viewW, viewH)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.viewSize()
	return w + g.panelWidth, h
}
