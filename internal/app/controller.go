package app

import (
	"strconv"
	"time"

	"cand/internal/core"
)

// Settings is the interaction state a sandbox exposes to the frame loop.
type Settings interface {
	TPS() int
	SetTPS(tps int)
	Manual() bool
	Tap() bool
	BrushRadius() int
	Lines() bool
	SetLines(on bool)
}

// Input is one frame of pointer and keyboard state, already read from the
// window. Cursor coordinates are in grid pixel space.
type Input struct {
	CursorX, CursorY float64

	PaintPressed bool
	PaintHeld    bool
	// PanelClick marks a click consumed by the side panel.
	PanelClick bool

	StepPressed bool
	StepHeld    bool

	Reset       bool
	ToggleLines bool
	Faster      bool
	Slower      bool

	Elapsed time.Duration
}

// Controller applies frame input to a simulation and decides when it ticks.
type Controller struct {
	sim      core.Sim
	brush    core.Brush
	settings Settings
	clock    *core.FixedStep
	seed     int64
}

// NewController wires a controller for sim. Brush painting and settings are
// optional and detected from the sim's methods.
func NewController(sim core.Sim, seed int64, defaultTPS int) *Controller {
	c := &Controller{sim: sim, seed: seed}
	c.brush, _ = sim.(core.Brush)
	c.settings, _ = sim.(Settings)
	tps := defaultTPS
	if c.settings != nil {
		tps = c.settings.TPS()
	}
	c.clock = core.NewFixedStep(tps)
	return c
}

// Reset reinitialises the simulation with the controller's seed.
func (c *Controller) Reset() {
	c.sim.Reset(c.seed)
}

// SetSeed changes the seed used by Reset.
func (c *Controller) SetSeed(seed int64) { c.seed = seed }

// TickLabel describes the current stepping mode for on-screen display.
func (c *Controller) TickLabel() string {
	if c.settings != nil && c.settings.Manual() {
		return "TPS: MAN"
	}
	return "TPS: " + strconv.Itoa(c.clock.TPS())
}

// Frame processes one frame of input and reports whether the sim stepped.
func (c *Controller) Frame(in Input) bool {
	if in.Reset {
		c.Reset()
	}
	if c.settings != nil {
		if in.ToggleLines {
			c.settings.SetLines(!c.settings.Lines())
		}
		tps := c.settings.TPS()
		if in.Slower && tps > 0 {
			tps--
		}
		if in.Faster {
			tps++
		}
		c.settings.SetTPS(tps)
		if c.settings.TPS() != c.clock.TPS() {
			c.clock.SetTPS(c.settings.TPS())
		}
	}

	if c.brush != nil {
		radius := 1
		if c.settings != nil {
			radius = c.settings.BrushRadius()
		}
		if x, y, ok := c.brush.CellAt(in.CursorX, in.CursorY); ok {
			c.brush.Hover(x, y, radius)
		} else {
			c.brush.ClearHover()
		}
		if !in.PanelClick {
			c.brush.Paint(c.commit(in.PaintPressed, in.PaintHeld))
		}
	}

	if !c.due(in) {
		return false
	}
	c.sim.Step()
	return true
}

func (c *Controller) commit(pressed, held bool) bool {
	if c.settings != nil && c.settings.Tap() {
		return pressed
	}
	return held
}

func (c *Controller) due(in Input) bool {
	if c.settings != nil && c.settings.Manual() {
		return core.ManualStep{Tap: c.settings.Tap()}.Due(in.StepPressed, in.StepHeld)
	}
	return c.clock.Advance(in.Elapsed)
}
