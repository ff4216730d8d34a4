//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"cand/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

type paletteProvider interface {
	Palette() []color.RGBA
}

// HUD renders the side panel to the right of the simulation view: material
// swatches, a reset button and the sim's adjustable parameters.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot

	controls     []controlState
	swatches     []image.Rectangle
	resetRect    image.Rectangle
	intSetter    core.IntParameterSetter
	floatSetter  core.FloatParameterSetter
	boolSetter   core.BoolParameterSetter
	selector     core.MaterialSelector
	panelOffsetX int
	title        string

	// OnReset is called when the reset button is pressed.
	OnReset func()

	pixel *ebiten.Image
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	h.title = buildTitle(sim)
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		controls := provider.ParameterControls()
		h.controls = make([]controlState, len(controls))
		for i, ctrl := range controls {
			h.controls[i] = controlState{control: ctrl, value: "--"}
		}
		layoutControls(h.controls, width, controlsTop)
	}
	if selector, ok := sim.(core.MaterialSelector); ok {
		h.selector = selector
		h.swatches = swatchRects(len(selector.Materials()), swatchTop)
	}
	h.resetRect = image.Rect(panelPadding, resetTop, width-panelPadding, resetTop+buttonSize)
	h.intSetter, _ = sim.(core.IntParameterSetter)
	h.floatSetter, _ = sim.(core.FloatParameterSetter)
	h.boolSetter, _ = sim.(core.BoolParameterSetter)
	return h
}

// Update refreshes the cached parameter snapshot from the simulation and
// handles clicks on the panel. It reports whether the click was consumed so
// the caller does not also paint with it.
func (h *HUD) Update(panelOffsetX int) bool {
	if h == nil {
		return false
	}
	h.panelOffsetX = panelOffsetX
	h.refresh()
	return h.handleInput()
}

// Draw paints the HUD panel anchored to the right edge of the simulation view.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		if h.panel != nil {
			h.panel.Dispose()
		}
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawSwatches()
	h.drawButton(h.resetRect, "Reset", true)
	h.drawControls()
	h.drawSummary()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Controls"
	}
	name := sim.Name()
	return fmt.Sprintf("%s%s Controls", strings.ToUpper(name[:1]), name[1:])
}

func (h *HUD) refresh() {
	provider, ok := h.sim.(parameterProvider)
	if !ok {
		h.snapshot = core.ParameterSnapshot{}
		return
	}
	h.snapshot = provider.Parameters()
	paramMap := map[string]core.Parameter{}
	for _, group := range h.snapshot.Groups {
		for _, param := range group.Params {
			paramMap[param.Key] = param
		}
	}
	for i := range h.controls {
		h.controls[i].refresh(paramMap)
	}
}

func (h *HUD) handleInput() bool {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return false
	}
	px := mx - h.panelOffsetX
	if h.selector != nil {
		materials := h.selector.Materials()
		for i, rect := range h.swatches {
			if pointInRect(px, my, rect) && i < len(materials) {
				h.selector.SelectMaterial(materials[i])
				return true
			}
		}
	}
	if pointInRect(px, my, h.resetRect) {
		if h.OnReset != nil {
			h.OnReset()
		}
		return true
	}
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		if state.control.Type == core.ParamTypeBool {
			if !pointInRect(px, my, state.toggleRect) {
				continue
			}
			if h.boolSetter != nil {
				h.boolSetter.SetBoolParameter(state.control.Key, !state.boolValue)
			}
			return true
		}
		if pointInRect(px, my, state.minusRect) {
			h.applyAdjustment(state, -1)
			return true
		}
		if pointInRect(px, my, state.plusRect) {
			h.applyAdjustment(state, 1)
			return true
		}
	}
	return true
}

func (h *HUD) applyAdjustment(state *controlState, direction int) {
	switch state.control.Type {
	case core.ParamTypeInt:
		if h.intSetter == nil {
			return
		}
		if target, changed := stepInt(state.control, state.intValue, direction); changed {
			h.intSetter.SetIntParameter(state.control.Key, target)
		}
	case core.ParamTypeFloat:
		if h.floatSetter == nil {
			return
		}
		if target, changed := stepFloat(state.control, state.floatValue, direction); changed {
			h.floatSetter.SetFloatParameter(state.control.Key, target)
		}
	}
}

func (h *HUD) drawSwatches() {
	face := basicfont.Face7x13
	text.Draw(h.panel, h.title, face, panelPadding, panelPadding+headerBaseline, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	if h.selector == nil {
		return
	}
	pp, ok := h.sim.(paletteProvider)
	if !ok {
		return
	}
	palette := pp.Palette()
	selected := h.selector.SelectedMaterial()
	for i, m := range h.selector.Materials() {
		if i >= len(h.swatches) || int(m) >= len(palette) {
			break
		}
		rect := h.swatches[i]
		if m == selected {
			h.fillRect(rect.Inset(-2), color.RGBA{R: 230, G: 230, B: 240, A: 255})
		}
		h.fillRect(rect, palette[m])
	}
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	for i := range h.controls {
		state := &h.controls[i]
		labelY := state.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, labelY, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		if state.control.Type == core.ParamTypeBool {
			h.drawButton(state.toggleRect, state.value, state.hasValue && h.boolSetter != nil)
			continue
		}
		valueColor := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if !state.hasValue {
			valueColor = color.RGBA{R: 160, G: 160, B: 170, A: 255}
		}
		bounds := text.BoundString(face, state.value)
		valueX := state.minusRect.Min.X - buttonGap - bounds.Dx()
		text.Draw(h.panel, state.value, face, valueX, labelY, valueColor)

		h.drawButton(state.minusRect, "-", state.hasValue && h.canAdjust(state, -1))
		h.drawButton(state.plusRect, "+", state.hasValue && h.canAdjust(state, 1))
	}
}

// drawSummary lists read-only parameters and group notes below the controls.
func (h *HUD) drawSummary() {
	face := basicfont.Face7x13
	adjustable := map[string]bool{}
	for _, state := range h.controls {
		adjustable[state.control.Key] = true
	}
	y := controlsTop + len(h.controls)*lineHeight + labelBaseline
	for _, group := range h.snapshot.Groups {
		for _, param := range group.Params {
			if adjustable[param.Key] {
				continue
			}
			line := fmt.Sprintf("%s: %s", param.Label, param.Value)
			text.Draw(h.panel, line, face, panelPadding, y, color.RGBA{R: 160, G: 160, B: 170, A: 255})
			y += labelBaseline
		}
		if group.Summary != "" {
			text.Draw(h.panel, group.Summary, face, panelPadding, y, color.RGBA{R: 240, G: 200, B: 90, A: 255})
			y += labelBaseline
		}
	}
}

func (h *HUD) canAdjust(state *controlState, direction int) bool {
	switch state.control.Type {
	case core.ParamTypeInt:
		_, changed := stepInt(state.control, state.intValue, direction)
		return h.intSetter != nil && changed
	case core.ParamTypeFloat:
		_, changed := stepFloat(state.control, state.floatValue, direction)
		return h.floatSetter != nil && changed
	default:
		return false
	}
}

func (h *HUD) fillRect(rect image.Rectangle, c color.RGBA) {
	if h.pixel == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(c)
	h.panel.DrawImage(h.pixel, op)
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	h.fillRect(rect, bg)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}
