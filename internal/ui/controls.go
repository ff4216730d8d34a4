package ui

import (
	"image"
	"math"
	"strconv"

	"cand/internal/core"
)

// controlState tracks one HUD row: its control description, last known value
// and hit boxes.
type controlState struct {
	control core.ParameterControl
	value   string

	intValue   int
	floatValue float64
	boolValue  bool
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
	// toggleRect is used instead of the -/+ pair for bool controls.
	toggleRect image.Rectangle
}

// refresh parses the snapshot value for the control.
func (s *controlState) refresh(params map[string]core.Parameter) {
	param, ok := params[s.control.Key]
	if !ok {
		s.hasValue = false
		s.value = "--"
		return
	}
	switch s.control.Type {
	case core.ParamTypeInt:
		parsed, err := strconv.Atoi(param.Value)
		if err != nil {
			break
		}
		s.intValue = parsed
		s.floatValue = float64(parsed)
		s.value = strconv.Itoa(parsed)
		s.hasValue = true
		return
	case core.ParamTypeFloat:
		parsed, err := strconv.ParseFloat(param.Value, 64)
		if err != nil {
			break
		}
		s.floatValue = parsed
		s.value = formatFloat(s.control, parsed)
		s.hasValue = true
		return
	case core.ParamTypeBool:
		parsed, err := strconv.ParseBool(param.Value)
		if err != nil {
			break
		}
		s.boolValue = parsed
		s.value = "off"
		if parsed {
			s.value = "on"
		}
		s.hasValue = true
		return
	}
	s.hasValue = false
	s.value = "--"
}

// stepInt returns the value one step in direction, clamped to the control
// bounds, and whether it differs from current.
func stepInt(ctrl core.ParameterControl, current, direction int) (int, bool) {
	step := int(math.Round(ctrl.Step))
	if step <= 0 {
		step = 1
	}
	target := current + direction*step
	if ctrl.HasMin {
		target = max(target, int(math.Round(ctrl.Min)))
	}
	if ctrl.HasMax {
		target = min(target, int(math.Round(ctrl.Max)))
	}
	return target, target != current
}

// stepFloat is the floating point counterpart of stepInt.
func stepFloat(ctrl core.ParameterControl, current float64, direction int) (float64, bool) {
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	target := current + float64(direction)*step
	if ctrl.HasMin && target < ctrl.Min {
		target = ctrl.Min
	}
	if ctrl.HasMax && target > ctrl.Max {
		target = ctrl.Max
	}
	return target, math.Abs(target-current) >= 1e-9
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

// layoutControls assigns rows and hit boxes for a panel of the given width,
// starting at top.
func layoutControls(controls []controlState, width, top int) {
	for i := range controls {
		rowTop := top + i*lineHeight
		buttonY := rowTop + (lineHeight-buttonSize)/2
		plusRect := image.Rect(width-panelPadding-buttonSize, buttonY, width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		controls[i].top = rowTop
		controls[i].minusRect = minusRect
		controls[i].plusRect = plusRect
		controls[i].toggleRect = image.Rect(minusRect.Min.X, buttonY, plusRect.Max.X, buttonY+buttonSize)
	}
}

// swatchRects lays out one square per material in a row starting at top.
func swatchRects(n, top int) []image.Rectangle {
	rects := make([]image.Rectangle, n)
	for i := range rects {
		x := panelPadding + i*(swatchSize+buttonGap)
		rects[i] = image.Rect(x, top, x+swatchSize, top+swatchSize)
	}
	return rects
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return image.Pt(x, y).In(rect)
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	swatchSize     = 32
	headerBaseline = 18
	labelBaseline  = 24
	swatchTop      = panelPadding + headerBaseline + 14
	resetTop       = swatchTop + swatchSize + panelPadding
	controlsTop    = resetTop + buttonSize + panelPadding
)
