package sand

import (
	"strconv"

	"cand/internal/core"
)

const (
	maxTPS         = 1000
	maxBrushRadius = 100
	maxCellSize    = 100
)

// Parameters returns the current tunables grouped for display.
func (w *World) Parameters() core.ParameterSnapshot {
	groups := []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("w", "Width", w.grid.W),
				intParam("h", "Height", w.grid.H),
				intParam("cell_size", "Pixels per cell", w.pendingCellSize),
				boolParam("lines", "Grid lines", w.lines),
			},
		},
		{
			Name: "Brush",
			Params: []core.Parameter{
				intParam("brush", "Brush size", w.brushRadius),
				stringParam("material", "Material", w.selected.String()),
				boolParam("tap", "Tapping", w.tap),
				intParam("placed", "Placed", w.placed),
			},
		},
		{
			Name: "Timing",
			Params: []core.Parameter{
				intParam("tps", "TPS", w.tps),
				boolParam("manual", "Manual stepping", w.manual),
				intParam("ticks", "Ticks", w.ticks),
			},
		},
	}
	if w.pendingCellSize != w.cellSize {
		groups[0].Summary = "Reset to apply pixels per cell"
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the HUD-adjustable parameters.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "lines", Label: "Grid lines", Type: core.ParamTypeBool},
		{Key: "tap", Label: "Tapping", Type: core.ParamTypeBool},
		{Key: "manual", Label: "Manual stepping", Type: core.ParamTypeBool},
		{Key: "tps", Label: "TPS", Type: core.ParamTypeInt, Step: 5, Min: 0, Max: maxTPS, HasMin: true, HasMax: true},
		{Key: "brush", Label: "Brush size", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: maxBrushRadius, HasMin: true, HasMax: true},
		{Key: "cell_size", Label: "Pixels per cell", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: maxCellSize, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates an integer tunable. Values are clamped to the
// control bounds.
func (w *World) SetIntParameter(key string, value int) bool {
	switch key {
	case "tps":
		w.SetTPS(min(value, maxTPS))
	case "brush":
		w.SetBrushRadius(min(value, maxBrushRadius))
	case "cell_size":
		w.SetPendingCellSize(float64(min(value, maxCellSize)))
	default:
		return false
	}
	return true
}

// SetBoolParameter updates a boolean tunable.
func (w *World) SetBoolParameter(key string, value bool) bool {
	switch key {
	case "lines":
		w.lines = value
	case "tap":
		w.tap = value
	case "manual":
		w.manual = value
	default:
		return false
	}
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}

// SetFloatParameter accepts fractional cell sizes, rounding to the nearest
// pixel.
func (w *World) SetFloatParameter(key string, value float64) bool {
	if key != "cell_size" {
		return false
	}
	w.SetPendingCellSize(min(value, maxCellSize))
	return true
}
