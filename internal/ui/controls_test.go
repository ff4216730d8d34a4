package ui

import (
	"image"
	"testing"

	"cand/internal/core"

	"github.com/stretchr/testify/assert"
)

func TestStepInt(t *testing.T) {
	ctrl := core.ParameterControl{Type: core.ParamTypeInt, Step: 5, Min: 0, Max: 12, HasMin: true, HasMax: true}

	got, changed := stepInt(ctrl, 4, 1)
	assert.Equal(t, 9, got)
	assert.True(t, changed)

	got, changed = stepInt(ctrl, 9, 1)
	assert.Equal(t, 12, got, "clamped to max")
	assert.True(t, changed)

	got, changed = stepInt(ctrl, 0, -1)
	assert.Equal(t, 0, got)
	assert.False(t, changed, "already at min")

	got, _ = stepInt(core.ParameterControl{}, 3, -1)
	assert.Equal(t, 2, got, "zero step defaults to one")
}

func TestStepFloat(t *testing.T) {
	ctrl := core.ParameterControl{Type: core.ParamTypeFloat, Step: 0.5, Max: 1, HasMax: true}

	got, changed := stepFloat(ctrl, 0.75, 1)
	assert.InDelta(t, 1.0, got, 1e-9)
	assert.True(t, changed)

	_, changed = stepFloat(ctrl, 1, 1)
	assert.False(t, changed)

	assert.Equal(t, "0.50", formatFloat(core.ParameterControl{Step: 0.05}, 0.5))
	assert.Equal(t, "0.5", formatFloat(ctrl, 0.5))
}

func TestControlRefresh(t *testing.T) {
	params := map[string]core.Parameter{
		"tps":   {Key: "tps", Type: core.ParamTypeInt, Value: "60"},
		"lines": {Key: "lines", Type: core.ParamTypeBool, Value: "true"},
		"bad":   {Key: "bad", Type: core.ParamTypeInt, Value: "x"},
	}
	states := []controlState{
		{control: core.ParameterControl{Key: "tps", Type: core.ParamTypeInt}},
		{control: core.ParameterControl{Key: "lines", Type: core.ParamTypeBool}},
		{control: core.ParameterControl{Key: "bad", Type: core.ParamTypeInt}},
		{control: core.ParameterControl{Key: "missing", Type: core.ParamTypeInt}},
	}
	for i := range states {
		states[i].refresh(params)
	}

	assert.Equal(t, 60, states[0].intValue)
	assert.Equal(t, "60", states[0].value)
	assert.True(t, states[1].boolValue)
	assert.Equal(t, "on", states[1].value)
	assert.False(t, states[2].hasValue)
	assert.Equal(t, "--", states[3].value)
}

func TestLayoutControls(t *testing.T) {
	states := make([]controlState, 2)
	layoutControls(states, 200, controlsTop)

	assert.Equal(t, controlsTop+lineHeight, states[1].top)
	assert.Equal(t, 200-panelPadding, states[0].plusRect.Max.X)
	assert.Less(t, states[0].minusRect.Max.X, states[0].plusRect.Min.X)
	assert.True(t, pointInRect(states[0].plusRect.Min.X, states[0].plusRect.Min.Y, states[0].toggleRect))
	assert.False(t, pointInRect(states[0].plusRect.Max.X, states[0].plusRect.Min.Y, states[0].plusRect))

	swatches := swatchRects(4, swatchTop)
	assert.Equal(t, image.Rect(panelPadding, swatchTop, panelPadding+swatchSize, swatchTop+swatchSize), swatches[0])
	assert.False(t, swatches[0].Overlaps(swatches[1]))
}
