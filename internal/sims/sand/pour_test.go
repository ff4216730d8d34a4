package sand

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunPourConservesMaterial(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CellSize = 20
	cfg.BrushRadius = 2
	cfg.Seed = 3

	res := RunPour(cfg, 240)

	assert.Zero(t, res.Violations)
	assert.NotZero(t, res.Placed)
	assert.GreaterOrEqual(t, res.Occupied, res.Placed, "ledges add to the painted cells")
	assert.GreaterOrEqual(t, res.LastChange, 0)
	assert.Equal(t, 240, res.Steps)
	assert.Equal(t, res, RunPour(cfg, 240), "runs are deterministic per seed")
}

func TestPourResultSettled(t *testing.T) {
	assert.True(t, PourResult{LastChange: 10, Steps: 100}.Settled())
	assert.False(t, PourResult{LastChange: 99, Steps: 100}.Settled())
	assert.False(t, PourResult{LastChange: -1, Steps: 0}.Settled())
}
