package sand

import (
	"testing"

	"cand/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromMap(t *testing.T) {
	cfg := FromMap(map[string]string{
		"extent_w":        "320",
		"extent_h":        "240",
		"cell_size":       "7.6",
		"tps":             "30",
		"brush":           "3",
		"material":        "Liquid_Blue",
		"displace_budget": "9",
		"seed":            "-5",
		"tap":             "true",
		"manual":          "1",
		"lines":           "t",
	})

	assert.Equal(t, Config{
		ExtentW:        320,
		ExtentH:        240,
		CellSize:       8,
		TPS:            30,
		BrushRadius:    3,
		Material:       LiquidBlue,
		Tap:            true,
		Manual:         true,
		Lines:          true,
		DisplaceBudget: 9,
		Seed:           -5,
	}, cfg)
}

func TestFromMapIgnoresInvalidValues(t *testing.T) {
	cfg := FromMap(map[string]string{
		"extent_w":        "-1",
		"extent_h":        "wide",
		"tps":             "-10",
		"brush":           "-2",
		"material":        "empty",
		"displace_budget": "0",
		"tap":             "maybe",
	})
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, DefaultConfig(), FromMap(nil))
}

func TestRegisteredFactory(t *testing.T) {
	factory, ok := core.Sims()["sand"]
	require.True(t, ok)

	sim := factory(map[string]string{"cell_size": "20"})
	assert.Equal(t, "sand", sim.Name())
	assert.Equal(t, core.Size{W: 40, H: 30}, sim.Size())
	assert.Contains(t, core.SimNames(), "sand")

	assert.Implements(t, (*core.Brush)(nil), sim)
	assert.Implements(t, (*core.HoverProvider)(nil), sim)
	assert.Implements(t, (*core.MaterialSelector)(nil), sim)
	assert.Implements(t, (*core.Stats)(nil), sim)
	assert.Implements(t, (*core.ParameterControlsProvider)(nil), sim)
	assert.Implements(t, (*core.IntParameterSetter)(nil), sim)
	assert.Implements(t, (*core.BoolParameterSetter)(nil), sim)
	assert.Implements(t, (*core.FloatParameterSetter)(nil), sim)
}

func TestParameterSetters(t *testing.T) {
	world := New()

	assert.True(t, world.SetIntParameter("tps", -4))
	assert.Zero(t, world.TPS())
	assert.True(t, world.SetIntParameter("tps", 5000))
	assert.Equal(t, maxTPS, world.TPS())

	assert.True(t, world.SetIntParameter("brush", -1))
	assert.Zero(t, world.BrushRadius())

	assert.True(t, world.SetFloatParameter("cell_size", 12.6))
	assert.Equal(t, 13, world.PendingCellSize())
	assert.False(t, world.SetFloatParameter("tps", 1))

	assert.True(t, world.SetBoolParameter("manual", true))
	assert.True(t, world.SetBoolParameter("tap", true))
	assert.True(t, world.SetBoolParameter("lines", true))
	assert.True(t, world.Manual())
	assert.True(t, world.Tap())
	assert.True(t, world.Lines())

	assert.False(t, world.SetIntParameter("unknown", 1))
	assert.False(t, world.SetBoolParameter("unknown", true))

	params := map[string]string{}
	for _, group := range world.Parameters().Groups {
		for _, p := range group.Params {
			params[p.Key] = p.Value
		}
	}
	assert.Equal(t, "1000", params["tps"])
	assert.Equal(t, "13", params["cell_size"])
	assert.Equal(t, "true", params["manual"])
	assert.Equal(t, "solid_white", params["material"])

	for _, ctrl := range world.ParameterControls() {
		_, ok := params[ctrl.Key]
		assert.True(t, ok, "control %q has no parameter value", ctrl.Key)
	}
}

func TestMaterialCategories(t *testing.T) {
	assert.True(t, SolidWhite.Is(CategorySolid))
	assert.True(t, SolidRed.Is(CategorySolid))
	assert.True(t, LiquidBlue.Is(CategoryLiquid))
	assert.True(t, StillGrey.Is(CategoryFixed))
	assert.False(t, StillGrey.Is(CategorySolid))
	assert.False(t, Empty.Is(CategorySolid))
	assert.False(t, SolidWhite.Is(0))
	assert.Zero(t, Material(200).Categories())

	hovered := Cell{Material: Empty, Hovered: true, Updated: true}
	assert.False(t, hovered.Occupied(), "status flags never make a cell occupied")

	for _, m := range Paintable() {
		parsed, ok := ParseMaterial(m.String())
		assert.True(t, ok)
		assert.Equal(t, m, parsed)
	}
	_, ok := ParseMaterial("lava")
	assert.False(t, ok)
}
