package sand

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplace(t *testing.T) {
	for _, tc := range []struct {
		name   string
		flips  []bool
		rows   []string
		src    [2]int
		budget int
		want   [2]int
		found  bool
	}{
		{
			name:   "turns left on tails",
			flips:  []bool{false},
			rows:   []string{".L.", "SSS"},
			src:    [2]int{1, 1},
			budget: DisplaceBudget,
			want:   [2]int{0, 1},
			found:  true,
		},
		{
			name:   "takes the only open side",
			rows:   []string{"RL.", "SSS"},
			src:    [2]int{1, 1},
			budget: DisplaceBudget,
			want:   [2]int{2, 1},
			found:  true,
		},
		{
			name:   "escapes upward before sideways",
			rows:   []string{"...", ".L.", "SSS"},
			src:    [2]int{1, 1},
			budget: DisplaceBudget,
			want:   [2]int{1, 2},
			found:  true,
		},
		{
			name:   "tunnels through a liquid column",
			rows:   []string{"...", "RLR", "RLR", "RLR", "RSR"},
			src:    [2]int{1, 1},
			budget: DisplaceBudget,
			want:   [2]int{1, 4},
			found:  true,
		},
		{
			name:   "tunnels sideways through liquid",
			rows:   []string{"RRRRR", "LLLL.", "SSSSS"},
			src:    [2]int{0, 1},
			budget: DisplaceBudget,
			want:   [2]int{4, 1},
			found:  true,
		},
		{
			name:   "gives up when boxed in",
			rows:   []string{"RLR", "SSS"},
			src:    [2]int{1, 1},
			budget: DisplaceBudget,
		},
		{
			name:   "does not wrap past the right edge",
			rows:   []string{"..RL", "SSSS"},
			src:    [2]int{3, 1},
			budget: DisplaceBudget,
		},
		{
			name:   "does not wrap past the left edge",
			rows:   []string{"LR..", "SSSS"},
			src:    [2]int{0, 1},
			budget: DisplaceBudget,
		},
		{
			name:   "runs out of budget",
			rows:   []string{"...", "RLR", "RLR", "RLR", "RSR"},
			src:    [2]int{1, 1},
			budget: 3,
		},
		{
			name:   "zero budget never searches",
			rows:   []string{".L.", "SSS"},
			src:    [2]int{1, 1},
			budget: 0,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			world := newTestWorld(t, len(tc.rows[0]), len(tc.rows), tc.flips...)
			fill(t, world, tc.rows...)
			before := dump(world)

			dst, found := world.Displace(world.Index(tc.src[0], tc.src[1]), tc.budget)

			assert.Equal(t, tc.found, found)
			if tc.found {
				assert.Equal(t, world.Index(tc.want[0], tc.want[1]), dst)
				assert.False(t, world.CellAtIndex(dst).Occupied())
			} else {
				assert.Equal(t, NoDestination, dst)
			}
			assert.Equal(t, before, dump(world), "search must not mutate the grid")
		})
	}
}

func TestDisplaceRejectsOutOfRangeSource(t *testing.T) {
	world := newTestWorld(t, 3, 2)
	for _, src := range []int{-1, world.Len(), world.Len() + 10} {
		dst, found := world.Displace(src, DisplaceBudget)
		assert.False(t, found)
		assert.Equal(t, NoDestination, dst)
	}
}

func TestDisplaceAlwaysTerminatesInBounds(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		cfg := DefaultConfig()
		cfg.ExtentW = 16
		cfg.ExtentH = 12
		cfg.CellSize = 1
		cfg.Seed = seed
		world := NewWithConfig(cfg)
		size := world.Size()
		pattern := []Material{SolidWhite, LiquidBlue, LiquidBlue, Empty, SolidRed, StillGrey}
		for y := 0; y < size.H; y++ {
			for x := 0; x < size.W; x++ {
				world.Set(x, y, pattern[(x*7+y*3+int(seed))%len(pattern)])
			}
		}
		for i := 0; i < world.Len(); i++ {
			if world.CellAtIndex(i).Material != LiquidBlue {
				continue
			}
			for budget := 0; budget <= 8; budget++ {
				dst, found := world.Displace(i, budget)
				if !found {
					assert.Equal(t, NoDestination, dst)
					continue
				}
				if assert.True(t, dst >= 0 && dst < world.Len(), "seed %d src %d: dst %d out of range", seed, i, dst) {
					assert.False(t, world.CellAtIndex(dst).Occupied())
				}
			}
		}
	}
}
