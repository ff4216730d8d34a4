package core

import "testing"

func TestGridNeighborStaysInRow(t *testing.T) {
	g := NewGrid[uint8](3, 2)

	cases := []struct {
		i, dx, dy int
		want      int
		ok        bool
	}{
		{i: 0, dx: 1, dy: 0, want: 1, ok: true},
		{i: 0, dx: -1, dy: 0, want: -1},
		{i: 2, dx: 1, dy: 0, want: -1},
		{i: 3, dx: -1, dy: 0, want: -1},
		{i: 4, dx: 0, dy: -1, want: 1, ok: true},
		{i: 1, dx: 0, dy: -1, want: -1},
		{i: 4, dx: 0, dy: 1, want: -1},
		{i: 4, dx: 1, dy: -1, want: 2, ok: true},
		{i: 6, dx: 0, dy: 0, want: -1},
		{i: -1, dx: 1, dy: 0, want: -1},
	}
	for _, tc := range cases {
		got, ok := g.Neighbor(tc.i, tc.dx, tc.dy)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("Neighbor(%d,%d,%d)=(%d,%v), expected (%d,%v)", tc.i, tc.dx, tc.dy, got, ok, tc.want, tc.ok)
		}
	}
}

func TestGridAccess(t *testing.T) {
	g := NewGrid[int](0, -4)
	if g.W != 1 || g.H != 1 || g.Len() != 1 {
		t.Fatalf("degenerate grid %dx%d len %d, expected 1x1", g.W, g.H, g.Len())
	}

	g = NewGrid[int](4, 3)
	*g.At(3, 2) = 7
	if x, y := g.XY(g.Index(3, 2)); x != 3 || y != 2 {
		t.Fatalf("XY round trip gave (%d,%d)", x, y)
	}
	if g.Cells()[11] != 7 {
		t.Fatalf("At did not write through to the backing slice")
	}
	if g.At(4, 0) != nil || g.At(0, -1) != nil {
		t.Fatal("At must return nil outside the grid")
	}
	g.Clear()
	for i, v := range g.Cells() {
		if v != 0 {
			t.Fatalf("cell %d not cleared", i)
		}
	}
}
