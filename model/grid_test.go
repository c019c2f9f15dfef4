package model

import (
	"testing"

	"github.com/pkg/errors"
)

// paddedNeighbors is the reference count: a 3x3 all-ones convolution over a
// wrap-padded copy of g, minus the center cell
func paddedNeighbors(g *Grid) [][]int {
	w, h := g.GetWidth(), g.GetHeight()
	padded := make([][]int, h+2)
	for py := range padded {
		padded[py] = make([]int, w+2)
		for px := range padded[py] {
			padded[py][px] = int(g.cells[(py-1+h)%h][(px-1+w)%w])
		}
	}

	counts := make([][]int, h)
	for y := range h {
		counts[y] = make([]int, w)
		for x := range w {
			sum := 0
			for ky := range 3 {
				for kx := range 3 {
					sum += padded[y+ky][x+kx]
				}
			}
			counts[y][x] = sum - int(g.cells[y][x])
		}
	}
	return counts
}

func TestNewGridRejectsBadDimensions(t *testing.T) {
	for _, tc := range []struct{ w, h int }{{0, 5}, {5, 0}, {-1, 3}, {3, -2}} {
		if _, err := NewGrid(tc.w, tc.h); !errors.Is(err, ErrInvalidDimension) {
			t.Errorf("NewGrid(%d, %d) error = %v, want ErrInvalidDimension", tc.w, tc.h, err)
		}
	}
}

func TestCountNeighborsWrapsAroundCorners(t *testing.T) {
	const w, h = 5, 4
	g, err := NewGrid(w, h)
	if err != nil {
		t.Fatal(err)
	}
	g.Set(0, 0, true)

	for _, p := range [][2]int{
		{w - 1, h - 1}, {w - 1, 0}, {0, h - 1},
		{1, 0}, {0, 1}, {1, 1}, {w - 1, 1}, {1, h - 1},
	} {
		if n := g.CountNeighbors(p[0], p[1]); n != 1 {
			t.Errorf("CountNeighbors(%d, %d) = %d, want 1", p[0], p[1], n)
		}
	}
	if n := g.CountNeighbors(0, 0); n != 0 {
		t.Errorf("cell counted itself: CountNeighbors(0, 0) = %d", n)
	}
	if n := g.CountNeighbors(2, 2); n != 0 {
		t.Errorf("CountNeighbors(2, 2) = %d, want 0", n)
	}
}

func TestCountNeighborsMatchesPaddedConvolution(t *testing.T) {
	seeder := NewSeeder(NewRNG(7))
	for _, tc := range []struct{ w, h int }{{1, 1}, {2, 2}, {1, 3}, {3, 1}, {2, 5}, {7, 4}, {16, 9}} {
		g, err := seeder.Random(tc.w, tc.h)
		if err != nil {
			t.Fatal(err)
		}

		want := paddedNeighbors(g)
		for y := range tc.h {
			for x := range tc.w {
				if got := g.CountNeighbors(x, y); got != want[y][x] {
					t.Fatalf("%dx%d: CountNeighbors(%d, %d) = %d, want %d", tc.w, tc.h, x, y, got, want[y][x])
				}
			}
		}
	}
}

func TestGetSetWrap(t *testing.T) {
	g, _ := NewGrid(3, 3)
	g.Set(-1, 3, true)
	if !g.IsAlive(2, 0) || g.Get(2, 0) != 1 {
		t.Fatal("Set(-1, 3) should land on (2, 0)")
	}
	g.Set(5, 0, false)
	if g.IsAlive(2, 0) {
		t.Fatal("Set(5, 0) should clear (2, 0)")
	}
}

func TestFromRows(t *testing.T) {
	rows := [][]uint8{
		{0, 1, 0},
		{1, 1, 0},
	}
	g, err := FromRows(rows)
	if err != nil {
		t.Fatal(err)
	}
	if g.GetWidth() != 3 || g.GetHeight() != 2 {
		t.Fatalf("size = %dx%d, want 3x2", g.GetWidth(), g.GetHeight())
	}
	if g.CountLivingCells() != 3 {
		t.Fatalf("living = %d, want 3", g.CountLivingCells())
	}

	rows[0][0] = 1
	if g.IsAlive(0, 0) {
		t.Fatal("grid aliases its input rows")
	}
	out := g.Rows()
	out[1][1] = 0
	if !g.IsAlive(1, 1) {
		t.Fatal("Rows aliases the grid")
	}

	for name, bad := range map[string][][]uint8{
		"empty":  {},
		"ragged": {{0, 1}, {1}},
		"value":  {{0, 2}},
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := FromRows(bad); !errors.Is(err, ErrInvalidSeed) {
				t.Fatalf("FromRows error = %v, want ErrInvalidSeed", err)
			}
		})
	}
}

func TestCloneEqualHash(t *testing.T) {
	g, _ := NewSeeder(NewRNG(1)).Random(6, 5)
	c := g.Clone()
	if !g.Equal(c) || g.GetGridHash() != c.GetGridHash() {
		t.Fatal("clone differs from original")
	}

	c.Set(0, 0, !c.IsAlive(0, 0))
	if g.Equal(c) || g.GetGridHash() == c.GetGridHash() {
		t.Fatal("mutating the clone should not affect equality with the original")
	}

	wide, _ := NewGrid(4, 1)
	tall, _ := NewGrid(1, 4)
	if wide.Equal(tall) || wide.GetGridHash() == tall.GetGridHash() {
		t.Fatal("grids of different shape compare equal")
	}
}
