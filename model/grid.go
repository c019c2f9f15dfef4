package model

import (
	"crypto/md5"
	"fmt"
	"math"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-torus/rules"
)

// Grid is a dense toroidal game board. Every cell has exactly 8 neighbors,
// reached by wrapping coordinates modulo the board dimensions.
type Grid struct {
	width  int
	height int
	cells  [][]uint8
}

// NewGrid creates a new zero-filled grid with the specified dimensions
func NewGrid(width, height int) (*Grid, error) {
	if err := validateDimensions(width, height); err != nil {
		return nil, errors.Wrap(err, "[NewGrid] invalid grid size")
	}
	return newGrid(width, height), nil
}

func newGrid(width, height int) *Grid {
	cells := make([][]uint8, height)
	for i := range cells {
		cells[i] = make([]uint8, width)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
	}
}

func validateDimensions(width, height int) error {
	if width < 1 || height < 1 {
		return errors.Wrapf(ErrInvalidDimension, "%dx%d", width, height)
	}
	if width > math.MaxInt/height {
		return errors.Wrapf(ErrInvalidDimension, "%dx%d overflows cell count", width, height)
	}
	return nil
}

// FromRows builds a grid from a dense binary array indexed rows[y][x]
func FromRows(rows [][]uint8) (*Grid, error) {
	width, height, err := patternSize(rows)
	if err != nil {
		return nil, errors.Wrap(err, "[FromRows] invalid rows")
	}
	if err = validateDimensions(width, height); err != nil {
		return nil, errors.Wrap(err, "[FromRows] invalid rows")
	}

	g := newGrid(width, height)
	for y, row := range rows {
		copy(g.cells[y], row)
	}
	return g, nil
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// Reset resets the grid to new dimensions with every cell dead
func (g *Grid) Reset(width, height int) {
	g.width = width
	g.height = height

	// Resize cells if needed
	if len(g.cells) != height {
		g.cells = make([][]uint8, height)
	}
	for i := range g.cells {
		if len(g.cells[i]) != width {
			g.cells[i] = make([]uint8, width)
		} else {
			clear(g.cells[i])
		}
	}
}

// Clear kills all cells
func (g *Grid) Clear() {
	for y := range g.height {
		clear(g.cells[y])
	}
}

// wrap maps any coordinate pair onto the torus
func (g *Grid) wrap(x, y int) (int, int) {
	x = (x%g.width + g.width) % g.width
	y = (y%g.height + g.height) % g.height
	return x, y
}

// Set sets a cell to alive (true) or dead (false). Coordinates wrap.
func (g *Grid) Set(x, y int, alive bool) {
	x, y = g.wrap(x, y)
	if alive {
		g.cells[y][x] = rules.Alive
	} else {
		g.cells[y][x] = rules.Dead
	}
}

// Get returns the state of a cell, 0 or 1. Coordinates wrap.
func (g *Grid) Get(x, y int) uint8 {
	x, y = g.wrap(x, y)
	return g.cells[y][x]
}

// IsAlive reports whether the cell at (x, y) is alive
func (g *Grid) IsAlive(x, y int) bool {
	return g.Get(x, y) == rules.Alive
}

// CountNeighbors sums the 8 cells surrounding (x, y) on the torus. For
// in-bounds coordinates this equals a 3x3 all-ones convolution over the
// wrap-padded grid minus the center cell.
func (g *Grid) CountNeighbors(x, y int) int {
	x, y = g.wrap(x, y)

	var (
		left  = (x - 1 + g.width) % g.width
		right = (x + 1) % g.width
		up    = g.cells[(y-1+g.height)%g.height]
		row   = g.cells[y]
		down  = g.cells[(y+1)%g.height]
	)

	return int(up[left]) + int(up[x]) + int(up[right]) +
		int(row[left]) + int(row[right]) +
		int(down[left]) + int(down[x]) + int(down[right])
}

// Rows returns a copy of the cells as a dense binary array indexed [y][x]
func (g *Grid) Rows() [][]uint8 {
	rows := make([][]uint8, g.height)
	for y := range g.height {
		rows[y] = make([]uint8, g.width)
		copy(rows[y], g.cells[y])
	}
	return rows
}

// Clone returns an independently owned copy of the grid
func (g *Grid) Clone() *Grid {
	next := newGrid(g.width, g.height)
	for y := range g.height {
		copy(next.cells[y], g.cells[y])
	}
	return next
}

// Equal reports whether both grids have the same size and cells
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.width != other.width || g.height != other.height {
		return false
	}
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] != other.cells[y][x] {
				return false
			}
		}
	}
	return true
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for y := range g.height {
		for x := range g.width {
			count += int(g.cells[y][x])
		}
	}
	return
}

// GetGridHash returns an MD5 hash of the current grid state
func (g *Grid) GetGridHash() string {
	h := md5.New()
	fmt.Fprintf(h, "%dx%d:", g.width, g.height)
	for y := range g.height {
		h.Write(g.cells[y])
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
