package model

import (
	"math/rand/v2"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-torus/rules"
)

// NewRNG creates a deterministic random source from the provided seed
func NewRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// Seeder builds generation 0, either by centering a pattern in an empty
// grid or by filling the grid at random
type Seeder struct {
	rng *rand.Rand
}

// NewSeeder returns a Seeder drawing random grids from rng. A nil rng uses
// an unseeded source.
func NewSeeder(rng *rand.Rand) *Seeder {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Seeder{rng: rng}
}

// Seed places pattern in the center of a width x height grid. An empty
// pattern selects a random grid instead.
func (s *Seeder) Seed(width, height int, pattern [][]uint8) (*Grid, error) {
	if len(pattern) == 0 {
		return s.Random(width, height)
	}
	return s.Place(width, height, pattern)
}

// Place centers pattern in a zero-filled width x height grid. Nothing is
// allocated if the pattern is malformed or larger than the grid.
func (s *Seeder) Place(width, height int, pattern [][]uint8) (*Grid, error) {
	if err := validateDimensions(width, height); err != nil {
		return nil, errors.Wrap(err, "[Place] invalid grid size")
	}

	seedWidth, seedHeight, err := patternSize(pattern)
	if err != nil {
		return nil, errors.Wrap(err, "[Place] invalid pattern")
	}

	left, top, err := CenterOffsets(width, height, seedWidth, seedHeight)
	if err != nil {
		return nil, errors.Wrap(err, "[Place] cannot center pattern")
	}

	g := newGrid(width, height)
	for y, row := range pattern {
		copy(g.cells[top+y][left:left+seedWidth], row)
	}
	return g, nil
}

// Random fills a width x height grid with cells drawn uniformly from {0, 1}
func (s *Seeder) Random(width, height int) (*Grid, error) {
	if err := validateDimensions(width, height); err != nil {
		return nil, errors.Wrap(err, "[Random] invalid grid size")
	}

	g := newGrid(width, height)
	for y := range height {
		for x := range width {
			g.cells[y][x] = uint8(s.rng.IntN(2))
		}
	}
	return g, nil
}

// CenterOffsets returns the column and row where a seedWidth x seedHeight
// pattern starts when centered in a width x height grid. Both offsets round
// up, so when the leftover space is odd the extra cell sits before the pattern.
func CenterOffsets(width, height, seedWidth, seedHeight int) (left, top int, err error) {
	if seedWidth > width || seedHeight > height {
		return 0, 0, errors.Wrapf(ErrSeedTooLarge, "%dx%d pattern in %dx%d grid",
			seedWidth, seedHeight, width, height)
	}
	// ceil(width/2 - seedWidth/2) for a non-negative difference
	left = (width - seedWidth + 1) / 2
	top = (height - seedHeight + 1) / 2
	return left, top, nil
}

// patternSize returns the dimensions of a rectangular binary pattern
func patternSize(pattern [][]uint8) (width, height int, err error) {
	height = len(pattern)
	if height == 0 {
		return 0, 0, errors.Wrap(ErrInvalidSeed, "pattern has no rows")
	}

	width = len(pattern[0])
	for y, row := range pattern {
		if len(row) != width {
			return 0, 0, errors.Wrapf(ErrInvalidSeed, "row %d has %d cells, want %d", y, len(row), width)
		}
		for x, cell := range row {
			if cell != rules.Dead && cell != rules.Alive {
				return 0, 0, errors.Wrapf(ErrInvalidSeed, "cell (%d,%d) is %d", x, y, cell)
			}
		}
	}
	if width == 0 {
		return 0, 0, errors.Wrap(ErrInvalidSeed, "pattern has no columns")
	}
	return width, height, nil
}
