// Package patterns holds the named seed catalog. The simulation core only
// ever sees the resolved binary arrays.
package patterns

import (
	"slices"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-torus/utils"
)

// ErrUnknownSeed is returned for names missing from the catalog
var ErrUnknownSeed = errors.New("unknown seed")

// Resolver turns a seed name into a dense binary pattern indexed [y][x]. A
// nil pattern with a nil error means "no pattern": seed the grid at random.
type Resolver interface {
	Resolve(name string) ([][]uint8, error)
}

// Catalog maps seed names to plaintext drawings, 'O' alive and '.' dead
type Catalog map[string][]string

// Default returns the built-in catalog
func Default() Catalog {
	return Catalog{
		utils.DefaultSeedName: nil,
		"blinker":             {"OOO"},
		"toad": {
			".OOO",
			"OOO.",
		},
		"beacon": {
			"OO..",
			"OO..",
			"..OO",
			"..OO",
		},
		"glider": {
			".O.",
			"..O",
			"OOO",
		},
		"r_pentomino": {
			".OO",
			"OO.",
			".O.",
		},
		"diehard": {
			"......O.",
			"OO......",
			".O...OOO",
		},
		"acorn": {
			".O.....",
			"...O...",
			"OO..OOO",
		},
		"lwss": {
			".O..O",
			"O....",
			"O...O",
			".OOOO",
		},
		"pulsar": {
			"..OOO...OOO..",
			".............",
			"O....O.O....O",
			"O....O.O....O",
			"O....O.O....O",
			"..OOO...OOO..",
			".............",
			"..OOO...OOO..",
			"O....O.O....O",
			"O....O.O....O",
			"O....O.O....O",
			".............",
			"..OOO...OOO..",
		},
		"gosper_glider_gun": {
			"........................O...........",
			"......................O.O...........",
			"............OO......OO............OO",
			"...........O...O....OO............OO",
			"OO........O.....O...OO..............",
			"OO........O...O.OO....O.O...........",
			"..........O.....O.......O...........",
			"...........O...O....................",
			"............OO......................",
		},
	}
}

// Resolve looks up name and converts its drawing to a binary pattern
func (c Catalog) Resolve(name string) ([][]uint8, error) {
	drawing, ok := c[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownSeed, "[Resolve] %q", name)
	}
	if drawing == nil {
		return nil, nil
	}

	pattern, err := Parse(drawing)
	if err != nil {
		return nil, errors.Wrapf(err, "[Resolve] seed %q", name)
	}
	return pattern, nil
}

// Names returns the catalog entries in sorted order
func (c Catalog) Names() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Parse converts plaintext rows into a pattern. Rows must be equally long
// and contain only 'O' and '.'.
func Parse(lines []string) ([][]uint8, error) {
	pattern := make([][]uint8, len(lines))
	for y, line := range lines {
		if len(line) != len(lines[0]) {
			return nil, errors.Errorf("[Parse] row %d has %d cells, want %d", y, len(line), len(lines[0]))
		}
		if i := strings.IndexFunc(line, func(r rune) bool { return r != 'O' && r != '.' }); i >= 0 {
			return nil, errors.Errorf("[Parse] unexpected %q at row %d column %d", line[i], y, i)
		}

		pattern[y] = make([]uint8, len(line))
		for x := range len(line) {
			if line[x] == 'O' {
				pattern[y][x] = 1
			}
		}
	}
	return pattern, nil
}
