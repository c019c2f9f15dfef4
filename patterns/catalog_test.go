package patterns

import (
	"testing"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-torus/utils"
)

func TestDefaultCatalogResolves(t *testing.T) {
	catalog := Default()
	for _, name := range catalog.Names() {
		t.Run(name, func(t *testing.T) {
			pattern, err := catalog.Resolve(name)
			if err != nil {
				t.Fatal(err)
			}
			if name == utils.DefaultSeedName {
				if pattern != nil {
					t.Fatalf("%s should resolve to no pattern", name)
				}
				return
			}

			if len(pattern) == 0 {
				t.Fatal("empty pattern")
			}
			living := 0
			for _, row := range pattern {
				if len(row) != len(pattern[0]) {
					t.Fatal("ragged pattern")
				}
				for _, cell := range row {
					living += int(cell)
				}
			}
			if living == 0 {
				t.Fatal("pattern has no living cells")
			}
		})
	}
}

func TestResolveGlider(t *testing.T) {
	pattern, err := Default().Resolve("glider")
	if err != nil {
		t.Fatal(err)
	}
	want := [][]uint8{
		{0, 1, 0},
		{0, 0, 1},
		{1, 1, 1},
	}
	for y := range want {
		for x := range want[y] {
			if pattern[y][x] != want[y][x] {
				t.Fatalf("glider = %v, want %v", pattern, want)
			}
		}
	}
}

func TestResolveUnknown(t *testing.T) {
	if _, err := Default().Resolve("spaceship-9000"); !errors.Is(err, ErrUnknownSeed) {
		t.Fatalf("error = %v, want ErrUnknownSeed", err)
	}
}

func TestParseRejectsMalformedDrawings(t *testing.T) {
	for name, lines := range map[string][]string{
		"ragged":    {"OO", "O"},
		"bad glyph": {"O*O"},
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse(lines); err == nil {
				t.Fatal("malformed drawing accepted")
			}
		})
	}

	if _, err := (Catalog{"broken": {"OX"}}).Resolve("broken"); err == nil {
		t.Fatal("malformed catalog entry resolved")
	}
}

func TestNamesSorted(t *testing.T) {
	names := Catalog{"b": nil, "a": nil, "c": {"O"}}.Names()
	if len(names) != 3 || names[0] != "a" || names[1] != "b" || names[2] != "c" {
		t.Fatalf("names = %v", names)
	}
}
