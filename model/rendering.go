package model

import (
	"bufio"
	"io"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-torus/rules"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	ansiClearScreen = "\033[H\033[2J"
)

// TextRenderer writes grids as text frames
type TextRenderer struct {
	Out   io.Writer
	Alive string
	Dead  string
}

// NewTerminalRenderer returns a renderer drawing block characters to out
func NewTerminalRenderer(out io.Writer) *TextRenderer {
	return &TextRenderer{Out: out, Alive: gridPosBlock, Dead: gridPosEmpty}
}

// Display renders one grid, row by row
func (r *TextRenderer) Display(g *Grid) error {
	w := bufio.NewWriter(r.Out)
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] == rules.Alive {
				w.WriteString(r.Alive)
			} else {
				w.WriteString(r.Dead)
			}
		}
		w.WriteByte('\n')
	}
	return errors.Wrap(w.Flush(), "[Display] failed to write frame")
}

// Clear clears the terminal screen
func (r *TextRenderer) Clear() error {
	_, err := io.WriteString(r.Out, ansiClearScreen)
	return errors.Wrap(err, "[Clear] failed to clear screen")
}
