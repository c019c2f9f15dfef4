package model

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-gol-torus/rules"
)

// StepOptions selects how a transition is computed. The zero value steps
// sequentially into freshly allocated grids.
type StepOptions struct {
	Parallel bool
	Workers  int // 0 means runtime.NumCPU()
	Pool     *GridPool
}

// NextGeneration calculates the next generation based on the options. The
// receiver is never modified.
func (g *Grid) NextGeneration(opts StepOptions) *Grid {
	if opts.Parallel {
		return g.NextGenerationParallel(opts.Pool, opts.Workers)
	}
	return g.NextGenerationSequential(opts.Pool)
}

// NextGenerationSequential calculates the next generation on the calling goroutine
func (g *Grid) NextGenerationSequential(pool *GridPool) *Grid {
	next := pool.Get(g.width, g.height)
	g.stepRows(next, 0, g.height)
	return next
}

// NextGenerationParallel calculates the next generation by splitting the rows
// into bands, one errgroup task per band
func (g *Grid) NextGenerationParallel(pool *GridPool, workers int) *Grid {
	next := pool.Get(g.width, g.height)

	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	workers = min(workers, g.height)

	var (
		eg            errgroup.Group
		rowsPerWorker = (g.height + workers - 1) / workers // Ceiling division
	)
	eg.SetLimit(workers)

	for i := range workers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.height)
		)
		if startRow >= g.height {
			break
		}

		eg.Go(func() error {
			g.stepRows(next, startRow, endRow)
			return nil
		})
	}

	// bands only read g and write disjoint rows of next, so no task fails
	_ = eg.Wait()

	return next
}

// stepRows writes rows [startRow, endRow) of next from the current state of g
func (g *Grid) stepRows(next *Grid, startRow, endRow int) {
	for y := startRow; y < endRow; y++ {
		for x := range g.width {
			next.cells[y][x] = rules.NextState(g.cells[y][x], g.CountNeighbors(x, y))
		}
	}
}
