package main

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-torus/model"
	"github.com/sheikhrachel/go-gol-torus/patterns"
	"github.com/sheikhrachel/go-gol-torus/utils"
)

// initializeGame resolves the configured seed and builds generation 0
func initializeGame(config utils.Config, resolver patterns.Resolver) (*model.Grid, error) {
	pattern, err := resolver.Resolve(config.Seed)
	if err != nil {
		return nil, errors.Wrap(err, "[initializeGame] failed to resolve seed")
	}

	seeder := model.NewSeeder(model.NewRNG(config.RandomSeed))
	grid, err := seeder.Seed(config.Width, config.Height, pattern)
	if err != nil {
		return nil, errors.Wrapf(err, "[initializeGame] failed to seed %q", config.Seed)
	}
	return grid, nil
}

// stepOptions maps the configuration onto the engine options
func stepOptions(config utils.Config) model.StepOptions {
	opts := model.StepOptions{
		Parallel: config.UseParallel,
		Workers:  config.Workers,
	}
	if config.UseMemoryPool {
		opts.Pool = model.NewGridPool()
	}
	return opts
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, grid *model.Grid) {
	fmt.Printf("Seed: %s | Parallel: %v | Memory Pool: %v\n",
		config.Seed, config.UseParallel, config.UseMemoryPool && config.FinalOnly)
	fmt.Printf("Grid: %dx%d | Generations: %d | Initial living cells: %d\n",
		grid.GetWidth(), grid.GetHeight(), config.Generations, grid.CountLivingCells())
	fmt.Println()
}

// updateGameState records a generation in stats and returns its status label
func updateGameState(
	grid *model.Grid,
	generation int,
	lastFrameTime time.Time,
	stats *utils.Stats,
	detector *model.CycleDetector,
) string {
	livingCells := grid.CountLivingCells()
	stats.Update(generation, livingCells, grid.GetWidth()*grid.GetHeight(), time.Since(lastFrameTime))

	period := detector.Observe(grid)
	switch {
	case livingCells == 0:
		return "Extinct"
	case period == 1:
		return "Still life"
	case period > 1:
		return fmt.Sprintf("Oscillating (period %d)", period)
	default:
		return "Active"
	}
}

// displayGameStatus shows the current game status
func displayGameStatus(generation int, status string, stats *utils.Stats) {
	fmt.Printf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		generation, stats.ActiveCells, stats.Density, status)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Peak Pop: %d | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.PeakPopulation,
		time.Since(stats.StartTime).Seconds())
	fmt.Println()
}

// animate renders every state in order, pausing config.FrameRate between frames
func animate(ctx context.Context, states []*model.Grid, renderer *model.TextRenderer, config utils.Config) error {
	var (
		stats         = utils.NewStats()
		detector      = model.NewCycleDetector(0)
		lastFrameTime = time.Now()
	)

	for generation, grid := range states {
		frameStart := time.Now()
		if err := renderer.Clear(); err != nil {
			return err
		}

		status := updateGameState(grid, generation, lastFrameTime, stats, detector)
		lastFrameTime = frameStart

		displayGameStatus(generation, status, stats)
		if err := renderer.Display(grid); err != nil {
			return err
		}

		if generation == len(states)-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(config.FrameRate):
		}
	}
	return nil
}

// renderFinal streams the generations through a pooled pair of grids and
// renders only the last one
func renderFinal(ctx context.Context, initial *model.Grid, renderer *model.TextRenderer, config utils.Config) error {
	var (
		stats         = utils.NewStats()
		detector      = model.NewCycleDetector(0)
		lastFrameTime = time.Now()
		status        string
	)

	return model.Stream(initial, config.Generations, stepOptions(config), func(generation int, grid *model.Grid) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		status = updateGameState(grid, generation, lastFrameTime, stats, detector)
		lastFrameTime = time.Now()
		if generation < config.Generations {
			return nil
		}

		displayGameStatus(generation, status, stats)
		return renderer.Display(grid)
	})
}
