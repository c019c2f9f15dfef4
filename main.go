package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-torus/model"
	"github.com/sheikhrachel/go-gol-torus/patterns"
	"github.com/sheikhrachel/go-gol-torus/utils"
)

func main() {
	args, err := utils.ParseArgs(os.Args[0], os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		exitWithError(err)
	}

	catalog := patterns.Default()
	if args.ListSeeds {
		for _, name := range catalog.Names() {
			fmt.Println(name)
		}
		return
	}

	config := args.Config
	grid, err := initializeGame(config, catalog)
	if err != nil {
		exitWithError(err)
	}
	displayGameInfo(config, grid)

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	renderer := model.NewTerminalRenderer(os.Stdout)
	if config.FinalOnly {
		err = renderFinal(ctx, grid, renderer, config)
	} else {
		var states []*model.Grid
		states, err = model.GenerateSequence(grid, config.Generations, stepOptions(config))
		if err == nil {
			err = animate(ctx, states, renderer, config)
		}
	}

	if errors.Is(err, context.Canceled) {
		fmt.Println("\n🛑 Shutting down gracefully...")
		return
	}
	if err != nil {
		exitWithError(err)
	}
}

func exitWithError(err error) {
	fmt.Fprintf(os.Stderr, "error: %+v\n", err)
	os.Exit(1)
}
