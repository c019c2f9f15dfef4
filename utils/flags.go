package utils

import (
	"flag"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// sizeValue adapts ParseSize to flag.Value
type sizeValue struct {
	width, height *int
}

func (v sizeValue) String() string {
	if v.width == nil || v.height == nil {
		return ""
	}
	return fmt.Sprintf("%d,%d", *v.width, *v.height)
}

func (v sizeValue) Set(s string) error {
	width, height, err := ParseSize(s)
	if err != nil {
		return err
	}
	*v.width, *v.height = width, height
	return nil
}

// Bind attaches the configuration to the provided FlagSet
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.Var(sizeValue{&c.Width, &c.Height}, "size", "world size as W,H")
	fs.IntVar(&c.Generations, "generations", c.Generations, "generations to compute")
	fs.StringVar(&c.Seed, "seed", c.Seed, "named seed to place in the world ("+DefaultSeedName+" is random)")
	fs.Int64Var(&c.RandomSeed, "random-seed", c.RandomSeed, "RNG seed for random worlds")
	fs.BoolVar(&c.UseParallel, "parallel", c.UseParallel, "compute each generation in row bands")
	fs.IntVar(&c.Workers, "workers", c.Workers, "parallel workers (0 = one per CPU)")
	fs.BoolVar(&c.UseMemoryPool, "pool", c.UseMemoryPool, "recycle grids in -final-only mode")
	fs.DurationVar(&c.FrameRate, "frame-rate", c.FrameRate, "delay between rendered frames")
	fs.BoolVar(&c.FinalOnly, "final-only", c.FinalOnly, "render only the last generation")
}

// Args is the parsed command line
type Args struct {
	Config     Config
	ConfigPath string
	ListSeeds  bool
}

func newFlagSet(name string, out io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)
	return fs
}

// ParseArgs reads -config first, if given, then lets the remaining flags
// override the file. The result is validated.
func ParseArgs(name string, args []string, out io.Writer) (Args, error) {
	var (
		parsed  Args
		scratch = DefaultConfig()
		first   = newFlagSet(name, io.Discard)
	)
	scratch.Bind(first)
	first.StringVar(&parsed.ConfigPath, "config", "", "")
	first.BoolVar(&parsed.ListSeeds, "list-seeds", false, "")
	if err := first.Parse(args); err != nil {
		// reported again below with usage
		parsed.ConfigPath = ""
	}

	parsed.Config = DefaultConfig()
	if parsed.ConfigPath != "" {
		config, err := LoadConfig(parsed.ConfigPath)
		if err != nil {
			return parsed, errors.Wrap(err, "[ParseArgs] failed to load config")
		}
		parsed.Config = config
	}

	fs := newFlagSet(name, out)
	parsed.Config.Bind(fs)
	fs.StringVar(&parsed.ConfigPath, "config", parsed.ConfigPath, "JSON config file; flags override it")
	fs.BoolVar(&parsed.ListSeeds, "list-seeds", parsed.ListSeeds, "print the named seeds and exit")
	if err := fs.Parse(args); err != nil {
		return parsed, errors.Wrap(err, "[ParseArgs] failed to parse flags")
	}
	if fs.NArg() > 0 {
		return parsed, errors.Wrapf(ErrInvalidConfig, "[ParseArgs] unexpected arguments %q", fs.Args())
	}

	if err := parsed.Config.Validate(); err != nil {
		return parsed, errors.Wrap(err, "[ParseArgs] invalid flags")
	}
	return parsed, nil
}
