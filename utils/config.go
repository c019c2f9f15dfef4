package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// DefaultSeedName selects a random initial grid
const DefaultSeedName = "Default"

// ErrInvalidConfig is returned by Validate
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the configuration for a run
type Config struct {
	Width         int           `json:"width"`
	Height        int           `json:"height"`
	Generations   int           `json:"generations"`
	Seed          string        `json:"seed"`
	RandomSeed    int64         `json:"random_seed"`
	UseParallel   bool          `json:"use_parallel"`
	Workers       int           `json:"workers"`
	UseMemoryPool bool          `json:"use_memory_pool"`
	FrameRate     time.Duration `json:"frame_rate"`
	FinalOnly     bool          `json:"final_only"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:         100,
		Height:        100,
		Generations:   100,
		Seed:          DefaultSeedName,
		RandomSeed:    time.Now().UnixNano(),
		UseParallel:   true,
		Workers:       0, // runtime.NumCPU()
		UseMemoryPool: true,
		FrameRate:     300 * time.Millisecond,
		FinalOnly:     false,
	}
}

// LoadConfig loads configuration from JSON file on top of the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Validate rejects sizes and counts the simulation cannot run with
func (c Config) Validate() error {
	switch {
	case c.Width < 1 || c.Height < 1:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] size must be positive, got %dx%d", c.Width, c.Height)
	case c.Generations < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] generations must not be negative, got %d", c.Generations)
	case c.Workers < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] workers must not be negative, got %d", c.Workers)
	case c.FrameRate < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] frame rate must not be negative, got %v", c.FrameRate)
	}
	return nil
}
