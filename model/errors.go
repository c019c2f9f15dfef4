package model

import "github.com/pkg/errors"

var (
	// ErrInvalidDimension is returned for a non-positive width or height
	ErrInvalidDimension = errors.New("invalid grid dimension")
	// ErrSeedTooLarge is returned when a pattern does not fit inside the target grid
	ErrSeedTooLarge = errors.New("seed pattern exceeds grid dimensions")
	// ErrInvalidSeed is returned for ragged patterns or cell values outside {0, 1}
	ErrInvalidSeed = errors.New("invalid seed pattern")
	// ErrNegativeGenerations is returned when a negative generation count is requested
	ErrNegativeGenerations = errors.New("generations must not be negative")
)
