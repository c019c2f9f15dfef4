package model

import "github.com/pkg/errors"

// GenerateSequence returns generations+1 grids: the initial grid followed by
// each successive generation. Every element is independently owned, so
// opts.Pool is ignored.
func GenerateSequence(initial *Grid, generations int, opts StepOptions) ([]*Grid, error) {
	if initial == nil {
		return nil, errors.New("[GenerateSequence] initial grid is nil")
	}
	if generations < 0 {
		return nil, errors.Wrapf(ErrNegativeGenerations, "[GenerateSequence] got %d", generations)
	}

	opts.Pool = nil
	states := make([]*Grid, 0, generations+1)
	states = append(states, initial)
	for k := 1; k <= generations; k++ {
		states = append(states, states[k-1].NextGeneration(opts))
	}
	return states, nil
}

// StreamFunc receives each generation in order. The grid is only valid for
// the duration of the call when a pool is in use.
type StreamFunc func(generation int, grid *Grid) error

// Stream walks the same generations as GenerateSequence but keeps only the
// current grid alive, recycling the previous one through opts.Pool. The
// initial grid is never recycled. A non-nil error from fn stops the walk.
func Stream(initial *Grid, generations int, opts StepOptions, fn StreamFunc) error {
	if initial == nil {
		return errors.New("[Stream] initial grid is nil")
	}
	if generations < 0 {
		return errors.Wrapf(ErrNegativeGenerations, "[Stream] got %d", generations)
	}

	current := initial
	for k := 0; ; k++ {
		if err := fn(k, current); err != nil {
			return errors.Wrapf(err, "[Stream] generation %d", k)
		}
		if k == generations {
			return nil
		}

		next := current.NextGeneration(opts)
		if current != initial {
			GridToPool(current, opts.Pool)
		}
		current = next
	}
}
