// Package engine advances a grid one generation at a time and applies user
// commands to it between generations.
package engine

import (
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-gol-sim/model"
	"github.com/sheikhrachel/go-gol-sim/rules"
)

type stepOptions struct {
	workers int
	pool    *model.GridPool
}

// StepOption configures Step
type StepOption func(*stepOptions)

// WithWorkers sets how many goroutines share a step. Zero or less uses one
// per CPU.
func WithWorkers(n int) StepOption {
	return func(o *stepOptions) {
		o.workers = n
	}
}

// WithPool takes next-generation grids from pool instead of allocating
func WithPool(pool *model.GridPool) StepOption {
	return func(o *stepOptions) {
		o.pool = pool
	}
}

func newStepOptions(opts []StepOption) stepOptions {
	var o stepOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.workers <= 0 {
		o.workers = runtime.NumCPU()
	}
	return o
}

// Step computes the next generation of grid. When paused it returns grid
// itself and does no work.
//
// Every cell is computed against grid, which is never written; results go to
// a fresh grid of the same size. Rows are split between workers so no two
// goroutines write the same cell, and the result is returned only after all
// of them finish.
func Step(grid *model.Grid, paused bool, opts ...StepOption) (*model.Grid, error) {
	return step(grid, paused, newStepOptions(opts))
}

func step(grid *model.Grid, paused bool, o stepOptions) (*model.Grid, error) {
	if paused {
		return grid, nil
	}

	width, height := grid.GetWidth(), grid.GetHeight()

	var next *model.Grid
	if o.pool != nil {
		next = o.pool.Get(width, height)
	} else {
		var err error
		if next, err = model.NewGrid(width, height); err != nil {
			return nil, errors.Wrap(err, "[Step]")
		}
	}

	var (
		eg            errgroup.Group
		numWorkers    = min(o.workers, height)
		rowsPerWorker = (height + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, height)
		)
		if startRow >= height {
			break
		}

		eg.Go(func() error {
			for idx := grid.IndexOf(0, startRow); idx < grid.IndexOf(0, endRow); idx++ {
				if err := next.Set(idx, rules.NextState(grid, idx)); err != nil {
					return errors.Wrapf(err, "[Step] rows %d-%d", startRow, endRow)
				}
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		model.GridToPool(next, o.pool)
		return nil, err
	}

	return next, nil
}
