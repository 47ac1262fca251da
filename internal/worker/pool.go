package worker

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
)

// Task pairs an input with the outcome of processing it.
type Task[T any, R any] struct {
	Input  T
	Result R
	Err    error
}

// ProcessFunc processes a single input.
type ProcessFunc[T any, R any] func(ctx context.Context, input T) (R, error)

// Pool runs a ProcessFunc over a slice of inputs with bounded concurrency.
type Pool[T any, R any] struct {
	workers int
	process ProcessFunc[T, R]
}

// NewPool creates a pool with at least one worker.
func NewPool[T any, R any](workers int, fn ProcessFunc[T, R]) *Pool[T, R] {
	if workers < 1 {
		workers = 1
	}
	return &Pool[T, R]{
		workers: workers,
		process: fn,
	}
}

// Execute processes every input and returns one Task per input, in input
// order. Inputs not started before ctx is done get ctx.Err() as their error.
func (p *Pool[T, R]) Execute(ctx context.Context, inputs []T) []Task[T, R] {
	results := make([]Task[T, R], len(inputs))
	for i, in := range inputs {
		results[i].Input = in
	}

	indexes := make(chan int)
	var wg sync.WaitGroup

	for w := range min(p.workers, len(inputs)) {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for idx := range indexes {
				res, err := p.process(ctx, inputs[idx])
				results[idx].Result = res
				results[idx].Err = err
				if err != nil {
					log.Debug().Err(err).Int("worker", workerID).Int("index", idx).Msg("Task failed")
				}
			}
		}(w)
	}

	next := 0
feed:
	for ; next < len(inputs); next++ {
		select {
		case <-ctx.Done():
			break feed
		case indexes <- next:
		}
	}
	close(indexes)
	wg.Wait()

	for i := next; i < len(inputs); i++ {
		results[i].Err = ctx.Err()
	}
	return results
}
