package workers

import (
	"context"
	"sync"
)

type Workers struct {
	workers []Worker

	wg sync.WaitGroup
}

// NewWorkers aggregates the given workers. Run starts them; Wait blocks
// until all of them have returned.
func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run starts every worker in its own goroutine. The workers stop when ctx is
// cancelled.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		w.wg.Add(1)
		go func(worker Worker) {
			defer w.wg.Done()
			worker.Run(ctx)
		}(worker)
	}
}

// Wait blocks until every started worker has returned.
func (w *Workers) Wait() {
	w.wg.Wait()
}
