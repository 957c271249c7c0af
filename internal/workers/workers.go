package workers

import (
	"context"

	"golang.org/x/sync/errgroup"
)

type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run starts every worker and waits for all of them. The first error
// cancels the others and is returned.
func (w *Workers) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, worker := range w.workers {
		g.Go(func() error {
			return worker.Run(gctx)
		})
	}
	return g.Wait()
}
