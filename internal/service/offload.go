package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/semaphore"
)

// offloader runs CPU-bound crypto calls on their own goroutines, at most
// limit at a time. A caller whose context ends stops waiting; the call
// itself finishes in the background and then frees its slot.
type offloader struct {
	sem *semaphore.Weighted
}

func newOffloader(limit int64) *offloader {
	if limit < 1 {
		limit = 1
	}
	return &offloader{sem: semaphore.NewWeighted(limit)}
}

type result[T any] struct {
	val T
	err error
}

// offload runs fn on o. Results of an abandoned call are dropped.
func offload[T any](ctx context.Context, o *offloader, fn func() (T, error)) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, fmt.Errorf("waiting for crypto worker: %w", err)
	}
	if err := o.sem.Acquire(ctx, 1); err != nil {
		return zero, fmt.Errorf("waiting for crypto worker: %w", err)
	}

	done := make(chan result[T], 1)
	go func() {
		defer o.sem.Release(1)
		val, err := fn()
		done <- result[T]{val: val, err: err}
	}()

	select {
	case res := <-done:
		return res.val, res.err
	case <-ctx.Done():
		return zero, fmt.Errorf("crypto call abandoned: %w", ctx.Err())
	}
}
