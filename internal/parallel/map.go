// Package parallel provides a bounded, order-preserving parallel map.
package parallel

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Map calls fn for every index in [0, n) with at most workers calls in
// flight and returns the results in index order. The ctx passed to fn is
// canceled once any call has failed.
//
// Map blocks until every started call has returned. On failure it returns
// the first error and no results; calls that have not started yet are skipped.
// With workers <= 1 or n <= 1 all calls run on the caller's goroutine.
func Map[T any](n, workers int, fn func(ctx context.Context, i int) (T, error)) ([]T, error) {
	out := make([]T, n)
	if n == 0 {
		return out, nil
	}

	if workers <= 1 || n == 1 {
		ctx := context.Background()
		for i := range n {
			v, err := fn(ctx, i)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	}

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(min(workers, n))

	for i := range n {
		// g.Go blocks while the limit is reached; stop dispatching after a failure.
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			v, err := fn(ctx, i)
			if err != nil {
				return err
			}
			out[i] = v
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
