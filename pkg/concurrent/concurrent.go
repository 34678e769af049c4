package concurrent

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// ErrorMode selects how ParallelMap reacts to a failing item.
type ErrorMode int

const (
	// StopAllOnError cancels the remaining items on the first error.
	StopAllOnError ErrorMode = iota
	// ContinueOnError runs every item and reports each error at its index.
	ContinueOnError
)

// ParallelMap applies fn to every item with at most limit workers and keeps
// results and errors at the index of their input.
//
// With ContinueOnError fn runs for every item, even once ctx is done, so it
// can report its own state alongside ctx.Err(). With StopAllOnError items
// not started before the first error report the context error and keep a
// zero result.
func ParallelMap[T any, R any](
	ctx context.Context,
	items []T,
	limit int,
	mode ErrorMode,
	fn func(ctx context.Context, idx int, item T) (R, error),
) ([]R, []error) {
	out := make([]R, len(items))
	errs := make([]error, len(items))

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for idx, item := range items {
		g.Go(func() error {
			if mode == StopAllOnError {
				if err := gctx.Err(); err != nil {
					errs[idx] = err
					return nil
				}
			}
			r, err := fn(gctx, idx, item)
			out[idx], errs[idx] = r, err
			if err != nil && mode == StopAllOnError {
				return err
			}
			return nil
		})
	}
	_ = g.Wait()
	return out, errs
}
