package async

import "context"

// Future holds the eventual result of a function started with Async.
type Future[U any] struct {
	result U
	err    error
	done   chan struct{}
}

// Await blocks until the computation completes and returns its result
// and error. Await may be called any number of times; every call
// returns the same values.
func (f *Future[U]) Await() (U, error) {
	<-f.done
	return f.result, f.err
}

// Async runs fn(ctx, param) on a new goroutine and returns a Future
// for its result. A context that is already canceled short-circuits:
// fn never runs and the future completes with the context error.
func Async[T any, U any](ctx context.Context, param T, fn func(context.Context, T) (U, error)) *Future[U] {
	f := &Future[U]{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		select {
		case <-ctx.Done():
			f.err = ctx.Err()
			return
		default:
		}

		f.result, f.err = fn(ctx, param)
	}()

	return f
}

// WaitAll blocks until every future completes and returns their
// results in argument order. The first error encountered, scanning in
// order, is returned alongside the results collected so far; remaining
// futures still run to completion on their own goroutines.
func WaitAll[U any](futures ...*Future[U]) ([]U, error) {
	results := make([]U, len(futures))

	for i, future := range futures {
		result, err := future.Await()
		results[i] = result
		if err != nil {
			return results, err
		}
	}

	return results, nil
}
