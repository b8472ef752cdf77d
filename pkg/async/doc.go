// Package async provides a small future primitive for fanning
// independent work out to goroutines and collecting the results in
// order.
//
// Async starts a function on its own goroutine and returns a Future
// for its result. WaitAll blocks until every future completes and
// returns the results positionally, so a batch of inputs maps to a
// batch of outputs with the indexes preserved:
//
//	futures := make([]*async.Future[int], len(inputs))
//	for i, in := range inputs {
//		futures[i] = async.Async(ctx, in, process)
//	}
//	results, err := async.WaitAll(futures...)
//
// Futures carry no cancellation of their own. The context given to
// Async is checked once before the function runs and then passed
// through, so cancellation semantics belong to the function itself.
package async
