// Package async provides a small generic Future used to represent work that
// completes later.
//
// A Future is obtained by calling Async, which starts the supplied function in
// its own goroutine and immediately returns a *Future, or Resolved, which wraps
// an outcome that is already known. Callers wait with Await, or with
// AwaitContext when the wait itself must be abandonable.
//
// # Usage
//
//	future := async.Async(ctx, 42, func(_ context.Context, v int) (string, error) {
//	    return fmt.Sprintf("value is %d", v), nil
//	})
//
//	res, err := future.Await()
//
// Any type exposing an Await method with a trailing error result is treated
// as an awaitable by the callable package, so functions under test may return
// a *Future directly.
//
// # Error Handling
//
// The package does not introduce custom error types; Await returns the error
// produced by the user callback, and AwaitContext returns ctx.Err() when the
// context is done first.
package async
