package social

import "context"

// Callback receives the outcome of an operation.
type Callback[T any] func(result T, err error)

// Dispatch runs an operation on its own goroutine and delivers the outcome to
// cb. It is the single callback-style boundary over the synchronous
// operations; the returned channel is closed after cb has run.
func Dispatch[T any](ctx context.Context, op func(context.Context) (T, error), cb Callback[T]) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		result, err := op(ctx)
		if cb != nil {
			cb(result, err)
		}
	}()
	return done
}
