package async

import (
	"context"
	"sync"
)

// Future is the result of a computation running on its own goroutine.
type Future[T any] struct {
	value T
	err   error
	done  chan struct{}
	once  sync.Once
}

// NewFuture starts fn on a new goroutine.
func NewFuture[T any](ctx context.Context, fn func(context.Context) (T, error)) *Future[T] {
	f := &Future[T]{
		done: make(chan struct{}),
	}
	go func() {
		value, err := fn(ctx)
		f.complete(value, err)
	}()
	return f
}

// Resolve creates a completed future with a value.
func Resolve[T any](value T) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	f.complete(value, nil)
	return f
}

// Reject creates a completed future with an error.
func Reject[T any](err error) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	var zero T
	f.complete(zero, err)
	return f
}

func (f *Future[T]) complete(value T, err error) {
	f.once.Do(func() {
		f.value, f.err = value, err
		close(f.done)
	})
}

// Wait blocks until the future completes.
func (f *Future[T]) Wait() (T, error) {
	<-f.done
	return f.value, f.err
}

// WaitContext blocks until the future completes or ctx is cancelled.
func (f *Future[T]) WaitContext(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// IsDone returns true if the future has completed.
func (f *Future[T]) IsDone() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Task returns a Task that awaits the future.
func (f *Future[T]) Task() Task[T] {
	return f.WaitContext
}
