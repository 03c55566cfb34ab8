// Package async provides the producer types accepted by the asynchronous
// combinators of the option, either and union packages.
//
// A Task is awaited on the caller's goroutine: the combinators never start
// goroutines and add no synchronization. Any suspension happens inside the
// caller's own producer, which also decides how to honour ctx.
package async

import (
	"context"

	"github.com/authcorp/libs/go/tiger/errors"
	"github.com/authcorp/libs/go/tiger/unit"
)

// Task produces a T, possibly blocking until ctx is done.
type Task[T any] func(ctx context.Context) (T, error)

// Func consumes a T and produces a U, possibly blocking until ctx is done.
type Func[T, U any] func(ctx context.Context, v T) (U, error)

// Await runs the task. It panics with an argument-nil error when t is nil.
func (t Task[T]) Await(ctx context.Context) (T, error) {
	errors.CheckArg(t == nil, "task")
	return t(ctx)
}

// Call runs the function on v. It panics with an argument-nil error when f is nil.
func (f Func[T, U]) Call(ctx context.Context, v T) (U, error) {
	errors.CheckArg(f == nil, "func")
	return f(ctx, v)
}

// Value returns a task that completes immediately with v.
func Value[T any](v T) Task[T] {
	return func(context.Context) (T, error) {
		return v, nil
	}
}

// Fail returns a task that completes immediately with err.
func Fail[T any](err error) Task[T] {
	return func(context.Context) (T, error) {
		var zero T
		return zero, err
	}
}

// FromFunc adapts a synchronous producer. A nil fn yields a nil Task.
func FromFunc[T any](fn func() T) Task[T] {
	if fn == nil {
		return nil
	}
	return func(context.Context) (T, error) {
		return fn(), nil
	}
}

// FromAction adapts a synchronous side effect into a Task[unit.Unit].
func FromAction(fn func()) Task[unit.Unit] {
	if fn == nil {
		return nil
	}
	return func(context.Context) (unit.Unit, error) {
		fn()
		return unit.Value, nil
	}
}

// Lift adapts a synchronous transform. A nil fn yields a nil Func.
func Lift[T, U any](fn func(T) U) Func[T, U] {
	if fn == nil {
		return nil
	}
	return func(_ context.Context, v T) (U, error) {
		return fn(v), nil
	}
}

// Action adapts a synchronous consumer into a Func returning unit.Unit.
func Action[T any](fn func(T)) Func[T, unit.Unit] {
	if fn == nil {
		return nil
	}
	return func(_ context.Context, v T) (unit.Unit, error) {
		fn(v)
		return unit.Value, nil
	}
}
