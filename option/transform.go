package option

import (
	"context"

	"github.com/authcorp/libs/go/tiger/async"
	"github.com/authcorp/libs/go/tiger/errors"
)

// Map applies fn to the contained value and wraps the result. fn is not
// called on None. fn must not return nil.
func Map[T, U any](o Option[T], fn func(T) U) Option[U] {
	errors.CheckArg(fn == nil, "fn")
	if o.present {
		return Some(fn(o.value))
	}
	return None[U]()
}

// MapAsync is Map with an awaited transform.
func MapAsync[T, U any](ctx context.Context, o Option[T], fn async.Func[T, U]) (Option[U], error) {
	errors.CheckArg(fn == nil, "fn")
	return MatchAsync(ctx, o, async.Value(None[U]()), func(ctx context.Context, v T) (Option[U], error) {
		out, err := fn(ctx, v)
		if err != nil {
			return None[U](), err
		}
		return Some(out), nil
	})
}

// Bind applies fn, which itself returns an Option, to the contained value.
func Bind[T, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	errors.CheckArg(fn == nil, "fn")
	if o.present {
		return fn(o.value)
	}
	return None[U]()
}

// BindAsync is Bind with an awaited transform.
func BindAsync[T, U any](ctx context.Context, o Option[T], fn async.Func[T, Option[U]]) (Option[U], error) {
	errors.CheckArg(fn == nil, "fn")
	return MatchAsync(ctx, o, async.Value(None[U]()), fn)
}

// Filter keeps the value only when predicate holds. predicate is not called
// on None.
func (o Option[T]) Filter(predicate func(T) bool) Option[T] {
	errors.CheckArg(predicate == nil, "predicate")
	if o.present && predicate(o.value) {
		return o
	}
	return None[T]()
}

// FilterAsync is Filter with an awaited predicate.
func (o Option[T]) FilterAsync(ctx context.Context, predicate async.Func[T, bool]) (Option[T], error) {
	errors.CheckArg(predicate == nil, "predicate")
	return MatchAsync(ctx, o, async.Value(o), func(ctx context.Context, v T) (Option[T], error) {
		keep, err := predicate(ctx, v)
		if err != nil || !keep {
			return None[T](), err
		}
		return o, nil
	})
}

// Fold returns fn(seed, value) when o is Some and seed otherwise.
func Fold[T, S any](o Option[T], seed S, fn func(S, T) S) S {
	errors.CheckArg(fn == nil, "fn")
	if o.present {
		return fn(seed, o.value)
	}
	return seed
}

// FoldAsync is Fold with an awaited combiner.
func FoldAsync[T, S any](ctx context.Context, o Option[T], seed S, fn func(context.Context, S, T) (S, error)) (S, error) {
	errors.CheckArg(fn == nil, "fn")
	if !o.present {
		return seed, nil
	}
	return fn(ctx, seed, o.value)
}
