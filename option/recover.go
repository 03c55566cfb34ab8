package option

import (
	"context"

	"github.com/authcorp/libs/go/tiger/async"
	"github.com/authcorp/libs/go/tiger/errors"
	"github.com/authcorp/libs/go/tiger/internal/nilness"
)

// Recover returns o when present and Some(value) otherwise. It panics when
// value is nil.
func (o Option[T]) Recover(value T) Option[T] {
	errors.CheckArg(nilness.Is(value), "value")
	if o.present {
		return o
	}
	return Some(value)
}

// RecoverWith returns o when present and Some(fn()) otherwise. fn is only
// called on None.
func (o Option[T]) RecoverWith(fn func() T) Option[T] {
	errors.CheckArg(fn == nil, "fn")
	if o.present {
		return o
	}
	return Some(fn())
}

// RecoverAsync returns o when present and Some of the awaited fallback otherwise.
func (o Option[T]) RecoverAsync(ctx context.Context, fallback async.Task[T]) (Option[T], error) {
	errors.CheckArg(fallback == nil, "fallback")
	return MatchAsync[T, Option[T]](ctx, o, func(ctx context.Context) (Option[T], error) {
		v, err := fallback(ctx)
		if err != nil {
			return None[T](), err
		}
		return Some(v), nil
	}, async.Lift(Some[T]))
}

// ValueOrAsync returns the contained value or the awaited fallback.
func (o Option[T]) ValueOrAsync(ctx context.Context, fallback async.Task[T]) (T, error) {
	errors.CheckArg(fallback == nil, "fallback")
	if o.present {
		return o.value, nil
	}
	return fallback(ctx)
}
