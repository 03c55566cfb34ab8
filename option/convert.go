package option

import (
	"context"
	"database/sql"

	"github.com/authcorp/libs/go/tiger/async"
	"github.com/authcorp/libs/go/tiger/either"
	"github.com/authcorp/libs/go/tiger/errors"
	"github.com/authcorp/libs/go/tiger/internal/nilness"
)

// ToEither converts Some(v) to Right(v) and None to Left(left).
func ToEither[T, L any](o Option[T], left L) either.Either[L, T] {
	errors.CheckArg(nilness.Is(left), "left")
	if o.present {
		return either.Right[L](o.value)
	}
	return either.Left[L, T](left)
}

// ToEitherFunc is ToEither with a lazily computed Left. fn is only called on None.
func ToEitherFunc[T, L any](o Option[T], fn func() L) either.Either[L, T] {
	errors.CheckArg(fn == nil, "fn")
	if o.present {
		return either.Right[L](o.value)
	}
	return either.Left[L, T](fn())
}

// ToEitherAsync is ToEither with an awaited Left.
func ToEitherAsync[T, L any](ctx context.Context, o Option[T], fn async.Task[L]) (either.Either[L, T], error) {
	errors.CheckArg(fn == nil, "fn")
	if o.present {
		return either.Right[L](o.value), nil
	}
	left, err := fn(ctx)
	if err != nil {
		return either.Either[L, T]{}, err
	}
	return either.Left[L, T](left), nil
}

// FromRight converts Right(v) to Some(v) and any Left to None.
func FromRight[L, R any](e either.Either[L, R]) Option[R] {
	if e.IsRight() {
		return Some(e.RightValue())
	}
	return None[R]()
}

// FromLeft converts Left(v) to Some(v) and any Right to None.
func FromLeft[L, R any](e either.Either[L, R]) Option[L] {
	if e.IsLeft() {
		return From(e.LeftValue())
	}
	return None[L]()
}

// ToPtr returns a pointer to a copy of the value, or nil for None.
func (o Option[T]) ToPtr() *T {
	if !o.present {
		return nil
	}
	value := o.value
	return &value
}

// ToNull converts o to sql.Null, the standard library's nullable wrapper.
func (o Option[T]) ToNull() sql.Null[T] {
	return sql.Null[T]{V: o.value, Valid: o.present}
}

// FromNull creates an Option from sql.Null.
func FromNull[T any](n sql.Null[T]) Option[T] {
	return FromOk(n.V, n.Valid)
}

// Join flattens a nested Option.
func Join[T any](o Option[Option[T]]) Option[T] {
	if o.present {
		return o.value
	}
	return None[T]()
}

// Split returns Some(value) when value is non-nil and predicate holds.
func Split[T any](value T, predicate func(T) bool) Option[T] {
	return From(value).Filter(predicate)
}

// SplitAsync is Split with an awaited predicate.
func SplitAsync[T any](ctx context.Context, value T, predicate async.Func[T, bool]) (Option[T], error) {
	return From(value).FilterAsync(ctx, predicate)
}

// SplitEither returns Right(value) when predicate holds and Left(value) otherwise.
func SplitEither[T any](value T, predicate func(T) bool) either.Either[T, T] {
	return either.Split(value, predicate)
}

// SplitEitherAsync is SplitEither with an awaited predicate.
func SplitEitherAsync[T any](ctx context.Context, value T, predicate async.Func[T, bool]) (either.Either[T, T], error) {
	errors.CheckArg(predicate == nil, "predicate")
	ok, err := predicate(ctx, value)
	if err != nil {
		return either.Either[T, T]{}, err
	}
	if ok {
		return either.Right[T](value), nil
	}
	return either.Left[T, T](value), nil
}
