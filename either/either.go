// Package either provides Either, a value of one of two possible types.
// By convention Left carries the reason a Right value is missing.
package either

import (
	"context"
	"fmt"

	"github.com/authcorp/libs/go/tiger/async"
	"github.com/authcorp/libs/go/tiger/errors"
	"github.com/authcorp/libs/go/tiger/internal/nilness"
)

// Either holds exactly one of a left or a right value. Neither side is ever nil.
// The zero value is a Left holding the zero L.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

// Left creates an Either with a left value. It panics when value is nil.
func Left[L, R any](value L) Either[L, R] {
	if nilness.Is(value) {
		panic(errors.ContractViolation("either: nil left value"))
	}
	return Either[L, R]{left: value, isRight: false}
}

// Right creates an Either with a right value. It panics when value is nil.
func Right[L, R any](value R) Either[L, R] {
	if nilness.Is(value) {
		panic(errors.ContractViolation("either: nil right value"))
	}
	return Either[L, R]{right: value, isRight: true}
}

// IsLeft returns true if Either contains a left value.
func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

// IsRight returns true if Either contains a right value.
func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// LeftValue returns the left value or panics.
func (e Either[L, R]) LeftValue() L {
	if e.isRight {
		panic(errors.InvalidState("either: LeftValue called on Right"))
	}
	return e.left
}

// RightValue returns the right value or panics.
func (e Either[L, R]) RightValue() R {
	if !e.isRight {
		panic(errors.InvalidState("either: RightValue called on Left"))
	}
	return e.right
}

// LeftOr returns the left value or a default.
func (e Either[L, R]) LeftOr(defaultValue L) L {
	if !e.isRight {
		return e.left
	}
	return defaultValue
}

// RightOr returns the right value or a default.
func (e Either[L, R]) RightOr(defaultValue R) R {
	if e.isRight {
		return e.right
	}
	return defaultValue
}

// Map applies fn to the right value.
func Map[L, R, U any](e Either[L, R], fn func(R) U) Either[L, U] {
	errors.CheckArg(fn == nil, "fn")
	if e.isRight {
		return Right[L](fn(e.right))
	}
	return Either[L, U]{left: e.left}
}

// MapLeft applies fn to the left value.
func MapLeft[L, R, U any](e Either[L, R], fn func(L) U) Either[U, R] {
	errors.CheckArg(fn == nil, "fn")
	if !e.isRight {
		return Left[U, R](fn(e.left))
	}
	return Either[U, R]{right: e.right, isRight: true}
}

// Bind applies fn, which itself returns an Either, to the right value.
func Bind[L, R, U any](e Either[L, R], fn func(R) Either[L, U]) Either[L, U] {
	errors.CheckArg(fn == nil, "fn")
	if e.isRight {
		return fn(e.right)
	}
	return Either[L, U]{left: e.left}
}

// Match returns onLeft(left) or onRight(right).
func Match[L, R, U any](e Either[L, R], onLeft func(L) U, onRight func(R) U) U {
	errors.CheckArg(onLeft == nil, "onLeft")
	errors.CheckArg(onRight == nil, "onRight")
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// MatchAsync awaits onLeft or onRight depending on the case.
func MatchAsync[L, R, U any](ctx context.Context, e Either[L, R], onLeft async.Func[L, U], onRight async.Func[R, U]) (U, error) {
	errors.CheckArg(onLeft == nil, "onLeft")
	errors.CheckArg(onRight == nil, "onRight")
	if e.isRight {
		return onRight(ctx, e.right)
	}
	return onLeft(ctx, e.left)
}

// MatchDo executes one of two functions based on Either state.
func (e Either[L, R]) MatchDo(onLeft func(L), onRight func(R)) {
	errors.CheckArg(onLeft == nil, "onLeft")
	errors.CheckArg(onRight == nil, "onRight")
	if e.isRight {
		onRight(e.right)
	} else {
		onLeft(e.left)
	}
}

// Swap exchanges left and right values.
func (e Either[L, R]) Swap() Either[R, L] {
	if e.isRight {
		return Either[R, L]{left: e.right}
	}
	return Either[R, L]{right: e.left, isRight: true}
}

// Split returns Right(value) when pred holds, else Left(value).
func Split[T any](value T, pred func(T) bool) Either[T, T] {
	errors.CheckArg(pred == nil, "pred")
	if pred(value) {
		return Right[T](value)
	}
	return Left[T, T](value)
}

// Equal reports whether a and b hold the same case and equal values.
func Equal[L, R comparable](a, b Either[L, R]) bool {
	if a.isRight != b.isRight {
		return false
	}
	if a.isRight {
		return a.right == b.right
	}
	return a.left == b.left
}

// String renders "Left(x)" or "Right(x)".
func (e Either[L, R]) String() string {
	if e.isRight {
		return fmt.Sprintf("Right(%v)", e.right)
	}
	return fmt.Sprintf("Left(%v)", e.left)
}
