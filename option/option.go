// Package option provides Option, a value that may be absent, together with
// the combinators used to transform, branch on, and leave it.
//
// The zero Option is None, so arrays and struct fields of Option need no
// initialisation. Options are immutable values: every combinator returns a
// new Option and none of them retains state between calls.
//
// Combinators that change the element type (Map, Bind, Fold, Match...) are
// package functions; the ones that keep it (Filter, Tap, Recover, Or...) are
// methods. Each has an Async form taking an async.Task or async.Func that is
// awaited on the caller's goroutine.
package option

import (
	"fmt"

	"github.com/authcorp/libs/go/tiger/errors"
	"github.com/authcorp/libs/go/tiger/internal/nilness"
)

// Option represents an optional value that may or may not be present.
// A present Option never holds a nil pointer, interface, channel or func.
type Option[T any] struct {
	value   T
	present bool
}

// Some creates an Option containing value. It panics with a contract
// violation when value is nil; use From when nil means absent.
func Some[T any](value T) Option[T] {
	if nilness.Is(value) {
		panic(errors.ContractViolation("option: Some called with nil"))
	}
	return Option[T]{value: value, present: true}
}

// None creates an empty Option. It is equal to the zero Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// From returns None when value is nil and Some(value) otherwise.
func From[T any](value T) Option[T] {
	if nilness.Is(value) {
		return None[T]()
	}
	return Option[T]{value: value, present: true}
}

// FromPtr creates an Option from a pointer, dereferencing it when non-nil.
func FromPtr[T any](ptr *T) Option[T] {
	if ptr == nil {
		return None[T]()
	}
	return From(*ptr)
}

// FromOk creates an Option from the comma-ok idiom.
func FromOk[T any](value T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return From(value)
}

// IsSome returns true if the Option contains a value.
func (o Option[T]) IsSome() bool {
	return o.present
}

// IsNone returns true if the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.present
}

// IsZero reports whether o is None. It lets encoding/json omit None fields
// tagged omitzero.
func (o Option[T]) IsZero() bool {
	return !o.present
}

// Value returns the contained value. It panics with an invalid-state error
// when the Option is None.
func (o Option[T]) Value() T {
	if !o.present {
		panic(errValueOfNone)
	}
	return o.value
}

// TryValue returns the contained value, or an invalid-state error when None.
func (o Option[T]) TryValue() (T, error) {
	if !o.present {
		var zero T
		return zero, errValueOfNone
	}
	return o.value, nil
}

// Get returns the contained value and whether it was present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

// ValueOrDefault returns the contained value or the zero value of T.
func (o Option[T]) ValueOrDefault() T {
	return o.value
}

// ValueOr returns the contained value or other.
func (o Option[T]) ValueOr(other T) T {
	if o.present {
		return o.value
	}
	return other
}

// ValueOrElse returns the contained value or computes one. fn is only
// called when the Option is None.
func (o Option[T]) ValueOrElse(fn func() T) T {
	errors.CheckArg(fn == nil, "fn")
	if o.present {
		return o.value
	}
	return fn()
}

// String renders "Some(v)" or "None".
func (o Option[T]) String() string {
	if o.present {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

var errValueOfNone = errors.InvalidState("option: Value called on None")
