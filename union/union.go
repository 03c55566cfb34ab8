// Package union provides Union, a tagged union of two unrelated types with
// the same Match-based access as option.Option and either.Either.
package union

import (
	"fmt"

	"github.com/authcorp/libs/go/tiger/errors"
	"github.com/authcorp/libs/go/tiger/internal/nilness"
	"github.com/authcorp/libs/go/tiger/option"
)

type tag uint8

const (
	tagUnset tag = iota
	tagFirst
	tagSecond
)

// Union holds either a T1 or a T2. The zero value holds neither and is
// rejected by every accessor.
type Union[T1, T2 any] struct {
	first  T1
	second T2
	tag    tag
}

// First creates a Union holding a T1. It panics when value is nil.
func First[T1, T2 any](value T1) Union[T1, T2] {
	if nilness.Is(value) {
		panic(errors.ContractViolation("union: nil first value"))
	}
	return Union[T1, T2]{first: value, tag: tagFirst}
}

// Second creates a Union holding a T2. It panics when value is nil.
func Second[T1, T2 any](value T2) Union[T1, T2] {
	if nilness.Is(value) {
		panic(errors.ContractViolation("union: nil second value"))
	}
	return Union[T1, T2]{second: value, tag: tagSecond}
}

// IsFirst reports whether u holds a T1.
func (u Union[T1, T2]) IsFirst() bool {
	return u.tag == tagFirst
}

// IsSecond reports whether u holds a T2.
func (u Union[T1, T2]) IsSecond() bool {
	return u.tag == tagSecond
}

// FirstOption returns the T1 as an Option.
func (u Union[T1, T2]) FirstOption() option.Option[T1] {
	u.mustBeSet()
	return option.FromOk(u.first, u.tag == tagFirst)
}

// SecondOption returns the T2 as an Option.
func (u Union[T1, T2]) SecondOption() option.Option[T2] {
	u.mustBeSet()
	return option.FromOk(u.second, u.tag == tagSecond)
}

// Match returns onFirst or onSecond applied to the held value.
func Match[T1, T2, U any](u Union[T1, T2], onFirst func(T1) U, onSecond func(T2) U) U {
	errors.CheckArg(onFirst == nil, "onFirst")
	errors.CheckArg(onSecond == nil, "onSecond")
	u.mustBeSet()
	if u.tag == tagFirst {
		return onFirst(u.first)
	}
	return onSecond(u.second)
}

// MatchDo runs onFirst or onSecond for its side effects.
func (u Union[T1, T2]) MatchDo(onFirst func(T1), onSecond func(T2)) {
	errors.CheckArg(onFirst == nil, "onFirst")
	errors.CheckArg(onSecond == nil, "onSecond")
	u.mustBeSet()
	if u.tag == tagFirst {
		onFirst(u.first)
	} else {
		onSecond(u.second)
	}
}

// MapFirst transforms a held T1 and passes a T2 through.
func MapFirst[T1, T2, U any](u Union[T1, T2], fn func(T1) U) Union[U, T2] {
	errors.CheckArg(fn == nil, "fn")
	u.mustBeSet()
	if u.tag == tagFirst {
		return First[U, T2](fn(u.first))
	}
	return Union[U, T2]{second: u.second, tag: tagSecond}
}

// MapSecond transforms a held T2 and passes a T1 through.
func MapSecond[T1, T2, U any](u Union[T1, T2], fn func(T2) U) Union[T1, U] {
	errors.CheckArg(fn == nil, "fn")
	u.mustBeSet()
	if u.tag == tagSecond {
		return Second[T1](fn(u.second))
	}
	return Union[T1, U]{first: u.first, tag: tagFirst}
}

// String renders "First(v)" or "Second(v)".
func (u Union[T1, T2]) String() string {
	switch u.tag {
	case tagFirst:
		return fmt.Sprintf("First(%v)", u.first)
	case tagSecond:
		return fmt.Sprintf("Second(%v)", u.second)
	default:
		return "Union(unset)"
	}
}

func (u Union[T1, T2]) mustBeSet() {
	if u.tag == tagUnset {
		panic(errors.InvalidState("union: zero Union holds no value"))
	}
}
