// Package optiontest provides rapid generators for Option, Either and Union
// values.
package optiontest

import (
	"github.com/authcorp/libs/go/tiger/either"
	"github.com/authcorp/libs/go/tiger/option"
	"github.com/authcorp/libs/go/tiger/union"
	"pgregory.net/rapid"
)

// OptionGen generates Option[T] values.
func OptionGen[T any](valueGen *rapid.Generator[T]) *rapid.Generator[option.Option[T]] {
	return rapid.Custom(func(t *rapid.T) option.Option[T] {
		if rapid.Bool().Draw(t, "isSome") {
			return option.Some(valueGen.Draw(t, "value"))
		}
		return option.None[T]()
	})
}

// SomeGen generates Some[T] values only.
func SomeGen[T any](valueGen *rapid.Generator[T]) *rapid.Generator[option.Option[T]] {
	return rapid.Custom(func(t *rapid.T) option.Option[T] {
		return option.Some(valueGen.Draw(t, "value"))
	})
}

// NoneGen generates None[T] values only.
func NoneGen[T any]() *rapid.Generator[option.Option[T]] {
	return rapid.Just(option.None[T]())
}

// EitherGen generates Either[L, R] values.
func EitherGen[L, R any](leftGen *rapid.Generator[L], rightGen *rapid.Generator[R]) *rapid.Generator[either.Either[L, R]] {
	return rapid.Custom(func(t *rapid.T) either.Either[L, R] {
		if rapid.Bool().Draw(t, "isRight") {
			return either.Right[L](rightGen.Draw(t, "right"))
		}
		return either.Left[L, R](leftGen.Draw(t, "left"))
	})
}

// UnionGen generates Union[T1, T2] values.
func UnionGen[T1, T2 any](firstGen *rapid.Generator[T1], secondGen *rapid.Generator[T2]) *rapid.Generator[union.Union[T1, T2]] {
	return rapid.Custom(func(t *rapid.T) union.Union[T1, T2] {
		if rapid.Bool().Draw(t, "isFirst") {
			return union.First[T1, T2](firstGen.Draw(t, "first"))
		}
		return union.Second[T1](secondGen.Draw(t, "second"))
	})
}
