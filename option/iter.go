package option

import (
	"iter"

	"github.com/authcorp/libs/go/tiger/errors"
)

// All returns an iterator yielding the contained value once, or nothing.
func (o Option[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if o.present {
			yield(o.value)
		}
	}
}

// ToSlice converts the Option to a slice of zero or one element.
func (o Option[T]) ToSlice() []T {
	if o.present {
		return []T{o.value}
	}
	return []T{}
}

// Cat returns the present values of opts in order. A nil slice is an empty
// slice in Go and yields an empty result instead of failing; CatSeq rejects a
// nil sequence.
func Cat[T any](opts []Option[T]) []T {
	values := make([]T, 0, len(opts))
	for _, o := range opts {
		if o.present {
			values = append(values, o.value)
		}
	}
	return values
}

// CatSeq lazily yields the present values of seq in order.
func CatSeq[T any](seq iter.Seq[Option[T]]) iter.Seq[T] {
	errors.CheckArg(seq == nil, "seq")
	return func(yield func(T) bool) {
		for o := range seq {
			if o.present && !yield(o.value) {
				return
			}
		}
	}
}
