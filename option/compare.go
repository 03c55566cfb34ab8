package option

import (
	"cmp"
	"hash/maphash"

	"github.com/authcorp/libs/go/tiger/errors"
)

// Equal reports whether a and b are both None, or both Some with equal values.
func Equal[T comparable](a, b Option[T]) bool {
	return a.EqualFunc(b, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal but compares present values with eq.
func (o Option[T]) EqualFunc(other Option[T], eq func(T, T) bool) bool {
	errors.CheckArg(eq == nil, "eq")
	if o.present != other.present {
		return false
	}
	return !o.present || eq(o.value, other.value)
}

// Compare orders None before every Some and present values by cmp.Compare.
// The result is -1, 0 or +1.
func Compare[T cmp.Ordered](a, b Option[T]) int {
	return CompareFunc(a, b, cmp.Compare[T])
}

// CompareFunc is like Compare but orders present values with compare.
// The result is normalised to -1, 0 or +1.
func CompareFunc[T any](a, b Option[T], compare func(T, T) int) int {
	errors.CheckArg(compare == nil, "compare")
	switch {
	case !a.present && !b.present:
		return 0
	case !a.present:
		return -1
	case !b.present:
		return 1
	}
	return cmp.Compare(compare(a.value, b.value), 0)
}

// Hash returns 0 for None and the maphash of the value for Some.
func Hash[T comparable](seed maphash.Seed, o Option[T]) uint64 {
	if !o.present {
		return 0
	}
	return maphash.Comparable(seed, o.value)
}

// HashFunc returns 0 for None and hash(value) for Some.
func (o Option[T]) HashFunc(hash func(T) uint64) uint64 {
	errors.CheckArg(hash == nil, "hash")
	if !o.present {
		return 0
	}
	return hash(o.value)
}
