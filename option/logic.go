package option

import "github.com/authcorp/libs/go/tiger/errors"

// Truthy reports whether o is Some. It is the truth value used by Or and And.
func (o Option[T]) Truthy() bool {
	return o.present
}

// Not reports whether o is None.
func (o Option[T]) Not() bool {
	return !o.present
}

// Or returns o when present and other otherwise.
func (o Option[T]) Or(other Option[T]) Option[T] {
	if o.present {
		return o
	}
	return other
}

// OrFunc returns o when present and fn() otherwise. fn is not called when
// o is Some.
func (o Option[T]) OrFunc(fn func() Option[T]) Option[T] {
	errors.CheckArg(fn == nil, "fn")
	if o.present {
		return o
	}
	return fn()
}

// And returns other when o is present and None otherwise.
func (o Option[T]) And(other Option[T]) Option[T] {
	if o.present {
		return other
	}
	return None[T]()
}

// AndFunc returns fn() when o is present and None otherwise. fn is not
// called when o is None.
func (o Option[T]) AndFunc(fn func() Option[T]) Option[T] {
	errors.CheckArg(fn == nil, "fn")
	if o.present {
		return fn()
	}
	return None[T]()
}
