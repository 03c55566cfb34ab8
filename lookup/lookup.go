// Package lookup adapts storage clients whose "not found" is an error value,
// such as redis.Nil or sql.ErrNoRows, to lookups returning option.Option.
// A miss is (None, nil); every other failure is returned as an error.
package lookup

import (
	"errors"

	"github.com/authcorp/libs/go/tiger/option"
)

// FromResult converts a client result. err matching notFound yields None.
func FromResult[T any](v T, err, notFound error) (option.Option[T], error) {
	if errors.Is(err, notFound) {
		return option.None[T](), nil
	}
	if err != nil {
		return option.None[T](), err
	}
	return option.From(v), nil
}
