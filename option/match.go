package option

import (
	"context"

	"github.com/authcorp/libs/go/tiger/async"
	"github.com/authcorp/libs/go/tiger/errors"
	"github.com/authcorp/libs/go/tiger/internal/nilness"
	"github.com/authcorp/libs/go/tiger/unit"
)

// Match returns none() when o is None and some(value) otherwise. Exactly one
// branch runs. A branch returning nil is a contract violation and panics.
func Match[T, U any](o Option[T], none func() U, some func(T) U) U {
	errors.CheckArg(none == nil, "none")
	errors.CheckArg(some == nil, "some")
	var out U
	if o.present {
		out = some(o.value)
	} else {
		out = none()
	}
	return checkProduced(out)
}

// MatchValue is Match with a constant for the None branch.
func MatchValue[T, U any](o Option[T], none U, some func(T) U) U {
	errors.CheckArg(nilness.Is(none), "none")
	return Match(o, func() U { return none }, some)
}

// MatchAsync awaits none or some depending on the state of o. Mix synchronous
// and asynchronous branches with async.Value, async.FromFunc and async.Lift.
func MatchAsync[T, U any](ctx context.Context, o Option[T], none async.Task[U], some async.Func[T, U]) (U, error) {
	errors.CheckArg(none == nil, "none")
	errors.CheckArg(some == nil, "some")
	var (
		out U
		err error
	)
	if o.present {
		out, err = some(ctx, o.value)
	} else {
		out, err = none(ctx)
	}
	if err != nil {
		var zero U
		return zero, err
	}
	return checkProduced(out), nil
}

// MatchDo runs none or some for their side effects.
func (o Option[T]) MatchDo(none func(), some func(T)) unit.Unit {
	errors.CheckArg(none == nil, "none")
	errors.CheckArg(some == nil, "some")
	if o.present {
		some(o.value)
	} else {
		none()
	}
	return unit.Value
}

// MatchDoAsync awaits none or some for their side effects.
func (o Option[T]) MatchDoAsync(ctx context.Context, none async.Task[unit.Unit], some async.Func[T, unit.Unit]) (unit.Unit, error) {
	return MatchAsync(ctx, o, none, some)
}

func checkProduced[U any](out U) U {
	if nilness.Is(out) {
		panic(errors.ContractViolation("option: match branch produced nil"))
	}
	return out
}
