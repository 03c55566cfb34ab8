package option

import (
	"context"
	"log/slog"

	"github.com/authcorp/libs/go/tiger/async"
	"github.com/authcorp/libs/go/tiger/errors"
	"github.com/authcorp/libs/go/tiger/unit"
)

// Tap calls fn with the contained value when present and returns o unchanged.
func (o Option[T]) Tap(fn func(T)) Option[T] {
	errors.CheckArg(fn == nil, "fn")
	if o.present {
		fn(o.value)
	}
	return o
}

// TapBoth calls none or some depending on the state and returns o unchanged.
func (o Option[T]) TapBoth(none func(), some func(T)) Option[T] {
	o.MatchDo(none, some)
	return o
}

// Let calls fn with the contained value when present. It ends a chain.
func (o Option[T]) Let(fn func(T)) unit.Unit {
	o.Tap(fn)
	return unit.Value
}

// TapAsync awaits fn with the contained value when present. o is returned
// once fn completes.
func (o Option[T]) TapAsync(ctx context.Context, fn async.Func[T, unit.Unit]) (Option[T], error) {
	errors.CheckArg(fn == nil, "fn")
	return o.TapBothAsync(ctx, async.Value(unit.Value), fn)
}

// TapBothAsync awaits none or some and then returns o, also when the
// awaited action fails.
func (o Option[T]) TapBothAsync(ctx context.Context, none async.Task[unit.Unit], some async.Func[T, unit.Unit]) (Option[T], error) {
	_, err := o.MatchDoAsync(ctx, none, some)
	return o, err
}

// LetAsync awaits fn with the contained value when present.
func (o Option[T]) LetAsync(ctx context.Context, fn async.Func[T, unit.Unit]) (unit.Unit, error) {
	_, err := o.TapAsync(ctx, fn)
	return unit.Value, err
}

// Log writes a debug record describing o and returns o unchanged.
func (o Option[T]) Log(ctx context.Context, logger *slog.Logger, msg string) Option[T] {
	errors.CheckArg(logger == nil, "logger")
	return o.TapBoth(
		func() {
			logger.DebugContext(ctx, msg, slog.Bool("present", false))
		},
		func(v T) {
			logger.DebugContext(ctx, msg, slog.Bool("present", true), slog.Any("value", v))
		},
	)
}
