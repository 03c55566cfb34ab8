package option

import "log/slog"

// LogValue implements slog.LogValuer. None logs as "None".
func (o Option[T]) LogValue() slog.Value {
	if !o.present {
		return slog.StringValue("None")
	}
	return slog.AnyValue(o.value)
}
