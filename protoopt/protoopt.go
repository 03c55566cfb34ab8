// Package protoopt converts between Option and the nullable well-known types
// of protobuf: the wrapperspb values, Timestamp and Duration. A nil message is
// None and None converts to a nil message.
package protoopt

import (
	"time"

	"google.golang.org/protobuf/types/known/durationpb"
	"google.golang.org/protobuf/types/known/timestamppb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/authcorp/libs/go/tiger/errors"
	"github.com/authcorp/libs/go/tiger/option"
)

type wrapper[T any] interface {
	comparable
	GetValue() T
}

func fromWrapper[T any, W wrapper[T]](w W) option.Option[T] {
	var zero W
	if w == zero {
		return option.None[T]()
	}
	return option.Some(w.GetValue())
}

func toWrapper[T, W any](o option.Option[T], wrap func(T) W) W {
	if v, ok := o.Get(); ok {
		return wrap(v)
	}
	var zero W
	return zero
}

// FromString converts a google.protobuf.StringValue.
func FromString(w *wrapperspb.StringValue) option.Option[string] {
	return fromWrapper[string](w)
}

// ToString converts to a google.protobuf.StringValue.
func ToString(o option.Option[string]) *wrapperspb.StringValue {
	return toWrapper(o, wrapperspb.String)
}

// FromInt64 converts a google.protobuf.Int64Value.
func FromInt64(w *wrapperspb.Int64Value) option.Option[int64] {
	return fromWrapper[int64](w)
}

// ToInt64 converts to a google.protobuf.Int64Value.
func ToInt64(o option.Option[int64]) *wrapperspb.Int64Value {
	return toWrapper(o, wrapperspb.Int64)
}

// FromInt32 converts a google.protobuf.Int32Value.
func FromInt32(w *wrapperspb.Int32Value) option.Option[int32] {
	return fromWrapper[int32](w)
}

// ToInt32 converts to a google.protobuf.Int32Value.
func ToInt32(o option.Option[int32]) *wrapperspb.Int32Value {
	return toWrapper(o, wrapperspb.Int32)
}

// FromUInt64 converts a google.protobuf.UInt64Value.
func FromUInt64(w *wrapperspb.UInt64Value) option.Option[uint64] {
	return fromWrapper[uint64](w)
}

// ToUInt64 converts to a google.protobuf.UInt64Value.
func ToUInt64(o option.Option[uint64]) *wrapperspb.UInt64Value {
	return toWrapper(o, wrapperspb.UInt64)
}

// FromUInt32 converts a google.protobuf.UInt32Value.
func FromUInt32(w *wrapperspb.UInt32Value) option.Option[uint32] {
	return fromWrapper[uint32](w)
}

// ToUInt32 converts to a google.protobuf.UInt32Value.
func ToUInt32(o option.Option[uint32]) *wrapperspb.UInt32Value {
	return toWrapper(o, wrapperspb.UInt32)
}

// FromBool converts a google.protobuf.BoolValue.
func FromBool(w *wrapperspb.BoolValue) option.Option[bool] {
	return fromWrapper[bool](w)
}

// ToBool converts to a google.protobuf.BoolValue.
func ToBool(o option.Option[bool]) *wrapperspb.BoolValue {
	return toWrapper(o, wrapperspb.Bool)
}

// FromDouble converts a google.protobuf.DoubleValue.
func FromDouble(w *wrapperspb.DoubleValue) option.Option[float64] {
	return fromWrapper[float64](w)
}

// ToDouble converts to a google.protobuf.DoubleValue.
func ToDouble(o option.Option[float64]) *wrapperspb.DoubleValue {
	return toWrapper(o, wrapperspb.Double)
}

// FromFloat converts a google.protobuf.FloatValue.
func FromFloat(w *wrapperspb.FloatValue) option.Option[float32] {
	return fromWrapper[float32](w)
}

// ToFloat converts to a google.protobuf.FloatValue.
func ToFloat(o option.Option[float32]) *wrapperspb.FloatValue {
	return toWrapper(o, wrapperspb.Float)
}

// FromBytes converts a google.protobuf.BytesValue. An empty but non-nil
// message is Some of an empty slice.
func FromBytes(w *wrapperspb.BytesValue) option.Option[[]byte] {
	return fromWrapper[[]byte](w)
}

// ToBytes converts to a google.protobuf.BytesValue.
func ToBytes(o option.Option[[]byte]) *wrapperspb.BytesValue {
	return toWrapper(o, wrapperspb.Bytes)
}

// FromTimestamp converts a Timestamp. Timestamps outside the range
// accepted by CheckValid are None.
func FromTimestamp(ts *timestamppb.Timestamp) option.Option[time.Time] {
	if ts.CheckValid() != nil {
		return option.None[time.Time]()
	}
	return option.Some(ts.AsTime())
}

// ToTimestamp converts to a Timestamp.
func ToTimestamp(o option.Option[time.Time]) *timestamppb.Timestamp {
	return toWrapper(o, timestamppb.New)
}

// FromDuration converts a Duration. Out of range durations are None.
func FromDuration(d *durationpb.Duration) option.Option[time.Duration] {
	if d.CheckValid() != nil {
		return option.None[time.Duration]()
	}
	return option.Some(d.AsDuration())
}

// ToDuration converts to a Duration.
func ToDuration(o option.Option[time.Duration]) *durationpb.Duration {
	return toWrapper(o, durationpb.New)
}

// Required returns the value of a request field or an error that maps to
// codes.InvalidArgument when the field is absent.
func Required[T any](field string, o option.Option[T]) (T, error) {
	if v, ok := o.Get(); ok {
		return v, nil
	}
	var zero T
	return zero, &errors.Error{
		Code:    errors.ErrCodeArgumentNil,
		Message: "required field is missing",
		Param:   field,
	}
}
