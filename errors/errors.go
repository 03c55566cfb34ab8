// Package errors defines the failure taxonomy shared by the option, either
// and union packages. Contract violations are raised as panics carrying an
// *Error so callers can recover them and match with errors.Is.
package errors

import (
	"encoding/json"
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// AsType is a generic error type assertion.
// Returns the error as type T and true if the error chain contains type T.
func AsType[T error](err error) (T, bool) {
	var target T
	if errors.As(err, &target) {
		return target, true
	}
	return target, false
}

// ErrorCode represents a failure category.
type ErrorCode string

const (
	// ErrCodeArgumentNil marks a required function or value argument that was nil.
	ErrCodeArgumentNil ErrorCode = "ARGUMENT_NIL"
	// ErrCodeInvalidState marks an unwrap of a case the value is not in.
	ErrCodeInvalidState ErrorCode = "INVALID_STATE"
	// ErrCodeContractViolation marks a callback or constructor that produced nil
	// where a value is required.
	ErrCodeContractViolation ErrorCode = "CONTRACT_VIOLATION"
)

// Sentinel errors for errors.Is matching by code.
var (
	ErrArgumentNil       = &Error{Code: ErrCodeArgumentNil, Message: "argument is nil"}
	ErrInvalidState      = &Error{Code: ErrCodeInvalidState, Message: "invalid state"}
	ErrContractViolation = &Error{Code: ErrCodeContractViolation, Message: "contract violation"}
)

// Error is the error type raised by this module.
type Error struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Param   string    `json:"param,omitempty"`
	cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Code, e.Message)
	if e.Param != "" {
		msg += " (" + e.Param + ")"
	}
	if e.cause != nil {
		msg += ": " + e.cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for errors.Is/As.
func (e *Error) Unwrap() error {
	return e.cause
}

// WithCause sets the underlying cause on a copy of e.
func (e *Error) WithCause(cause error) *Error {
	cp := *e
	cp.cause = cause
	return &cp
}

// Is reports whether target is an *Error with the same code, falling back
// to the cause.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok && e.Code == t.Code {
		return true
	}
	return errors.Is(e.cause, target)
}

// GRPCStatus lets status.FromError translate the error into a gRPC status.
func (e *Error) GRPCStatus() *status.Status {
	return status.New(grpcCodeMap[e.Code], e.Error())
}

// MarshalJSON implements json.Marshaler.
func (e *Error) MarshalJSON() ([]byte, error) {
	type alias Error
	aux := &struct {
		*alias
		Cause string `json:"cause,omitempty"`
	}{alias: (*alias)(e)}
	if e.cause != nil {
		aux.Cause = e.cause.Error()
	}
	return json.Marshal(aux)
}

var grpcCodeMap = map[ErrorCode]codes.Code{
	ErrCodeArgumentNil:       codes.InvalidArgument,
	ErrCodeInvalidState:      codes.FailedPrecondition,
	ErrCodeContractViolation: codes.Internal,
}

// FromPanic converts a recovered panic value into an *Error when it is one.
func FromPanic(recovered any) (*Error, bool) {
	err, ok := recovered.(error)
	if !ok {
		return nil, false
	}
	return AsType[*Error](err)
}
