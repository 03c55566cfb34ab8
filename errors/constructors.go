package errors

// ArgumentNil creates an argument-nil error naming the offending parameter.
func ArgumentNil(param string) *Error {
	return &Error{Code: ErrCodeArgumentNil, Message: "argument is nil", Param: param}
}

// InvalidState creates an invalid-state error.
func InvalidState(message string) *Error {
	return &Error{Code: ErrCodeInvalidState, Message: message}
}

// ContractViolation creates a contract-violation error.
func ContractViolation(message string) *Error {
	return &Error{Code: ErrCodeContractViolation, Message: message}
}

// CheckArg panics with ArgumentNil(param) when isNil is true.
func CheckArg(isNil bool, param string) {
	if isNil {
		panic(ArgumentNil(param))
	}
}
