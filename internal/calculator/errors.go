package calculator

import "errors"

var (
	// ErrDivisionByZero is returned by Divide when the divisor is zero.
	ErrDivisionByZero = errors.New("Cannot divide by zero")
	// ErrUnknownOperation is returned when an operation name is not recognised.
	ErrUnknownOperation = errors.New("unknown operation")
)
