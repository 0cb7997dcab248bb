package errors

import "fmt"

type DriverError interface {
	error
	WithMessage(message string) DriverError
	WrapError(err error) DriverError
}

// -----------------------------------------------------------------------------

type customCheckError struct {
	message       string
	originalError error
}

func (e customCheckError) Error() string {
	return e.message
}

func (e customCheckError) WithMessage(message string) DriverError {
	return customCheckError{
		message:       fmt.Sprintf("%s: %s", e.message, message),
		originalError: e,
	}
}

func (e customCheckError) WrapError(err error) DriverError {
	return customCheckError{
		message:       fmt.Sprintf("%s: %s", e.Error(), err.Error()),
		originalError: err,
	}
}

func (e customCheckError) Unwrap() error {
	return e.originalError
}
