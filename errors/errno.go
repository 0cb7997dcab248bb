// Package errors defines the closed set of fatal error conditions vsfsck
// can raise. These are distinct from corruption the checker repairs in
// place (geometry violations, bad pointers, bitmap disagreements) — a
// CheckError aborts the run before any further region is examined.
package errors

import (
	"fmt"
)

type CheckError string

const ErrUsage = CheckError("exactly one image path is required")
const ErrOpenFailed = CheckError("failed to open image")
const ErrShortIO = CheckError("short read or write on block device")
const ErrWrongSize = CheckError("image size does not match the declared geometry")

func (e CheckError) Error() string {
	return string(e)
}

func (e CheckError) WithMessage(message string) DriverError {
	return customCheckError{
		message:       fmt.Sprintf("%s: %s", e.Error(), message),
		originalError: e,
	}
}

func (e CheckError) WrapError(err error) DriverError {
	return customCheckError{
		message:       fmt.Sprintf("%s: %s", e.Error(), err.Error()),
		originalError: err,
	}
}
