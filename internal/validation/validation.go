// Package validation checks registration input before it reaches the store.
// Checks run in a fixed order and stop at the first failure, so the caller
// always reports the first problem found.
package validation

import "errors"

// Error marks an input rejection so handlers can map it to a 4xx response.
type Error struct {
	msg string
}

func (e *Error) Error() string {
	return e.msg
}

func newError(msg string) *Error {
	return &Error{msg: msg}
}

// Rejection reasons, in the order the checks apply.
var (
	ErrMissingEmail        = newError("email address is required")
	ErrInvalidEmailFormat  = newError("invalid email address format")
	ErrMissingName         = newError("name is required")
	ErrInvalidNameType     = newError("name must be a string")
	ErrInvalidPassword     = newError("password is required")
	ErrInvalidPasswordType = newError("password must be a string")
	ErrMissingRoleFlag     = newError("isInstructor flag is required and must be a boolean")
)

// IsValidationError reports whether err is an input rejection
// rather than an infrastructure failure.
func IsValidationError(err error) bool {
	var ve *Error
	return errors.As(err, &ve)
}
