package services

import "errors"

// ValidationError marks failures caused by caller input. Controllers map
// anything satisfying IsValidation to a 400 response; everything else is
// treated as a server-side failure.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func validationErr(msg string) error { return &ValidationError{msg: msg} }

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
