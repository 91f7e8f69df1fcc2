package services

import (
	"errors"
	"fmt"
)

// ValidationError marks a failure caused by user-supplied values. Any other
// error escaping this package is a programming defect, not an input problem.
type ValidationError struct {
	Message string
}

func (err *ValidationError) Error() string {
	return err.Message
}

func validationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func IsValidationError(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}
