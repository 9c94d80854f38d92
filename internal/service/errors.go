package service

import (
	"errors"
	"fmt"
)

// ErrStorage marks failures of the underlying store. Every repository error
// crossing the service boundary is wrapped with it; callers match via
// errors.Is(err, ErrStorage).
var ErrStorage = errors.New("storage failure")

// ErrNotLoggedIn is returned by CurrentUser when no session is active.
var ErrNotLoggedIn = errors.New("no user is logged in")

// ValidationError reports a business-rule violation caused by caller input.
// The presentation layers show its message to the user directly.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationf(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a business-rule violation.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

func storage(err error) error {
	return fmt.Errorf("%w: %v", ErrStorage, err)
}
