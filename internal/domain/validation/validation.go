// Package validation holds the input error shared by every domain service.
package validation

import (
	"errors"
	"fmt"
)

var ErrInvalid = errors.New("invalid input")

// Error is a user-facing input problem. errors.Is(err, ErrInvalid) holds.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Is(target error) bool {
	return target == ErrInvalid
}

func Errorf(format string, args ...any) error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}
