package services

import (
	"errors"
	"fmt"
)

// Sentinel errors handlers translate into HTTP responses. Store failures
// pass through unwrapped and map to a generic 500.
var (
	// ErrNotFound means a referenced product/shop/member/entry does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation means the input was rejected before any write.
	ErrValidation = errors.New("invalid input")
)

func notFoundf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

func validationf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
