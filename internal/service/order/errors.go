package order

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput     = errors.New("invalid order input")
	ErrOrderNotFound    = errors.New("order not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrTerminalStatus   = errors.New("order status is terminal")
	ErrProductNotFound  = errors.New("product not found")
	ErrEmptyOrder       = errors.New("order has no items")

	// ErrUnexpected matches any UnexpectedError via errors.Is.
	ErrUnexpected = errors.New("unexpected order service failure")
)

// UnexpectedError hides internal failure detail behind a correlation id.
// The underlying cause is logged server-side and deliberately not unwrapped.
type UnexpectedError struct {
	CorrelationID string
}

func (e *UnexpectedError) Error() string {
	return fmt.Sprintf("unexpected order service failure (correlation id %s)", e.CorrelationID)
}

func (e *UnexpectedError) Is(target error) bool {
	return target == ErrUnexpected
}
