package kanban

import (
	"errors"
	"fmt"

	orderservice "restoralia/internal/service/order"
)

// ErrorKind is the closed set of failure categories a drag can surface.
// Classification happens once here; wording lives in a Texts table so a
// caller can swap copy without touching the classification.
type ErrorKind string

const (
	KindInvalidInput     ErrorKind = "invalid_input"
	KindNotFound         ErrorKind = "not_found"
	KindPermissionDenied ErrorKind = "permission_denied"
	KindTerminalStatus   ErrorKind = "terminal_status"
	KindUnexpected       ErrorKind = "unexpected"
)

func KindOf(err error) ErrorKind {
	switch {
	case errors.Is(err, orderservice.ErrInvalidInput):
		return KindInvalidInput
	case errors.Is(err, orderservice.ErrOrderNotFound):
		return KindNotFound
	case errors.Is(err, orderservice.ErrPermissionDenied):
		return KindPermissionDenied
	case errors.Is(err, orderservice.ErrTerminalStatus):
		return KindTerminalStatus
	default:
		return KindUnexpected
	}
}

type Texts map[ErrorKind]string

var DefaultTexts = Texts{
	KindInvalidInput:     "That change is not valid",
	KindNotFound:         "Order no longer exists",
	KindPermissionDenied: "You do not have permission to move orders",
	KindTerminalStatus:   "Completed and cancelled orders cannot be moved",
	KindUnexpected:       "Something went wrong, the order was not moved",
}

// For resolves err to user-facing copy. Unexpected failures append the
// correlation id so support can find the server-side log line.
func (t Texts) For(err error) string {
	kind := KindOf(err)

	text, ok := t[kind]
	if !ok {
		text = DefaultTexts[KindUnexpected]
	}

	if kind == KindUnexpected {
		var unexpected *orderservice.UnexpectedError
		if errors.As(err, &unexpected) && unexpected.CorrelationID != "" {
			return fmt.Sprintf("%s (ref %s)", text, unexpected.CorrelationID)
		}
	}
	return text
}

func NotifyText(err error) string {
	return DefaultTexts.For(err)
}
