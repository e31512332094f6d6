package access

import "errors"

var (
	ErrUnauthenticated    = errors.New("actor is not authenticated")
	ErrForbidden          = errors.New("actor lacks the required workspace role")
	ErrMembershipNotFound = errors.New("workspace membership not found")
	ErrInvalidWorkspaceID = errors.New("invalid workspace id")
)
