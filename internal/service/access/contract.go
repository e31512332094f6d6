//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=access_test
package access

import (
	"context"

	"restoralia/internal/entities"
)

type Repository interface {
	// GetMembership returns the actor's membership in the workspace, or
	// ErrMembershipNotFound.
	GetMembership(ctx context.Context, workspaceID, userID string) (*entities.Membership, error)
}
