package access

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"restoralia/internal/entities"
	"restoralia/pkg/logger"
)

// Guard is the server-side authorization authority: it decides whether an
// actor may operate on a workspace.
type Guard struct {
	repository Repository
	log        logger.Logger
}

func New(repository Repository, log logger.Logger) *Guard {
	return &Guard{
		repository: repository,
		log:        log.With(),
	}
}

// RequireWorkspaceRole validates that actorID holds one of the given roles in
// the workspace. It distinguishes ErrUnauthenticated (no actor at all) from
// ErrForbidden (no membership, or membership with an insufficient role);
// callers that must not leak which case applied collapse the two themselves.
func (g *Guard) RequireWorkspaceRole(ctx context.Context, workspaceID, actorID string, roles ...entities.WorkspaceRole) (*entities.Membership, error) {
	if strings.TrimSpace(workspaceID) == "" {
		return nil, ErrInvalidWorkspaceID
	}
	if strings.TrimSpace(actorID) == "" {
		g.log.With(
			logger.NewField("workspace", workspaceID),
		).Warn("unauthenticated access attempt on workspace")
		return nil, ErrUnauthenticated
	}

	membership, err := g.repository.GetMembership(ctx, workspaceID, actorID)
	if err != nil {
		if errors.Is(err, ErrMembershipNotFound) {
			g.log.With(
				logger.NewField("workspace", workspaceID),
				logger.NewField("actor", actorID),
			).Warn("actor is not a member of workspace")
			return nil, ErrForbidden
		}
		return nil, fmt.Errorf("get workspace membership: %w", err)
	}

	for _, role := range roles {
		if membership.Role == role {
			return membership, nil
		}
	}

	g.log.With(
		logger.NewField("workspace", workspaceID),
		logger.NewField("actor", actorID),
		logger.NewField("role", membership.Role.String()),
	).Warn("workspace role is insufficient")
	return nil, ErrForbidden
}
