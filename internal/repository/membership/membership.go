package membership

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"restoralia/internal/entities"
	accessservice "restoralia/internal/service/access"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetMembership(ctx context.Context, workspaceID, userID string) (*entities.Membership, error) {
	query := `SELECT user_id, workspace_id, role, created_at
		FROM workspace_members
		WHERE workspace_id = $1
		  AND user_id = $2`

	var membershipModel MembershipDB
	err := r.querier.QueryRow(ctx, query, workspaceID, userID).
		Scan(
			&membershipModel.UserID,
			&membershipModel.WorkspaceID,
			&membershipModel.Role,
			&membershipModel.CreatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, accessservice.ErrMembershipNotFound
		}
		return nil, fmt.Errorf("unexpected membership repository get error: %w", err)
	}

	return ToDomain(&membershipModel), nil
}
