package membership

import (
	"restoralia/internal/entities"
)

func ToDomain(m *MembershipDB) *entities.Membership {
	if m == nil {
		return nil
	}

	return &entities.Membership{
		UserID:      m.UserID,
		WorkspaceID: m.WorkspaceID,
		Role:        entities.WorkspaceRole(m.Role),
		CreatedAt:   m.CreatedAt,
	}
}
