package entities

import "time"

type WorkspaceRole string

const (
	RoleOwner  WorkspaceRole = "owner"
	RoleAdmin  WorkspaceRole = "admin"
	RoleMember WorkspaceRole = "member"
	RoleViewer WorkspaceRole = "viewer"
)

func (r WorkspaceRole) String() string {
	return string(r)
}

// Membership ties a user to a workspace with a single role.
type Membership struct {
	UserID      string
	WorkspaceID string
	Role        WorkspaceRole
	CreatedAt   time.Time
}
