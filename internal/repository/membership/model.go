package membership

import "time"

type MembershipDB struct {
	UserID      string
	WorkspaceID string
	Role        string
	CreatedAt   time.Time
}
