package entities

import "time"

// AuditEvent is one append-only record of a critical action. Audit rows are
// never updated or deleted.
type AuditEvent struct {
	ID               int64
	Action           string
	ActorID          string
	TargetEntityID   string
	TargetEntityType string
	Metadata         map[string]any
	CreatedAt        time.Time
}
