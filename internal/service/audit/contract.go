//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=audit_test
package audit

import (
	"context"

	"restoralia/internal/entities"
)

type Repository interface {
	Insert(ctx context.Context, event entities.AuditEvent) error
}
