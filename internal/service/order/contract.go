//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"
	"time"

	"restoralia/internal/entities"
)

type Repository interface {
	// GetByID returns the bare order row without joined relations.
	GetByID(ctx context.Context, orderID string) (*entities.Order, error)
	UpdateStatus(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error)
	Create(ctx context.Context, order entities.Order, items []entities.OrderItem) (*entities.Order, error)

	// ListActiveByWorkspace returns active orders with items and customer name
	// joined in, newest first.
	ListActiveByWorkspace(ctx context.Context, workspaceID string) ([]entities.Order, error)
	ListPendingBefore(ctx context.Context, cutoff time.Time) ([]entities.Order, error)
}

type ProductRepository interface {
	GetByIDs(ctx context.Context, productIDs []string) ([]entities.Product, error)
}

type AccessGuard interface {
	RequireWorkspaceRole(ctx context.Context, workspaceID, actorID string, roles ...entities.WorkspaceRole) (*entities.Membership, error)
}

// AuditSink records append-only audit events. Implementations swallow their
// own failures; recording never blocks or fails the primary operation.
type AuditSink interface {
	Record(ctx context.Context, event entities.AuditEvent)
}

type ChangePublisher interface {
	PublishChange(ctx context.Context, change entities.OrderChange) error
}

// ViewCache caches the rendered active-order list per workspace.
type ViewCache interface {
	GetOrders(ctx context.Context, workspaceID string) ([]entities.Order, bool, error)
	SetOrders(ctx context.Context, workspaceID string, orders []entities.Order) error
	InvalidateOrders(ctx context.Context, workspaceID string) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
