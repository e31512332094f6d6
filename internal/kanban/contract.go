//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=kanban_test
package kanban

import (
	"context"

	"restoralia/internal/entities"
)

type StatusUpdater interface {
	UpdateStatus(ctx context.Context, orderID string, status entities.OrderStatusType, actorID string) error
}

// Notifier surfaces the outcome of a drag to whoever is watching the board.
type Notifier interface {
	Success(message string)
	Error(message string)
}
