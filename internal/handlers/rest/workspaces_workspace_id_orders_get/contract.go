//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=workspaces_workspace_id_orders_get_test
package workspaces_workspace_id_orders_get

import (
	"context"

	"restoralia/internal/entities"
	"restoralia/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ActiveOrders(ctx context.Context, workspaceID string) ([]entities.Order, error)
}
