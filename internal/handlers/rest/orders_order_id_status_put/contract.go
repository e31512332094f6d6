//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=orders_order_id_status_put_test
package orders_order_id_status_put

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
	UpdateStatus(ctx context.Context, orderID string, status entities.OrderStatusType, actorID string) error
}
