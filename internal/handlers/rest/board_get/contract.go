//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=board_get_test
package board_get

import (
	"restoralia/internal/entities"
	"restoralia/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Board interface {
	OrdersByStatus() map[entities.OrderStatusType][]entities.Order
	MutatingOrderID() string
}
