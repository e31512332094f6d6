//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=board_drag_post_test
package board_drag_post

import (
	"context"

	"restoralia/internal/entities"
	"restoralia/internal/kanban"
	"restoralia/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Board interface {
	HandleDragEnd(ctx context.Context, orderID string, target entities.OrderStatusType) <-chan kanban.DragResult
}
