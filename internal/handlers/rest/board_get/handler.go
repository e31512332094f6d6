package board_get

import (
	"encoding/json"
	"net/http"

	"restoralia/internal/entities"
	"restoralia/internal/generated/dto"
	"restoralia/pkg/logger"
)

type Handler struct {
	log   handlerLogger
	board Board
}

func New(log handlerLogger, board Board) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:   handlerLog,
		board: board,
	}
}

type response struct {
	Columns         map[string][]dto.Order `json:"columns"`
	MutatingOrderID string                 `json:"mutating_order_id,omitempty"`
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	columns := h.board.OrdersByStatus()

	res := response{
		Columns:         make(map[string][]dto.Order, len(columns)),
		MutatingOrderID: h.board.MutatingOrderID(),
	}
	for status, orders := range columns {
		column := make([]dto.Order, 0, len(orders))
		for _, orderEntity := range orders {
			column = append(column, toOrderDTO(orderEntity))
		}
		res.Columns[status.String()] = column
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err := json.NewEncoder(w).Encode(res)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toOrderDTO(orderEntity entities.Order) dto.Order {
	items := make([]dto.OrderItem, 0, len(orderEntity.Items))
	for _, item := range orderEntity.Items {
		items = append(items, dto.OrderItem{
			Id:                   item.ID,
			OrderId:              item.OrderID,
			ProductId:            item.ProductID,
			Quantity:             item.Quantity,
			PriceAtPurchaseCents: item.PriceAtPurchaseCents,
			CreatedAt:            item.CreatedAt,
		})
	}

	return dto.Order{
		Id:            orderEntity.ID,
		WorkspaceId:   orderEntity.WorkspaceID,
		SiteId:        orderEntity.SiteID,
		CustomerId:    orderEntity.CustomerID,
		CustomerName:  orderEntity.CustomerName,
		Status:        dto.OrderStatus(orderEntity.Status.String()),
		SubtotalCents: orderEntity.SubtotalCents,
		TaxCents:      orderEntity.TaxCents,
		TotalCents:    orderEntity.TotalCents,
		Items:         &items,
		CreatedAt:     orderEntity.CreatedAt,
		UpdatedAt:     orderEntity.UpdatedAt,
	}
}
