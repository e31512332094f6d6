package workspaces_workspace_id_orders_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"restoralia/internal/entities"
	"restoralia/internal/generated/dto"
	"restoralia/internal/service/order"
	"restoralia/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	workspaceID := mux.Vars(r)["workspace_id"]

	orders, err := h.service.ActiveOrders(r.Context(), workspaceID)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidInput):
			h.writeError(w, http.StatusBadRequest, err.Error(), nil)
		default:
			var unexpected *order.UnexpectedError
			if errors.As(err, &unexpected) {
				h.writeError(w, http.StatusInternalServerError, "internal error", &unexpected.CorrelationID)
				return
			}
			h.writeError(w, http.StatusInternalServerError, "internal error", nil)
		}
		return
	}

	response := dto.OrderList{
		Orders: make([]dto.Order, 0, len(orders)),
	}
	for _, orderEntity := range orders {
		response.Orders = append(response.Orders, toOrderDTO(orderEntity))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
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

func (h *Handler) writeError(w http.ResponseWriter, code int, message string, correlationID *string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	err := json.NewEncoder(w).Encode(dto.Error{
		Message:       message,
		CorrelationId: correlationID,
	})
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON error response")
	}
}
