package orders_post

import (
	"encoding/json"
	"errors"
	"net/http"

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
	var orderCreateDTO dto.OrderCreate
	err := json.NewDecoder(r.Body).Decode(&orderCreateDTO)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "malformed request body", nil)
		return
	}

	input := order.CreateOrderInput{
		WorkspaceID: orderCreateDTO.WorkspaceId,
		SiteID:      orderCreateDTO.SiteId,
		CustomerID:  orderCreateDTO.CustomerId,
	}
	for _, item := range orderCreateDTO.Items {
		input.Items = append(input.Items, order.CartItem{
			ProductID: item.ProductId,
			Quantity:  item.Quantity,
		})
	}

	created, err := h.service.Create(r.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidInput),
			errors.Is(err, order.ErrEmptyOrder),
			errors.Is(err, order.ErrProductNotFound):
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

	items := make([]dto.OrderItem, 0, len(created.Items))
	for _, item := range created.Items {
		items = append(items, dto.OrderItem{
			Id:                   item.ID,
			OrderId:              item.OrderID,
			ProductId:            item.ProductID,
			Quantity:             item.Quantity,
			PriceAtPurchaseCents: item.PriceAtPurchaseCents,
			CreatedAt:            item.CreatedAt,
		})
	}

	response := dto.Order{
		Id:            created.ID,
		WorkspaceId:   created.WorkspaceID,
		SiteId:        created.SiteID,
		CustomerId:    created.CustomerID,
		Status:        dto.OrderStatus(created.Status.String()),
		SubtotalCents: created.SubtotalCents,
		TaxCents:      created.TaxCents,
		TotalCents:    created.TotalCents,
		Items:         &items,
		CreatedAt:     created.CreatedAt,
		UpdatedAt:     created.UpdatedAt,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
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
