package orders_order_id_status_put

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

const actorHeader = "X-Actor-Id"

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
	orderID := mux.Vars(r)["order_id"]
	actorID := r.Header.Get(actorHeader)

	var statusUpdateDTO dto.OrderStatusUpdate
	err := json.NewDecoder(r.Body).Decode(&statusUpdateDTO)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "malformed request body", nil)
		return
	}

	status := entities.OrderStatusType(statusUpdateDTO.Status)

	err = h.service.UpdateStatus(r.Context(), orderID, status, actorID)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidInput):
			h.writeError(w, http.StatusBadRequest, err.Error(), nil)
		case errors.Is(err, order.ErrOrderNotFound):
			h.writeError(w, http.StatusNotFound, err.Error(), nil)
		case errors.Is(err, order.ErrPermissionDenied):
			h.writeError(w, http.StatusForbidden, err.Error(), nil)
		case errors.Is(err, order.ErrTerminalStatus):
			h.writeError(w, http.StatusConflict, err.Error(), nil)
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

	w.WriteHeader(http.StatusNoContent)
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
