package board_drag_post

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"restoralia/internal/entities"
	"restoralia/internal/kanban"
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

type request struct {
	Status string `json:"status"`
}

type response struct {
	NoOp  bool   `json:"no_op"`
	Error string `json:"error,omitempty"`
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["order_id"]

	var req request
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	target := entities.OrderStatusType(req.Status)
	if !target.Valid() {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	// The drag applies optimistically right away; waiting here just turns the
	// eventual outcome into the HTTP result. The round trip keeps running on
	// the board's own context if the caller goes away.
	result := <-h.board.HandleDragEnd(context.WithoutCancel(r.Context()), orderID, target)

	res := response{NoOp: result.NoOp}
	if result.Err != nil {
		res.Error = kanban.NotifyText(result.Err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(res)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
