package order_changed

import (
	"context"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"restoralia/internal/feed"
	"restoralia/pkg/logger"
)

// Handler drains the durable order change topic into per-workspace redis
// channels. Redis delivery is best effort; a failed publish is logged and
// the offset committed anyway, live boards recover on their next full fetch.
type Handler struct {
	publisher                Publisher
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, publisher Publisher, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		publisher:                publisher,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("orders.changed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			h.log.Info("orders.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing handles one message. It returns true when ConsumeClaim
// should stop (context cancelled) and false to keep consuming.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	change, err := feed.DecodeChange(message.Value)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("orders.changed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("order", change.Order.ID),
		logger.NewField("workspace", change.Order.WorkspaceID),
		logger.NewField("kind", string(change.Kind)),
		logger.NewField("offset", message.Offset),
	)

	err = h.publisher.Publish(ctx, change)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			msgLog.With(
				logger.NewField("error", err),
			).Warn("orders.changed handler context cancelled, message will be reprocessed")
			return true
		}

		msgLog.With(
			logger.NewField("error", err),
		).Warn("orders.changed handler failed to fan out change")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.Info("orders.changed: fanned out")

	sess.MarkMessage(message, "")
	return false
}
