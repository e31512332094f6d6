package order_expiry

import (
	"context"
	"time"

	"restoralia/pkg/logger"
)

type Service interface {
	ExpirePending(ctx context.Context, maxAge time.Duration) (int64, error)
}

// OrderExpiry cancels pending orders nobody confirmed within maxAge.
type OrderExpiry struct {
	log      logger.Logger
	service  Service
	interval time.Duration
	maxAge   time.Duration
}

func NewOrderExpiry(log logger.Logger, service Service, interval, maxAge time.Duration) *OrderExpiry {
	return &OrderExpiry{
		log:      log,
		service:  service,
		interval: interval,
		maxAge:   maxAge,
	}
}

func (o *OrderExpiry) TTL() time.Duration {
	return o.interval
}

func (o *OrderExpiry) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, o.interval)
	defer cancel()

	expired, err := o.service.ExpirePending(ctxWithTimeout, o.maxAge)

	if expired > 0 {
		o.log.With(
			logger.NewField("expired_orders", expired),
		).Info("order expiry")
	}

	return err
}

func (o *OrderExpiry) Info() string {
	return "order expiry"
}
