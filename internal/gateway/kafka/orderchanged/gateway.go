package orderchanged

import (
	"context"
	"fmt"
	"time"

	"restoralia/internal/entities"
	"restoralia/internal/feed"
	retrierconfig "restoralia/pkg/retrier"
	"restoralia/pkg/retrier/backoff_adapter"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 1 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

// Gateway writes order changes to the durable topic. Messages are keyed by
// workspace so one workspace's changes stay ordered within a partition.
type Gateway struct {
	producer producer
	retrier  retrier
	topic    string
}

func New(producer producer, topic string) *Gateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     nil, // retry every error
	}

	return &Gateway{
		producer: producer,
		retrier:  backoff_adapter.New(retryConfig),
		topic:    topic,
	}
}

func (g *Gateway) PublishChange(ctx context.Context, change entities.OrderChange) error {
	payload, err := feed.EncodeChange(change)
	if err != nil {
		return fmt.Errorf("gateway order changed: %w", err)
	}

	key := []byte(change.Order.WorkspaceID)

	var attempt uint64
	start := time.Now()

	err = g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return g.producer.Send(ctx, key, payload)
	})

	result := "ok"
	if err != nil {
		result = "error"
	}
	PublishDuration.WithLabelValues(g.topic, result).Observe(time.Since(start).Seconds())
	if attempt > 1 {
		PublishRetriesTotal.WithLabelValues(g.topic, result).Inc()
	}

	if err != nil {
		return fmt.Errorf("gateway order changed, publish for %s: %w", change.Order.ID, err)
	}
	return nil
}
