package feed

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"restoralia/internal/entities"
)

// Publisher fans an order change out to the workspace's redis channel.
// Pub/sub delivery is at-most-once; durability lives in the kafka topic
// upstream of this publisher.
type Publisher struct {
	client *redis.Client
}

func NewPublisher(client *redis.Client) *Publisher {
	return &Publisher{
		client: client,
	}
}

func (p *Publisher) Publish(ctx context.Context, change entities.OrderChange) error {
	payload, err := EncodeChange(change)
	if err != nil {
		return fmt.Errorf("feed publish: %w", err)
	}

	channel := ChannelForWorkspace(change.Order.WorkspaceID)
	if err := p.client.Publish(ctx, channel, payload).Err(); err != nil {
		return fmt.Errorf("feed publish to %s: %w", channel, err)
	}
	return nil
}
