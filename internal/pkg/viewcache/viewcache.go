package viewcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"restoralia/internal/entities"
)

// Cache keeps the active-order list per workspace in redis so repeated board
// loads skip the joined query. Entries are invalidated on every write, the TTL
// only bounds staleness if an invalidation is lost.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func New(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{
		client: client,
		ttl:    ttl,
	}
}

func (c *Cache) GetOrders(ctx context.Context, workspaceID string) ([]entities.Order, bool, error) {
	payload, err := c.client.Get(ctx, ordersKey(workspaceID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("view cache get: %w", err)
	}

	var orders []entities.Order
	if err := json.Unmarshal(payload, &orders); err != nil {
		return nil, false, fmt.Errorf("view cache decode: %w", err)
	}

	return orders, true, nil
}

func (c *Cache) SetOrders(ctx context.Context, workspaceID string, orders []entities.Order) error {
	payload, err := json.Marshal(orders)
	if err != nil {
		return fmt.Errorf("view cache encode: %w", err)
	}

	if err := c.client.Set(ctx, ordersKey(workspaceID), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("view cache set: %w", err)
	}
	return nil
}

func (c *Cache) InvalidateOrders(ctx context.Context, workspaceID string) error {
	if err := c.client.Del(ctx, ordersKey(workspaceID)).Err(); err != nil {
		return fmt.Errorf("view cache invalidate: %w", err)
	}
	return nil
}
