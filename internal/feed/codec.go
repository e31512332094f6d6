package feed

import (
	"encoding/json"
	"fmt"
	"time"

	"restoralia/internal/entities"
)

// Envelope is the wire form of an order change. The same payload travels the
// durable kafka topic and the per-workspace redis channels, so both sides of
// the fan-out share this codec.
type Envelope struct {
	Kind  string        `json:"kind"`
	Order OrderEnvelope `json:"order"`
}

// OrderEnvelope carries the bare order row. Joined relations never cross the
// wire; consumers re-join or default them locally.
type OrderEnvelope struct {
	ID            string    `json:"id"`
	WorkspaceID   string    `json:"workspace_id"`
	SiteID        *string   `json:"site_id"`
	CustomerID    *string   `json:"customer_id"`
	Status        string    `json:"status"`
	SubtotalCents int64     `json:"subtotal_cents"`
	TaxCents      int64     `json:"tax_cents"`
	TotalCents    int64     `json:"total_cents"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ChannelForWorkspace names the redis channel carrying one workspace's
// order changes.
func ChannelForWorkspace(workspaceID string) string {
	return fmt.Sprintf("orders:workspace=%s", workspaceID)
}

func EncodeChange(change entities.OrderChange) ([]byte, error) {
	envelope := Envelope{
		Kind: string(change.Kind),
		Order: OrderEnvelope{
			ID:            change.Order.ID,
			WorkspaceID:   change.Order.WorkspaceID,
			SiteID:        change.Order.SiteID,
			CustomerID:    change.Order.CustomerID,
			Status:        change.Order.Status.String(),
			SubtotalCents: change.Order.SubtotalCents,
			TaxCents:      change.Order.TaxCents,
			TotalCents:    change.Order.TotalCents,
			CreatedAt:     change.Order.CreatedAt,
			UpdatedAt:     change.Order.UpdatedAt,
		},
	}

	payload, err := json.Marshal(envelope)
	if err != nil {
		return nil, fmt.Errorf("encode order change: %w", err)
	}
	return payload, nil
}

func DecodeChange(payload []byte) (entities.OrderChange, error) {
	var envelope Envelope
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return entities.OrderChange{}, fmt.Errorf("decode order change: %w", err)
	}

	kind := entities.ChangeKind(envelope.Kind)
	if kind != entities.ChangeInsert && kind != entities.ChangeUpdate {
		return entities.OrderChange{}, fmt.Errorf("decode order change: unknown kind %q", envelope.Kind)
	}

	return entities.OrderChange{
		Kind: kind,
		Order: entities.Order{
			ID:            envelope.Order.ID,
			WorkspaceID:   envelope.Order.WorkspaceID,
			SiteID:        envelope.Order.SiteID,
			CustomerID:    envelope.Order.CustomerID,
			Status:        entities.OrderStatusType(envelope.Order.Status),
			SubtotalCents: envelope.Order.SubtotalCents,
			TaxCents:      envelope.Order.TaxCents,
			TotalCents:    envelope.Order.TotalCents,
			CreatedAt:     envelope.Order.CreatedAt,
			UpdatedAt:     envelope.Order.UpdatedAt,
		},
	}, nil
}
