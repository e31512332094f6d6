package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"restoralia/internal/entities"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Insert(ctx context.Context, event entities.AuditEvent) error {
	metadata, err := json.Marshal(event.Metadata)
	if err != nil {
		return fmt.Errorf("unexpected audit repository marshal error: %w", err)
	}

	query := `INSERT INTO audit_logs (action, actor_id, target_entity_id, target_entity_type, metadata)
		VALUES ($1, $2, $3, $4, $5)`

	_, err = r.querier.Exec(ctx, query,
		event.Action,
		event.ActorID,
		event.TargetEntityID,
		event.TargetEntityType,
		metadata,
	)
	if err != nil {
		return fmt.Errorf("unexpected audit repository insert error: %w", err)
	}

	return nil
}
