package audit

import (
	"context"

	"restoralia/internal/entities"
	"restoralia/pkg/logger"
)

// Recorder writes append-only audit events. It is strictly fire-and-forget:
// an insert failure is logged and swallowed so it can never block or roll
// back the operation being audited.
type Recorder struct {
	repository Repository
	log        logger.Logger
}

func New(repository Repository, log logger.Logger) *Recorder {
	return &Recorder{
		repository: repository,
		log:        log.With(),
	}
}

func (r *Recorder) Record(ctx context.Context, event entities.AuditEvent) {
	if err := r.repository.Insert(ctx, event); err != nil {
		r.log.With(
			logger.NewField("action", event.Action),
			logger.NewField("target", event.TargetEntityID),
			logger.NewField("error", err),
		).Error("failed to record audit event")
		return
	}

	r.log.With(
		logger.NewField("action", event.Action),
		logger.NewField("target", event.TargetEntityID),
	).Debug("audit event recorded")
}
