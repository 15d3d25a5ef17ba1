package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vpetrenko/go-identity-server/internal/logger"
	"github.com/vpetrenko/go-identity-server/internal/store"
	"github.com/vpetrenko/go-identity-server/models"
)

// auditService is the concrete implementation of [AuditService].
type auditService struct {
	auditRepository store.AuditRepository
	logger          *logger.Logger
}

// NewAuditService constructs an [AuditService] backed by the given
// repository.
func NewAuditService(auditRepository store.AuditRepository, logger *logger.Logger) AuditService {
	return &auditService{
		auditRepository: auditRepository,
		logger:          logger,
	}
}

// Record persists an audit event. Failures are logged and swallowed: an
// audit write must never fail the mutation it documents.
func (s *auditService) Record(ctx context.Context, actorID, action, targetID, details string) {
	log := logger.FromContext(ctx)

	event := models.AuditEvent{
		ID:        uuid.NewString(),
		ActorID:   actorID,
		Action:    action,
		TargetID:  targetID,
		Details:   details,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.auditRepository.Insert(ctx, event); err != nil {
		log.Err(err).
			Str("actor_id", actorID).
			Str("action", action).
			Str("target_id", targetID).
			Msg("recording audit event failed")
	}
}

// List returns audit events matching the filter, newest first. Restricted to
// Admin and SuperAdmin actors.
func (s *auditService) List(ctx context.Context, actor models.Principal, filter models.AuditFilter) ([]models.AuditEvent, error) {
	if err := requireRank(actor, models.RoleAdmin); err != nil {
		return nil, err
	}

	events, err := s.auditRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("audit listing failed: %w", err)
	}

	return events, nil
}
