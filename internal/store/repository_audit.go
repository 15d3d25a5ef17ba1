package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/vpetrenko/go-identity-server/internal/logger"
	"github.com/vpetrenko/go-identity-server/models"
)

// auditRepository is the PostgreSQL-backed implementation of
// [AuditRepository] over the "audit_events" table. Events are append-only;
// no update or delete path exists.
type auditRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAuditRepository constructs an [AuditRepository] backed by the provided
// database connection and logger.
func NewAuditRepository(db *DB, logger *logger.Logger) AuditRepository {
	logger.Debug().Msg("creating audit repository")
	return &auditRepository{
		db:     db,
		logger: logger,
	}
}

// Insert persists a single audit event.
func (r *auditRepository) Insert(ctx context.Context, event models.AuditEvent) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, insertAuditEvent,
		event.ID, event.ActorID, event.Action, event.TargetID, event.Details, event.CreatedAt)
	if err != nil {
		log.Err(err).
			Str("func", "*auditRepository.Insert").
			Str("action", event.Action).
			Msg("failed to insert audit event")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// List retrieves audit events matching the filter, newest first. The query
// is assembled dynamically with squirrel since every filter field is
// optional.
func (r *auditRepository) List(ctx context.Context, filter models.AuditFilter) ([]models.AuditEvent, error) {
	log := logger.FromContext(ctx)

	builder := sq.Select("id", "actor_id", "action", "target_id", "details", "created_at").
		From("audit_events").
		OrderBy("created_at DESC", "id DESC").
		PlaceholderFormat(sq.Dollar)

	if filter.ActorID != "" {
		builder = builder.Where(sq.Eq{"actor_id": filter.ActorID})
	}
	if filter.Action != "" {
		builder = builder.Where(sq.Eq{"action": filter.Action})
	}
	if filter.TargetID != "" {
		builder = builder.Where(sq.Eq{"target_id": filter.TargetID})
	}
	if !filter.From.IsZero() {
		builder = builder.Where(sq.GtOrEq{"created_at": filter.From})
	}
	if !filter.To.IsZero() {
		builder = builder.Where(sq.LtOrEq{"created_at": filter.To})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*auditRepository.List").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*auditRepository.List").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	events := make([]models.AuditEvent, 0, 50)
	for rows.Next() {
		var event models.AuditEvent
		scanErr := rows.Scan(&event.ID, &event.ActorID, &event.Action, &event.TargetID, &event.Details, &event.CreatedAt)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*auditRepository.List").Msg("failed to scan audit event row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		events = append(events, event)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*auditRepository.List").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return events, nil
}
