package store

import (
	"context"
	"fmt"

	"github.com/vpetrenko/go-identity-server/internal/logger"
	"github.com/vpetrenko/go-identity-server/models"
)

// passwordHistoryRepository is the PostgreSQL-backed implementation of
// [PasswordHistoryRepository] over the "password_history" table.
type passwordHistoryRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPasswordHistoryRepository constructs a [PasswordHistoryRepository]
// backed by the provided database connection and logger.
func NewPasswordHistoryRepository(db *DB, logger *logger.Logger) PasswordHistoryRepository {
	logger.Debug().Msg("creating password history repository")
	return &passwordHistoryRepository{
		db:     db,
		logger: logger,
	}
}

// Insert persists a single history entry.
func (r *passwordHistoryRepository) Insert(ctx context.Context, entry models.PasswordHistory) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, insertPasswordHistory,
		entry.ID, entry.UserID, entry.PasswordHash, entry.CreatedAt)
	if err != nil {
		log.Err(err).
			Str("func", "*passwordHistoryRepository.Insert").
			Str("user_id", entry.UserID).
			Msg("failed to insert password history entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// ListByUser retrieves all history entries of a user, newest first.
// Ordering is total: created_at descending with ties broken by id
// descending, so pruning decisions are stable across calls.
func (r *passwordHistoryRepository) ListByUser(ctx context.Context, userID string) ([]models.PasswordHistory, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listPasswordHistoryByUser, userID)
	if err != nil {
		log.Err(err).
			Str("func", "*passwordHistoryRepository.ListByUser").
			Str("user_id", userID).
			Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.PasswordHistory, 0, models.PasswordHistoryLimit+1)
	for rows.Next() {
		var entry models.PasswordHistory
		if scanErr := rows.Scan(&entry.ID, &entry.UserID, &entry.PasswordHash, &entry.CreatedAt); scanErr != nil {
			log.Err(scanErr).
				Str("func", "*passwordHistoryRepository.ListByUser").
				Str("user_id", userID).
				Msg("failed to scan password history row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		entries = append(entries, entry)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*passwordHistoryRepository.ListByUser").
			Str("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return entries, nil
}

// DeleteByIDs removes the given entries of a user in a single statement.
func (r *passwordHistoryRepository) DeleteByIDs(ctx context.Context, userID string, ids []string) (int64, error) {
	log := logger.FromContext(ctx)

	if len(ids) == 0 {
		return 0, nil
	}

	result, err := r.db.ExecContext(ctx, deletePasswordHistoryByIDs, userID, ids)
	if err != nil {
		log.Err(err).
			Str("func", "*passwordHistoryRepository.DeleteByIDs").
			Str("user_id", userID).
			Int("ids_count", len(ids)).
			Msg("failed to delete password history entries")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}

// DeleteAllForUser removes every history entry of a user. Zero affected
// rows is a normal outcome, not an error.
func (r *passwordHistoryRepository) DeleteAllForUser(ctx context.Context, userID string) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteAllPasswordHistory, userID)
	if err != nil {
		log.Err(err).
			Str("func", "*passwordHistoryRepository.DeleteAllForUser").
			Str("user_id", userID).
			Msg("failed to delete password history")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}
