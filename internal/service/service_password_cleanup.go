package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/vpetrenko/go-identity-server/internal/logger"
	"github.com/vpetrenko/go-identity-server/internal/store"
	"github.com/vpetrenko/go-identity-server/models"
)

// passwordCleanupService is the concrete implementation of
// [PasswordCleanupService]. It enforces the fixed retention window of
// [models.PasswordHistoryLimit] entries per user and erases full histories
// when an account is deleted.
type passwordCleanupService struct {
	historyRepository store.PasswordHistoryRepository
	logger            *logger.Logger
}

// NewPasswordCleanupService constructs a [PasswordCleanupService] backed by
// the given history repository.
func NewPasswordCleanupService(historyRepository store.PasswordHistoryRepository, logger *logger.Logger) PasswordCleanupService {
	return &passwordCleanupService{
		historyRepository: historyRepository,
		logger:            logger,
	}
}

// RemoveOldPasswords trims the user's history down to the retention limit.
// Entries are ordered newest first (creation time, ties broken by id); every
// entry beyond the newest [models.PasswordHistoryLimit] is deleted in a
// single statement. Histories at or below the limit are left untouched, so
// the operation is idempotent: a second call with no intervening insert
// changes nothing.
//
// Returns ErrInvalidDataProvided for an empty or whitespace-only userID,
// raised before any store access.
func (s *passwordCleanupService) RemoveOldPasswords(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(userID) == "" {
		log.Error().Msg("invalid user id provided for password history pruning")
		return ErrInvalidDataProvided
	}

	entries, err := s.historyRepository.ListByUser(ctx, userID)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("loading password history failed")
		return fmt.Errorf("loading password history failed: %w", err)
	}

	if len(entries) <= models.PasswordHistoryLimit {
		return nil
	}

	staleIDs := make([]string, 0, len(entries)-models.PasswordHistoryLimit)
	for _, entry := range entries[models.PasswordHistoryLimit:] {
		staleIDs = append(staleIDs, entry.ID)
	}

	deleted, err := s.historyRepository.DeleteByIDs(ctx, userID, staleIDs)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("deleting stale password history failed")
		return fmt.Errorf("deleting stale password history failed: %w", err)
	}

	log.Debug().
		Str("user_id", userID).
		Int64("deleted", deleted).
		Msg("pruned password history to retention limit")

	return nil
}

// DeletePasswordHistory removes every history entry of the user. It is
// invoked by the account-deletion flow. A user with no history is a normal,
// silent no-op.
//
// Returns ErrInvalidDataProvided for an empty or whitespace-only userID,
// raised before any store access.
func (s *passwordCleanupService) DeletePasswordHistory(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(userID) == "" {
		log.Error().Msg("invalid user id provided for password history deletion")
		return ErrInvalidDataProvided
	}

	deleted, err := s.historyRepository.DeleteAllForUser(ctx, userID)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("deleting password history failed")
		return fmt.Errorf("deleting password history failed: %w", err)
	}

	log.Debug().
		Str("user_id", userID).
		Int64("deleted", deleted).
		Msg("deleted password history for user")

	return nil
}
