package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vpetrenko/go-identity-server/internal/logger"
	"github.com/vpetrenko/go-identity-server/internal/store"
	"github.com/vpetrenko/go-identity-server/internal/utils"
	"github.com/vpetrenko/go-identity-server/models"
)

// passwordHistoryService is the concrete implementation of
// [PasswordHistoryService]. It records applied password hashes and answers
// reuse queries by verifying a plaintext candidate against every retained
// hash.
type passwordHistoryService struct {
	historyRepository store.PasswordHistoryRepository
	hasher            utils.PasswordHasher
	cleanup           PasswordCleanupService
	logger            *logger.Logger
}

// NewPasswordHistoryService constructs a [PasswordHistoryService] wired to
// its collaborators.
func NewPasswordHistoryService(
	historyRepository store.PasswordHistoryRepository,
	hasher utils.PasswordHasher,
	cleanup PasswordCleanupService,
	logger *logger.Logger,
) PasswordHistoryService {
	return &passwordHistoryService{
		historyRepository: historyRepository,
		hasher:            hasher,
		cleanup:           cleanup,
		logger:            logger,
	}
}

// AddPasswordHistory inserts a new history entry with the current UTC
// timestamp and then triggers retention pruning for the user. The pruning
// pass runs after the insert has been persisted, so the just-inserted row is
// part of the set being trimmed.
//
// Returns ErrInvalidDataProvided when either field is empty.
func (s *passwordHistoryService) AddPasswordHistory(ctx context.Context, req models.AddPasswordHistoryRequest) error {
	log := logger.FromContext(ctx)

	if req.UserID == "" || req.PasswordHash == "" {
		log.Error().Str("user_id", req.UserID).Msg("invalid password history data provided")
		return ErrInvalidDataProvided
	}

	entry := models.PasswordHistory{
		ID:           uuid.NewString(),
		UserID:       req.UserID,
		PasswordHash: req.PasswordHash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.historyRepository.Insert(ctx, entry); err != nil {
		log.Err(err).Str("user_id", req.UserID).Msg("inserting password history entry failed")
		return fmt.Errorf("inserting password history entry failed: %w", err)
	}

	if err := s.cleanup.RemoveOldPasswords(ctx, req.UserID); err != nil {
		log.Err(err).Str("user_id", req.UserID).Msg("pruning password history failed")
		return fmt.Errorf("pruning password history failed: %w", err)
	}

	return nil
}

// FindPasswordHash reports whether the plaintext password verifies against
// any hash retained for the user. An empty history yields false. The method
// is read-only.
//
// Returns ErrInvalidDataProvided when either field is empty.
func (s *passwordHistoryService) FindPasswordHash(ctx context.Context, req models.FindPasswordHashRequest) (bool, error) {
	log := logger.FromContext(ctx)

	if req.UserID == "" || req.Password == "" {
		log.Error().Str("user_id", req.UserID).Msg("invalid password history query provided")
		return false, ErrInvalidDataProvided
	}

	entries, err := s.historyRepository.ListByUser(ctx, req.UserID)
	if err != nil {
		log.Err(err).Str("user_id", req.UserID).Msg("loading password history failed")
		return false, fmt.Errorf("loading password history failed: %w", err)
	}

	for _, entry := range entries {
		if s.hasher.Verify(entry.PasswordHash, req.Password) {
			return true, nil
		}
	}

	return false, nil
}
