package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/vpetrenko/go-identity-server/internal/logger"
	"github.com/vpetrenko/go-identity-server/internal/store"
	"github.com/vpetrenko/go-identity-server/internal/utils"
	"github.com/vpetrenko/go-identity-server/models"
)

// passwordService is the concrete implementation of [PasswordService].
// It orchestrates the two password-mutation entry points, composing the
// permission service, user repository, password hasher, and password
// history service.
type passwordService struct {
	permissions    PermissionService
	userRepository store.UserRepository
	hasher         utils.PasswordHasher
	history        PasswordHistoryService
	audit          AuditService
	logger         *logger.Logger
}

// NewPasswordService constructs a [PasswordService] wired to its
// collaborators.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewPasswordService(
	permissions PermissionService,
	userRepository store.UserRepository,
	hasher utils.PasswordHasher,
	history PasswordHistoryService,
	audit AuditService,
	logger *logger.Logger,
) PasswordService {
	return &passwordService{
		permissions:    permissions,
		userRepository: userRepository,
		hasher:         hasher,
		history:        history,
		audit:          audit,
		logger:         logger,
	}
}

// SetPassword establishes the first password of a user.
//
// The permission check is intentionally skipped: this path backs the
// account-activation flow, where the target holds no credentials yet and
// therefore cannot authenticate as itself.
//
// Failure modes, in evaluation order:
//   - ErrInvalidDataProvided — empty id or empty password fields.
//   - ErrPasswordMismatch — password and confirmation differ.
//   - ErrUserNotFound — the id does not resolve.
//   - ErrPasswordAlreadySet — the account already carries a password; the
//     endpoint is one-time-use per user.
//
// On success exactly one password-history entry is appended for the new
// hash. No history is written on any failure path.
func (s *passwordService) SetPassword(ctx context.Context, userID string, req models.SetPasswordRequest) error {
	log := logger.FromContext(ctx)

	if userID == "" || req.Password == "" || req.PasswordConfirmed == "" {
		log.Error().Str("user_id", userID).Msg("invalid set-password data provided")
		return ErrInvalidDataProvided
	}

	if req.Password != req.PasswordConfirmed {
		return ErrPasswordMismatch
	}

	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return ErrUserNotFound
		}
		log.Err(err).Str("user_id", userID).Msg("user lookup failed")
		return fmt.Errorf("user lookup failed: %w", err)
	}

	if user.HasPassword() {
		return ErrPasswordAlreadySet
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("password hashing failed")
		return fmt.Errorf("password hashing failed: %w", err)
	}

	if err := s.userRepository.UpdatePasswordHash(ctx, userID, hash); err != nil {
		log.Err(err).Str("user_id", userID).Msg("storing password hash failed")
		return fmt.Errorf("storing password hash failed: %w", err)
	}

	if err := s.history.AddPasswordHistory(ctx, models.AddPasswordHistoryRequest{
		UserID:       userID,
		PasswordHash: hash,
	}); err != nil {
		log.Err(err).Str("user_id", userID).Msg("recording password history failed")
		return fmt.Errorf("recording password history failed: %w", err)
	}

	s.audit.Record(ctx, userID, models.AuditActionPasswordSet, userID, "")

	return nil
}

// UpdatePassword rotates an existing password on behalf of actor.
//
// Failure modes, in evaluation order:
//   - ErrInvalidDataProvided — empty id or empty password fields.
//   - ErrForbidden — the actor may not operate on the target.
//   - ErrInvalidCredentials — the target does not resolve, carries no
//     password yet, or the supplied current password does not verify. One
//     error for all three so account existence is never leaked.
//   - ErrCannotReusePassword — the new password verifies against a hash in
//     the user's retained history.
//
// On success exactly one password-history entry is appended for the new
// hash. No history is written on any failure path.
func (s *passwordService) UpdatePassword(ctx context.Context, actor models.Principal, userID string, req models.UpdatePasswordRequest) error {
	log := logger.FromContext(ctx)

	if userID == "" || req.CurrentPassword == "" || req.NewPassword == "" {
		log.Error().Str("user_id", userID).Msg("invalid update-password data provided")
		return ErrInvalidDataProvided
	}

	if err := s.permissions.Validate(ctx, actor, userID); err != nil {
		return err
	}

	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return ErrInvalidCredentials
		}
		log.Err(err).Str("user_id", userID).Msg("user lookup failed")
		return fmt.Errorf("user lookup failed: %w", err)
	}

	if !user.HasPassword() {
		return ErrInvalidCredentials
	}

	if !s.hasher.Verify(user.PasswordHash, req.CurrentPassword) {
		return ErrInvalidCredentials
	}

	reused, err := s.history.FindPasswordHash(ctx, models.FindPasswordHashRequest{
		UserID:   userID,
		Password: req.NewPassword,
	})
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("password history check failed")
		return fmt.Errorf("password history check failed: %w", err)
	}
	if reused {
		return ErrCannotReusePassword
	}

	newHash, err := s.hasher.Hash(req.NewPassword)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("password hashing failed")
		return fmt.Errorf("password hashing failed: %w", err)
	}

	if err := s.userRepository.UpdatePasswordHash(ctx, userID, newHash); err != nil {
		log.Err(err).Str("user_id", userID).Msg("storing password hash failed")
		return fmt.Errorf("storing password hash failed: %w", err)
	}

	if err := s.history.AddPasswordHistory(ctx, models.AddPasswordHistoryRequest{
		UserID:       userID,
		PasswordHash: newHash,
	}); err != nil {
		log.Err(err).Str("user_id", userID).Msg("recording password history failed")
		return fmt.Errorf("recording password history failed: %w", err)
	}

	s.audit.Record(ctx, actor.UserID, models.AuditActionPasswordChange, userID, "")

	return nil
}
