package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/vpetrenko/go-identity-server/internal/logger"
	"github.com/vpetrenko/go-identity-server/internal/store"
	"github.com/vpetrenko/go-identity-server/models"
)

// userService is the concrete implementation of [UserService]. Every
// sensitive mutation follows the same template: validate arguments → check
// permission for the target id → resolve the target → apply the
// operation-specific precondition → mutate → audit. The template lives in
// [userService.guardedMutation] so the per-operation methods stay small.
type userService struct {
	permissions    PermissionService
	userRepository store.UserRepository
	cleanup        PasswordCleanupService
	audit          AuditService
	logger         *logger.Logger
}

// NewUserService constructs a [UserService] wired to its collaborators.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewUserService(
	permissions PermissionService,
	userRepository store.UserRepository,
	cleanup PasswordCleanupService,
	audit AuditService,
	logger *logger.Logger,
) UserService {
	return &userService{
		permissions:    permissions,
		userRepository: userRepository,
		cleanup:        cleanup,
		audit:          audit,
		logger:         logger,
	}
}

// guardedMutation runs the shared permission-gated template around mutate.
//
// Sequence: permission check for targetID (ErrForbidden on denial) →
// target lookup (ErrUserNotFound when absent) → mutate with the resolved
// target. Argument validation is the caller's responsibility since required
// fields differ per operation.
func (s *userService) guardedMutation(ctx context.Context, actor models.Principal, targetID string, mutate func(target models.User) error) error {
	if targetID == "" {
		return ErrInvalidDataProvided
	}

	if err := s.permissions.Validate(ctx, actor, targetID); err != nil {
		return err
	}

	target, err := s.userRepository.FindUserByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("user lookup failed: %w", err)
	}

	return mutate(target)
}

// CreateUser provisions a new account without credentials: the password
// hash stays empty until the set-password flow attaches one, and the
// account starts inactive. Restricted to Admin and SuperAdmin actors.
func (s *userService) CreateUser(ctx context.Context, actor models.Principal, req models.CreateUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.UserName == "" || req.Email == "" {
		log.Error().Any("request", req).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	if err := requireRank(actor, models.RoleAdmin); err != nil {
		return models.User{}, err
	}

	user := models.User{
		UserID:        uuid.NewString(),
		UserName:      req.UserName,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		PhoneNumber:   req.PhoneNumber,
		AccountStatus: models.AccountStatusInactive,
	}

	created, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("user_name", req.UserName).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	s.audit.Record(ctx, actor.UserID, models.AuditActionUserCreated, created.UserID, created.UserName)

	return created, nil
}

// GetUser resolves a single user together with its roles. Gated by the
// permission hierarchy like every targeted operation.
func (s *userService) GetUser(ctx context.Context, actor models.Principal, userID string) (models.User, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	if err := s.permissions.Validate(ctx, actor, userID); err != nil {
		return models.User{}, err
	}

	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("user_id", userID).Msg("user lookup failed")
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	roles, err := s.userRepository.GetRoles(ctx, userID)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("role lookup failed")
		return models.User{}, fmt.Errorf("role lookup failed: %w", err)
	}
	user.Roles = roles

	return user, nil
}

// ListUsers returns users matching the filter. Restricted to Admin and
// SuperAdmin actors.
func (s *userService) ListUsers(ctx context.Context, actor models.Principal, filter models.UserFilter) ([]models.User, error) {
	if err := requireRank(actor, models.RoleAdmin); err != nil {
		return nil, err
	}

	users, err := s.userRepository.ListUsers(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("user listing failed: %w", err)
	}

	return users, nil
}

// UpdateUser applies profile-field changes to the target account.
func (s *userService) UpdateUser(ctx context.Context, actor models.Principal, userID string, req models.UpdateUserRequest) error {
	if req.Email == "" {
		return ErrInvalidDataProvided
	}

	return s.guardedMutation(ctx, actor, userID, func(target models.User) error {
		target.FirstName = req.FirstName
		target.LastName = req.LastName
		target.Email = req.Email
		target.PhoneNumber = req.PhoneNumber

		if err := s.userRepository.UpdateUser(ctx, target); err != nil {
			if errors.Is(err, store.ErrNoUserWasFound) {
				return ErrUserNotFound
			}
			return fmt.Errorf("user update failed: %w", err)
		}

		s.audit.Record(ctx, actor.UserID, models.AuditActionUserUpdated, userID, "")
		return nil
	})
}

// DeleteUser removes the target account and erases its password history.
func (s *userService) DeleteUser(ctx context.Context, actor models.Principal, userID string) error {
	return s.guardedMutation(ctx, actor, userID, func(target models.User) error {
		if err := s.userRepository.DeleteUser(ctx, userID); err != nil {
			if errors.Is(err, store.ErrNoUserWasFound) {
				return ErrUserNotFound
			}
			return fmt.Errorf("user deletion failed: %w", err)
		}

		if err := s.cleanup.DeletePasswordHistory(ctx, userID); err != nil {
			return fmt.Errorf("erasing password history failed: %w", err)
		}

		s.audit.Record(ctx, actor.UserID, models.AuditActionUserDeleted, userID, target.UserName)
		return nil
	})
}

// ActivateUser flips the target account to active.
// Fails with ErrStatusUnchanged when the account is already active.
func (s *userService) ActivateUser(ctx context.Context, actor models.Principal, userID string) error {
	return s.setAccountStatus(ctx, actor, userID, models.AccountStatusActive, models.AuditActionUserActivated)
}

// DeactivateUser flips the target account to inactive.
// Fails with ErrStatusUnchanged when the account is already inactive.
func (s *userService) DeactivateUser(ctx context.Context, actor models.Principal, userID string) error {
	return s.setAccountStatus(ctx, actor, userID, models.AccountStatusInactive, models.AuditActionUserDeactivate)
}

func (s *userService) setAccountStatus(ctx context.Context, actor models.Principal, userID string, status int, auditAction string) error {
	return s.guardedMutation(ctx, actor, userID, func(target models.User) error {
		if target.AccountStatus == status {
			return ErrStatusUnchanged
		}

		if err := s.userRepository.UpdateAccountStatus(ctx, userID, status); err != nil {
			if errors.Is(err, store.ErrNoUserWasFound) {
				return ErrUserNotFound
			}
			return fmt.Errorf("account status update failed: %w", err)
		}

		s.audit.Record(ctx, actor.UserID, auditAction, userID, "")
		return nil
	})
}

// AssignRole adds a role membership to the target account. The account must
// be active; a role the target already holds fails the precondition.
func (s *userService) AssignRole(ctx context.Context, actor models.Principal, userID string, role models.Role) error {
	if !role.Valid() {
		return ErrInvalidRole
	}

	return s.guardedMutation(ctx, actor, userID, func(target models.User) error {
		if !target.IsActive() {
			return ErrAccountInactive
		}

		if err := s.userRepository.AssignRole(ctx, userID, role); err != nil {
			return fmt.Errorf("role assignment failed: %w", err)
		}

		s.audit.Record(ctx, actor.UserID, models.AuditActionRoleAssigned, userID, string(role))
		return nil
	})
}

// RemoveRole deletes a role membership of the target account. A role the
// target never held fails the precondition at the store level.
func (s *userService) RemoveRole(ctx context.Context, actor models.Principal, userID string, role models.Role) error {
	if !role.Valid() {
		return ErrInvalidRole
	}

	return s.guardedMutation(ctx, actor, userID, func(target models.User) error {
		if err := s.userRepository.RemoveRole(ctx, userID, role); err != nil {
			return fmt.Errorf("role removal failed: %w", err)
		}

		s.audit.Record(ctx, actor.UserID, models.AuditActionRoleRemoved, userID, string(role))
		return nil
	})
}
