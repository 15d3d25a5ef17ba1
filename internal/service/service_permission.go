package service

import (
	"context"

	"github.com/vpetrenko/go-identity-server/internal/logger"
	"github.com/vpetrenko/go-identity-server/internal/store"
	"github.com/vpetrenko/go-identity-server/models"
)

// permissionService is the concrete implementation of [PermissionService].
// It implements the strict role hierarchy User < Admin < SuperAdmin with a
// self-access override: a principal may always operate on its own user id.
//
// SuperAdmin is an explicit exception to the strictly-greater rank rule and
// may operate on any target, including other SuperAdmins. Admin-on-Admin and
// User-on-User access with differing ids is denied.
type permissionService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewPermissionService constructs a [PermissionService] that resolves target
// roles through the given UserRepository.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewPermissionService(userRepository store.UserRepository, logger *logger.Logger) PermissionService {
	return &permissionService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// Validate returns nil when actor may operate on targetUserID and
// ErrForbidden otherwise.
//
// The decision procedure, in order:
//  1. An absent acting principal (empty UserID) denies immediately. This is
//     checked before the target id so that an unauthenticated caller learns
//     nothing about argument validity.
//  2. An empty target id denies.
//  3. actor id == target id allows, regardless of roles and regardless of
//     whether the target exists.
//  4. A target that cannot be resolved denies.
//  5. An actor holding no role claims denies — a role-less principal can
//     access nothing but itself.
//  6. A SuperAdmin actor is allowed against any target.
//  7. Otherwise the actor's best role must outrank every role of the
//     target. Equal rank denies. A target holding no roles is outranked by
//     any ranked actor.
//
// The only side effects are read calls against the user repository.
func (p *permissionService) Validate(ctx context.Context, actor models.Principal, targetUserID string) error {
	log := logger.FromContext(ctx)

	if actor.UserID == "" {
		log.Debug().Msg("permission denied: no acting principal")
		return ErrForbidden
	}

	if targetUserID == "" {
		log.Debug().Str("actor_id", actor.UserID).Msg("permission denied: empty target user id")
		return ErrForbidden
	}

	// self-access is always permitted
	if actor.UserID == targetUserID {
		return nil
	}

	if _, err := p.userRepository.FindUserByID(ctx, targetUserID); err != nil {
		log.Debug().
			Str("actor_id", actor.UserID).
			Str("target_id", targetUserID).
			Msg("permission denied: target lookup failed")
		return ErrForbidden
	}

	actingRole, hasRole := actor.HighestRole()
	if !hasRole {
		log.Debug().
			Str("actor_id", actor.UserID).
			Str("target_id", targetUserID).
			Msg("permission denied: actor has no role claims")
		return ErrForbidden
	}

	// SuperAdmin may access anyone, including other SuperAdmins.
	if actingRole == models.RoleSuperAdmin {
		return nil
	}

	targetRoles, err := p.userRepository.GetRoles(ctx, targetUserID)
	if err != nil {
		log.Err(err).
			Str("actor_id", actor.UserID).
			Str("target_id", targetUserID).
			Msg("permission denied: target role lookup failed")
		return ErrForbidden
	}

	for _, targetRole := range targetRoles {
		if actingRole.Rank() <= targetRole.Rank() {
			log.Debug().
				Str("actor_id", actor.UserID).
				Str("target_id", targetUserID).
				Str("acting_role", string(actingRole)).
				Str("target_role", string(targetRole)).
				Msg("permission denied: insufficient rank")
			return ErrForbidden
		}
	}

	return nil
}

// requireRank returns nil when actor holds a role of at least the given
// rank. It backs list-style operations that have no single target user
// (user listing, audit queries, account creation).
func requireRank(actor models.Principal, minimum models.Role) error {
	actingRole, hasRole := actor.HighestRole()
	if !hasRole || actingRole.Rank() < minimum.Rank() {
		return ErrForbidden
	}
	return nil
}
