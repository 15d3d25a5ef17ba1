package service

import (
	"context"

	"github.com/vpetrenko/go-identity-server/models"
)

// PermissionService decides whether an acting principal may operate on a
// target user, applying the role hierarchy User < Admin < SuperAdmin with a
// self-access override.
type PermissionService interface {
	// Validate returns nil when the actor may operate on the target user,
	// ErrForbidden otherwise. Every negative path — missing actor, empty
	// target, unknown target, role-less actor, insufficient rank — denies;
	// the method never reports why.
	Validate(ctx context.Context, actor models.Principal, targetUserID string) error
}

// PasswordService owns the two password-mutation entry points.
type PasswordService interface {
	// SetPassword establishes the first password of a user. It is used in
	// account-activation flows where the target has no credentials yet, so
	// no permission check is applied.
	SetPassword(ctx context.Context, userID string, req models.SetPasswordRequest) error

	// UpdatePassword rotates an existing password on behalf of actor.
	UpdatePassword(ctx context.Context, actor models.Principal, userID string, req models.UpdatePasswordRequest) error
}

// PasswordHistoryService keeps a durable record of past password hashes per
// user and answers reuse queries.
type PasswordHistoryService interface {
	AddPasswordHistory(ctx context.Context, req models.AddPasswordHistoryRequest) error
	FindPasswordHash(ctx context.Context, req models.FindPasswordHashRequest) (bool, error)
}

// PasswordCleanupService enforces the history retention window and erases
// full histories on account deletion.
type PasswordCleanupService interface {
	RemoveOldPasswords(ctx context.Context, userID string) error
	DeletePasswordHistory(ctx context.Context, userID string) error
}

// UserService owns account lifecycle and role membership. Every sensitive
// mutation is gated by the PermissionService.
type UserService interface {
	CreateUser(ctx context.Context, actor models.Principal, req models.CreateUserRequest) (models.User, error)
	GetUser(ctx context.Context, actor models.Principal, userID string) (models.User, error)
	ListUsers(ctx context.Context, actor models.Principal, filter models.UserFilter) ([]models.User, error)
	UpdateUser(ctx context.Context, actor models.Principal, userID string, req models.UpdateUserRequest) error
	DeleteUser(ctx context.Context, actor models.Principal, userID string) error

	ActivateUser(ctx context.Context, actor models.Principal, userID string) error
	DeactivateUser(ctx context.Context, actor models.Principal, userID string) error

	AssignRole(ctx context.Context, actor models.Principal, userID string, role models.Role) error
	RemoveRole(ctx context.Context, actor models.Principal, userID string, role models.Role) error
}

// AuthService authenticates users and manages the JWT token lifecycle.
type AuthService interface {
	Login(ctx context.Context, req models.LoginRequest) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AuditService records and queries audit events.
type AuditService interface {
	// Record persists an audit event best-effort: a storage failure is
	// logged and swallowed so that auditing never fails the mutation it
	// documents.
	Record(ctx context.Context, actorID, action, targetID, details string)

	// List returns audit events matching the filter. Restricted to actors
	// holding Admin or SuperAdmin.
	List(ctx context.Context, actor models.Principal, filter models.AuditFilter) ([]models.AuditEvent, error)
}

// CountryService serves the seeded country reference data.
type CountryService interface {
	ListCountries(ctx context.Context) ([]models.Country, error)
	GetCountryByCode(ctx context.Context, code string) (models.Country, error)
}
