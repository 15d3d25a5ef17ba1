package store

import (
	"context"

	"github.com/vpetrenko/go-identity-server/models"
)

// UserRepository is the persistence boundary for user accounts and their
// role memberships.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, userID string) (models.User, error)
	FindUserByUserName(ctx context.Context, userName string) (models.User, error)
	ListUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error)
	UpdateUser(ctx context.Context, user models.User) error
	DeleteUser(ctx context.Context, userID string) error

	UpdatePasswordHash(ctx context.Context, userID, passwordHash string) error
	UpdateAccountStatus(ctx context.Context, userID string, status int) error

	GetRoles(ctx context.Context, userID string) ([]models.Role, error)
	AssignRole(ctx context.Context, userID string, role models.Role) error
	RemoveRole(ctx context.Context, userID string, role models.Role) error
}

// PasswordHistoryRepository is the persistence boundary for retained
// password hashes. Rows are append-only; deletion happens only through
// retention pruning and account removal.
type PasswordHistoryRepository interface {
	Insert(ctx context.Context, entry models.PasswordHistory) error

	// ListByUser returns all entries of a user ordered newest first
	// (created_at desc, id desc — a total order with ties broken by id).
	ListByUser(ctx context.Context, userID string) ([]models.PasswordHistory, error)

	// DeleteByIDs removes the given entries of a user. Returns the number
	// of rows actually deleted.
	DeleteByIDs(ctx context.Context, userID string, ids []string) (int64, error)

	// DeleteAllForUser removes every entry of a user. Returns the number of
	// rows actually deleted.
	DeleteAllForUser(ctx context.Context, userID string) (int64, error)
}

// AuditRepository is the persistence boundary for audit events.
type AuditRepository interface {
	Insert(ctx context.Context, event models.AuditEvent) error
	List(ctx context.Context, filter models.AuditFilter) ([]models.AuditEvent, error)
}

// CountryRepository is the read-only boundary for country reference data.
type CountryRepository interface {
	ListCountries(ctx context.Context) ([]models.Country, error)
	FindCountryByCode(ctx context.Context, code string) (models.Country, error)
}
