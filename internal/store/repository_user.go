package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/vpetrenko/go-identity-server/internal/logger"
	"github.com/vpetrenko/go-identity-server/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles user account rows in the "users" table and role memberships in
// the "user_roles" relation.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (CreatedAt).
//
// The INSERT uses the [createUser] prepared query which returns all columns
// via a RETURNING clause, so the caller receives the canonical database
// representation of the newly created account.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrUserNameAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser,
		user.UserID, user.UserName, user.FirstName, user.LastName,
		user.Email, user.PhoneNumber, user.PasswordHash, user.AccountStatus)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrUserNameAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if err := scanUser(row, &user); err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.User{}, ErrUserNameAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
		return models.User{}, err
	}

	return user, nil
}

// FindUserByID retrieves the user record with the given identifier.
//
// Returns [ErrNoUserWasFound] when no row matches.
func (r *userRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	return r.findOne(ctx, findUserByID, userID, "*userRepository.FindUserByID")
}

// FindUserByUserName retrieves the user record with the given login name.
//
// Returns [ErrNoUserWasFound] when no row matches.
func (r *userRepository) FindUserByUserName(ctx context.Context, userName string) (models.User, error) {
	return r.findOne(ctx, findUserByUserName, userName, "*userRepository.FindUserByUserName")
}

func (r *userRepository) findOne(ctx context.Context, query, arg, funcName string) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, query, arg)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error: row is nil")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := scanUser(row, &foundUser); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", funcName).Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return foundUser, nil
}

// ListUsers retrieves users matching the filter, ordered by creation time.
// The query is assembled dynamically with squirrel since every filter field
// is optional.
func (r *userRepository) ListUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	log := logger.FromContext(ctx)

	builder := sq.Select("user_id", "user_name", "first_name", "last_name",
		"email", "phone_number", "password_hash", "account_status", "created_at").
		From("users").
		OrderBy("created_at", "user_id").
		PlaceholderFormat(sq.Dollar)

	if filter.UserName != "" {
		builder = builder.Where(sq.Eq{"user_name": filter.UserName})
	}
	if filter.Email != "" {
		builder = builder.Where(sq.Eq{"email": filter.Email})
	}
	if filter.AccountStatus != nil {
		builder = builder.Where(sq.Eq{"account_status": *filter.AccountStatus})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		builder = builder.Offset(filter.Offset)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0, 50)
	for rows.Next() {
		var user models.User
		if scanErr := scanUser(rows, &user); scanErr != nil {
			log.Err(scanErr).Str("func", "*userRepository.ListUsers").Msg("failed to scan user row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		users = append(users, user)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*userRepository.ListUsers").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return users, nil
}

// UpdateUser persists profile-field changes of an existing user.
// Credentials and account status are mutated through their own methods.
//
// Returns [ErrNoUserWasFound] when the row does not exist.
func (r *userRepository) UpdateUser(ctx context.Context, user models.User) error {
	return r.execExpectingRow(ctx, "*userRepository.UpdateUser", updateUser,
		user.UserID, user.FirstName, user.LastName, user.Email, user.PhoneNumber)
}

// DeleteUser removes the user row. Role memberships and password history
// cascade at the schema level; history is additionally erased by the cleanup
// service for defence in depth.
//
// Returns [ErrNoUserWasFound] when the row does not exist.
func (r *userRepository) DeleteUser(ctx context.Context, userID string) error {
	return r.execExpectingRow(ctx, "*userRepository.DeleteUser", deleteUser, userID)
}

// UpdatePasswordHash replaces the stored password hash of a user.
//
// Returns [ErrNoUserWasFound] when the row does not exist.
func (r *userRepository) UpdatePasswordHash(ctx context.Context, userID, passwordHash string) error {
	return r.execExpectingRow(ctx, "*userRepository.UpdatePasswordHash", updateUserPasswordHash, userID, passwordHash)
}

// UpdateAccountStatus flips the account-status flag of a user.
//
// Returns [ErrNoUserWasFound] when the row does not exist.
func (r *userRepository) UpdateAccountStatus(ctx context.Context, userID string, status int) error {
	return r.execExpectingRow(ctx, "*userRepository.UpdateAccountStatus", updateUserAccountStatus, userID, status)
}

// GetRoles retrieves the role names associated with a user, ordered by name.
// Unknown role names stored in the relation are skipped.
func (r *userRepository) GetRoles(ctx context.Context, userID string) ([]models.Role, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getUserRoles, userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.GetRoles").Str("user_id", userID).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	roles := make([]models.Role, 0, 3)
	for rows.Next() {
		var name string
		if scanErr := rows.Scan(&name); scanErr != nil {
			log.Err(scanErr).Str("func", "*userRepository.GetRoles").Str("user_id", userID).Msg("failed to scan role row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		if role, ok := models.ParseRole(name); ok {
			roles = append(roles, role)
		}
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*userRepository.GetRoles").Str("user_id", userID).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return roles, nil
}

// AssignRole adds a role membership for a user.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrRoleAlreadyAssigned].
//   - PostgreSQL foreign_key_violation (23503) → [ErrNoUserWasFound].
func (r *userRepository) AssignRole(ctx context.Context, userID string, role models.Role) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, assignUserRole, userID, string(role)); err != nil {
		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return ErrRoleAlreadyAssigned
		case pgerrcode.ForeignKeyViolation:
			return ErrNoUserWasFound
		default:
			log.Err(err).Str("func", "*userRepository.AssignRole").Str("user_id", userID).Msg("failed to execute statement")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return nil
}

// RemoveRole deletes a role membership of a user.
//
// Returns [ErrRoleWasNotAssigned] when the membership did not exist.
func (r *userRepository) RemoveRole(ctx context.Context, userID string, role models.Role) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, removeUserRole, userID, string(role))
	if err != nil {
		log.Err(err).Str("func", "*userRepository.RemoveRole").Str("user_id", userID).Msg("failed to execute statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrRoleWasNotAssigned
	}

	return nil
}

// execExpectingRow runs a DML statement that must affect exactly one user
// row and maps the zero-rows case to [ErrNoUserWasFound].
func (r *userRepository) execExpectingRow(ctx context.Context, funcName, query string, args ...any) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return ErrUserNameAlreadyExists
		}
		log.Err(err).Str("func", funcName).Msg("failed to execute statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner, user *models.User) error {
	return row.Scan(
		&user.UserID,
		&user.UserName,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.PhoneNumber,
		&user.PasswordHash,
		&user.AccountStatus,
		&user.CreatedAt,
	)
}
