package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNameAlreadyExists is returned when an attempt to create a new
	// user fails because a user with the same user name already exists.
	ErrUserNameAlreadyExists = errors.New("user name already exists")

	// ErrNoUserWasFound is returned when a query expected to match exactly
	// one user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrRoleAlreadyAssigned is returned when a role-membership insert hits
	// the (user_id, role) uniqueness constraint.
	ErrRoleAlreadyAssigned = errors.New("role already assigned")

	// ErrRoleWasNotAssigned is returned when a role-membership delete
	// affects zero rows, meaning the user never held the role.
	ErrRoleWasNotAssigned = errors.New("role was not assigned")

	// ErrNoCountryWasFound is returned when a country lookup by code
	// produces an empty result set.
	ErrNoCountryWasFound = errors.New("no country was found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
