package service

import "errors"

// Business failures returned by the service layer. These are expected,
// non-exceptional negative outcomes; callers match them with [errors.Is] and
// translate them to HTTP statuses at the transport boundary. Only
// [ErrInvalidDataProvided] signals caller misuse — it is raised before any
// store access.
var (
	// ErrInvalidDataProvided is returned when a required argument is
	// missing, empty, or whitespace-only. Raised synchronously before any
	// I/O takes place.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrForbidden is returned when the acting principal is not authorized
	// to operate on the target user.
	ErrForbidden = errors.New("operation forbidden for acting user")

	// ErrUserNotFound is returned when the target user id does not resolve.
	ErrUserNotFound = errors.New("user not found")

	// ErrPasswordMismatch is returned by SetPassword when the password and
	// its confirmation differ.
	ErrPasswordMismatch = errors.New("password and confirmation do not match")

	// ErrPasswordAlreadySet is returned by SetPassword when the target
	// account already carries a password; the endpoint is one-time-use.
	ErrPasswordAlreadySet = errors.New("password already set")

	// ErrInvalidCredentials is returned on any credential verification
	// failure. It deliberately covers "user not found", "no password set"
	// and "wrong password" with a single message so that account existence
	// is never leaked.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrCannotReusePassword is returned when the new password verifies
	// against any hash retained in the user's password history.
	ErrCannotReusePassword = errors.New("cannot reuse a recent password")

	// ErrStatusUnchanged is returned by activation/deactivation when the
	// account is already in the requested state.
	ErrStatusUnchanged = errors.New("account already in requested status")

	// ErrAccountInactive is returned when an operation requires an active
	// account (login, role assignment) but the account is deactivated.
	ErrAccountInactive = errors.New("account is not active")

	// ErrInvalidRole is returned when a role name outside the closed role
	// set is supplied.
	ErrInvalidRole = errors.New("invalid role")

	// ErrCountryNotFound is returned when a country code does not resolve.
	ErrCountryNotFound = errors.New("country not found")

	// ErrTokenCreationFailed is returned when JWT generation fails.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrTokenIsExpiredOrInvalid normalises all token validation failures
	// (expired, wrong issuer, malformed) into a single error so callers do
	// not need to inspect low-level JWT errors.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
