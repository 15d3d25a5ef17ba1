package models

import "time"

// Account status values stored in the users.account_status column.
const (
	// AccountStatusInactive marks an account that cannot log in and cannot
	// receive role assignments. Newly created accounts start in this state.
	AccountStatusInactive = 0

	// AccountStatusActive marks a fully operational account.
	AccountStatusActive = 1
)

// User represents an identity account entity used for authentication and
// authorization. It contains profile attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the unique identifier of the user (UUID string).
	// Immutable after creation.
	UserID string `json:"id"`

	// UserName is the unique login identifier used during authentication.
	UserName string `json:"user_name"`

	// FirstName and LastName are display attributes. Non-sensitive.
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	// Email is the contact address of the user.
	Email string `json:"email"`

	// PhoneNumber is the optional contact phone of the user.
	PhoneNumber string `json:"phone_number"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// An empty string means no password has been set yet: accounts
	// provisioned by an administrator stay credential-less until the user
	// completes self-service activation. Never exposed via JSON.
	PasswordHash string `json:"-"`

	// AccountStatus governs whether login and role assignment are permitted.
	// See AccountStatusInactive and AccountStatusActive.
	AccountStatus int `json:"account_status"`

	// Roles holds the role names associated with the user through the
	// user_roles relation. Populated on lookup, never stored on this row.
	Roles []Role `json:"roles,omitempty"`

	// CreatedAt is the timestamp when the account was created.
	// Used for auditing and lifecycle management.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserFilter narrows a user listing. Zero-valued fields are ignored.
type UserFilter struct {
	// UserName matches the exact user name.
	UserName string

	// Email matches the exact email address.
	Email string

	// AccountStatus filters by status when non-nil.
	AccountStatus *int

	// Limit caps the number of returned rows; zero means no cap.
	Limit uint64

	// Offset skips the first N rows of the result.
	Offset uint64
}

// HasPassword reports whether a password has ever been set for the account.
func (u User) HasPassword() bool {
	return u.PasswordHash != ""
}

// IsActive reports whether the account may log in and receive roles.
func (u User) IsActive() bool {
	return u.AccountStatus == AccountStatusActive
}
