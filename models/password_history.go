package models

import "time"

// PasswordHistoryLimit is the fixed retention window of past password hashes
// kept per user for reuse detection. Insertion of an entry beyond the limit
// triggers deletion of the oldest entries down to this count.
const PasswordHistoryLimit = 5

// PasswordHistory is a single retained password hash of a user.
// Rows are append-only; they are removed only by retention pruning or when
// the owning user account is deleted.
type PasswordHistory struct {
	// ID is the identifier assigned at insertion (UUID string).
	// Used only for stable ordering of entries created at the same instant.
	ID string `json:"id"`

	// UserID references the owning user.
	UserID string `json:"user_id"`

	// PasswordHash is the bcrypt hash at the time it was set or superseded.
	PasswordHash string `json:"-"`

	// CreatedAt is the UTC insertion timestamp.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the PasswordHistory model.
func (p PasswordHistory) TableName() string {
	return "password_history"
}
