package models

// LoginRequest is the credentials payload of POST /api/auth/login.
type LoginRequest struct {
	UserName string `json:"user_name"`
	Password string `json:"password"`
}

// CreateUserRequest is the payload of POST /api/users. The account is
// created without credentials; a password is attached later through the
// set-password flow.
type CreateUserRequest struct {
	UserName    string `json:"user_name"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
}

// UpdateUserRequest is the payload of PUT /api/users/{id}. Profile fields
// only; credentials and status are mutated through their own endpoints.
type UpdateUserRequest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
}

// SetPasswordRequest establishes the first password of a user.
type SetPasswordRequest struct {
	Password          string `json:"password"`
	PasswordConfirmed string `json:"password_confirmed"`
}

// UpdatePasswordRequest rotates an existing password.
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// AddPasswordHistoryRequest records a freshly applied password hash.
type AddPasswordHistoryRequest struct {
	UserID       string
	PasswordHash string
}

// FindPasswordHashRequest asks whether a plaintext password was already used.
type FindPasswordHashRequest struct {
	UserID   string
	Password string
}
