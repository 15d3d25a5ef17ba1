package utils

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher is the opaque one-way hashing capability used by the
// password lifecycle. Implementations must be safe for concurrent use.
type PasswordHasher interface {
	// Hash derives a storable hash from a plaintext password.
	Hash(password string) (string, error)

	// Verify reports whether plaintext matches the previously stored hash.
	Verify(hash, password string) bool
}

// BcryptHasher implements PasswordHasher on top of golang.org/x/crypto/bcrypt.
// The zero value uses bcrypt.DefaultCost.
type BcryptHasher struct {
	// Cost is the bcrypt work factor. Values below bcrypt.MinCost fall back
	// to bcrypt.DefaultCost.
	Cost int
}

// NewBcryptHasher returns a PasswordHasher with the given bcrypt cost.
func NewBcryptHasher(cost int) *BcryptHasher {
	return &BcryptHasher{Cost: cost}
}

// Hash derives a bcrypt hash from the plaintext password.
//
// Returns an error when the password is empty or exceeds bcrypt's 72-byte
// input limit.
func (h *BcryptHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", errors.New("empty password cannot be hashed")
	}

	cost := h.Cost
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}

	return string(hashed), nil
}

// Verify reports whether password matches hash. Any comparison failure
// (wrong password, malformed hash, empty inputs) yields false; the caller
// never needs to distinguish the cause.
func (h *BcryptHasher) Verify(hash, password string) bool {
	if hash == "" || password == "" {
		return false
	}

	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
