package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("Test@1234")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.True(t, hasher.Verify(hash, "Test@1234"))
	assert.False(t, hasher.Verify(hash, "wrong-password"))
}

func TestBcryptHasher_HashEmptyPassword(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	_, err := hasher.Hash("")
	require.Error(t, err)
}

func TestBcryptHasher_HashesDiffer(t *testing.T) {
	// bcrypt salts every hash, two hashes of the same input must not match
	hasher := NewBcryptHasher(bcrypt.MinCost)

	first, err := hasher.Hash("Test@1234")
	require.NoError(t, err)
	second, err := hasher.Hash("Test@1234")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Verify(first, "Test@1234"))
	assert.True(t, hasher.Verify(second, "Test@1234"))
}

func TestBcryptHasher_VerifyDegenerateInputs(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	assert.False(t, hasher.Verify("", "password"))
	assert.False(t, hasher.Verify("not-a-bcrypt-hash", "password"))

	hash, err := hasher.Hash("password")
	require.NoError(t, err)
	assert.False(t, hasher.Verify(hash, ""))
}

func TestBcryptHasher_ZeroValueUsesDefaultCost(t *testing.T) {
	var hasher BcryptHasher

	hash, err := hasher.Hash("password")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
