package auth

import (
	"testing"

	"ledger/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newHasherTestConfig(cost int) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{BcryptCost: cost},
	}
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(newHasherTestConfig(bcrypt.MinCost))

	hash, err := hasher.Hash("Password123!")
	require.NoError(t, err)
	assert.NotEqual(t, "Password123!", hash)

	assert.True(t, hasher.Check("Password123!", hash))
	assert.False(t, hasher.Check("wrong-password", hash))
}

func TestBcryptHasher_SaltedHashesDiffer(t *testing.T) {
	hasher := NewBcryptHasher(newHasherTestConfig(bcrypt.MinCost))

	first, err := hasher.Hash("Password123!")
	require.NoError(t, err)
	second, err := hasher.Hash("Password123!")
	require.NoError(t, err)

	// Each hash carries its own salt yet both verify.
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("Password123!", first))
	assert.True(t, hasher.Check("Password123!", second))
}

func TestBcryptHasher_MalformedHashIsMismatch(t *testing.T) {
	hasher := NewBcryptHasher(newHasherTestConfig(bcrypt.MinCost))

	assert.False(t, hasher.Check("Password123!", "not-a-bcrypt-hash"))
	assert.False(t, hasher.Check("Password123!", ""))
}

func TestBcryptHasher_CostOutOfRangeFallsBack(t *testing.T) {
	hasher := NewBcryptHasher(newHasherTestConfig(99))

	hash, err := hasher.Hash("Password123!")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}

func TestBcryptHasher_NilAuthConfig(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{})

	hash, err := hasher.Hash("Password123!")
	require.NoError(t, err)
	assert.True(t, hasher.Check("Password123!", hash))
}
