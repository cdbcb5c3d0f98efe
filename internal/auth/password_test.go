package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/fooddelivery-service/internal/auth"
)

func TestPasswordHashAndCompare(t *testing.T) {
	hash, err := auth.HashPassword("s3cret", bcrypt.MinCost)
	require.NoError(t, err)
	require.NotEqual(t, "s3cret", hash)

	assert.NoError(t, auth.ComparePassword(hash, "s3cret"))
	assert.Error(t, auth.ComparePassword(hash, "wrong"))
}

func TestPasswordHashesAreSalted(t *testing.T) {
	first, err := auth.HashPassword("s3cret", bcrypt.MinCost)
	require.NoError(t, err)
	second, err := auth.HashPassword("s3cret", bcrypt.MinCost)
	require.NoError(t, err)

	// embedded salts differ, both still verify
	assert.NotEqual(t, first, second)
	assert.NoError(t, auth.ComparePassword(first, "s3cret"))
	assert.NoError(t, auth.ComparePassword(second, "s3cret"))
}

func TestCompareAgainstForeignHashFails(t *testing.T) {
	hash, err := auth.HashPassword("other-password", bcrypt.MinCost)
	require.NoError(t, err)
	assert.Error(t, auth.ComparePassword(hash, "s3cret"))
}
