package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")

	token, refreshToken, err := GenerateAllTokens("v@example.com", "Asha", "vendor123", RoleVendor)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotEmpty(t, refreshToken)

	claims, msg := ValidateToken(token)
	require.Empty(t, msg)
	assert.Equal(t, "v@example.com", claims.Email)
	assert.Equal(t, "Asha", claims.Name)
	assert.Equal(t, "vendor123", claims.Uid)
	assert.Equal(t, RoleVendor, claims.Role)
}

func TestSecretReadAtCallTime(t *testing.T) {
	// The secret shows up in the environment only after this package is
	// long initialized, as it does when startup loads a .env file.
	// Tokens must still be signed with it, not with an init-time copy.
	t.Setenv("SECRET_KEY", "late-secret")

	token, _, err := GenerateAllTokens("c@example.com", "Ravi", "cust123", RoleCustomer)
	require.NoError(t, err)

	claims, msg := ValidateToken(token)
	require.Empty(t, msg)
	assert.Equal(t, "cust123", claims.Uid)

	// A token from before a secret rotation stops validating.
	t.Setenv("SECRET_KEY", "rotated-secret")
	claims, msg = ValidateToken(token)
	assert.Nil(t, claims)
	assert.NotEmpty(t, msg)
}

func TestMissingSecretRefusesToSignOrValidate(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")
	token, _, err := GenerateAllTokens("c@example.com", "Ravi", "cust123", RoleCustomer)
	require.NoError(t, err)

	t.Setenv("SECRET_KEY", "")

	_, _, err = GenerateAllTokens("c@example.com", "Ravi", "cust123", RoleCustomer)
	assert.ErrorIs(t, err, ErrNoSecret)

	// An empty secret must never validate anything, or a forged token
	// signed with "" would pass the auth middleware.
	claims, msg := ValidateToken(token)
	assert.Nil(t, claims)
	assert.Equal(t, ErrNoSecret.Error(), msg)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")

	claims, msg := ValidateToken("not-a-token")
	assert.Nil(t, claims)
	assert.NotEmpty(t, msg)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")
	token, _, err := GenerateAllTokens("c@example.com", "Ravi", "cust123", RoleCustomer)
	require.NoError(t, err)

	t.Setenv("SECRET_KEY", "different-secret")
	claims, msg := ValidateToken(token)
	assert.Nil(t, claims)
	assert.NotEmpty(t, msg)
}
