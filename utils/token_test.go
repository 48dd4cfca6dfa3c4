package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTokenEnv(t *testing.T) {
	t.Setenv("JWT_ACCESS_KEY", "test-access-key")
	t.Setenv("JWT_REFRESH_KEY", "test-refresh-key")
	t.Setenv("JWT_ACCESS_EXPIRE", "15")
	t.Setenv("JWT_REFRESH_EXPIRE", "60")
}

func TestGenerateAndExtractTokens(t *testing.T) {
	setTokenEnv(t)

	tokens, err := GenerateTokens("42", "USER", false)
	require.NoError(t, err)
	require.NotEmpty(t, tokens.Access)
	require.NotEmpty(t, tokens.Refresh)

	claims, err := CheckAndExtractTokenMetadata(tokens.Access, "JWT_ACCESS_KEY")
	require.NoError(t, err)
	assert.Equal(t, "42", claims.Id)
	assert.Equal(t, "USER", claims.Role)
	assert.False(t, claims.Otp)

	claims, err = CheckAndExtractTokenMetadata(tokens.Refresh, "JWT_REFRESH_KEY")
	require.NoError(t, err)
	assert.Equal(t, "42", claims.Id)
}

func TestExtractTokenWrongKey(t *testing.T) {
	setTokenEnv(t)

	tokens, err := GenerateTokens("42", "ADMIN", true)
	require.NoError(t, err)

	// Access tokens never validate against the refresh key.
	_, err = CheckAndExtractTokenMetadata(tokens.Access, "JWT_REFRESH_KEY")
	require.Error(t, err)

	_, err = CheckAndExtractTokenMetadata("not-a-token", "JWT_ACCESS_KEY")
	require.Error(t, err)
}

func TestTokenCarriesOtpState(t *testing.T) {
	setTokenEnv(t)

	tokens, err := GenerateTokens("7", "USER", true)
	require.NoError(t, err)

	claims, err := CheckAndExtractTokenMetadata(tokens.Access, "JWT_ACCESS_KEY")
	require.NoError(t, err)
	assert.True(t, claims.Otp)
}
