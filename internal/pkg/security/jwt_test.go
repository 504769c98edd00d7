package security

import (
	"PedGuard/internal/api/config"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initTestSecret(t *testing.T) {
	t.Helper()
	require.NoError(t, Init(config.JWTConfig{Secret: "unit-test-secret"}))
}

func TestAccessTokenRoundTrip(t *testing.T) {
	initTestSecret(t)

	token, err := GenerateToken(42, []string{"USER", "ADMIN"})
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), claims.UserID)
	assert.Equal(t, []string{"USER", "ADMIN"}, claims.Roles)
	assert.False(t, claims.Refresh)
	assert.Equal(t, "PedGuard", claims.Issuer)
}

func TestRefreshTokenCarriesRefreshClaim(t *testing.T) {
	initTestSecret(t)

	token, err := GenerateRefreshToken(42)
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.True(t, claims.Refresh)
	assert.Equal(t, uint64(42), claims.UserID)
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	initTestSecret(t)

	token, err := GenerateToken(42, []string{"USER"})
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + ".AAAA" + parts[2][4:]

	_, err = ValidateToken(tampered)
	assert.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	initTestSecret(t)

	_, err := ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestExtractSignature(t *testing.T) {
	initTestSecret(t)

	token, err := GenerateToken(1, nil)
	require.NoError(t, err)

	sig, err := ExtractSignature(token)
	require.NoError(t, err)
	assert.Equal(t, strings.Split(token, ".")[2], sig)

	_, err = ExtractSignature("two.parts")
	assert.Error(t, err)
}

func TestInitRequiresSecret(t *testing.T) {
	assert.Error(t, Init(config.JWTConfig{}))
}
