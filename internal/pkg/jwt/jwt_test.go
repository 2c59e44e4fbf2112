package jwt

import (
	"testing"
	"time"

	"github.com/corestack-app/corestack-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret     = "test-secret-key-for-jwt"
	testAccessExp  = "1h"
	testRefreshExp = "24h"
)

func TestGenerateAccessToken(t *testing.T) {
	jwtService := NewJWTService(testSecret, testAccessExp, testRefreshExp)

	employeeID := "0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b"
	token, expiresAt, err := jwtService.GenerateAccessToken("user-1", "test@example.com", &employeeID, user.RoleManager)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Greater(t, expiresAt, time.Now().Unix())

	decoded, err := jwtService.JWTAuth().Decode(token)
	require.NoError(t, err)

	userID, _ := decoded.Get("user_id")
	assert.Equal(t, "user-1", userID)

	email, _ := decoded.Get("email")
	assert.Equal(t, "test@example.com", email)

	empID, _ := decoded.Get("employee_id")
	assert.Equal(t, employeeID, empID)

	role, _ := decoded.Get("role")
	assert.Equal(t, "manager", role)

	tokenType, _ := decoded.Get("type")
	assert.Equal(t, "access", tokenType)
}

func TestGenerateAccessToken_NoEmployeeProfile(t *testing.T) {
	jwtService := NewJWTService(testSecret, testAccessExp, testRefreshExp)

	token, _, err := jwtService.GenerateAccessToken("user-1", "admin@example.com", nil, user.RoleAdmin)
	require.NoError(t, err)

	decoded, err := jwtService.JWTAuth().Decode(token)
	require.NoError(t, err)

	empID, ok := decoded.Get("employee_id")
	if ok {
		assert.Nil(t, empID)
	}
}

func TestGenerateAccessToken_InvalidExpiration(t *testing.T) {
	jwtService := NewJWTService(testSecret, "not-a-duration", testRefreshExp)

	_, _, err := jwtService.GenerateAccessToken("user-1", "test@example.com", nil, user.RoleEmployee)
	assert.Error(t, err)
}

func TestValidateRefreshToken(t *testing.T) {
	jwtService := NewJWTService(testSecret, testAccessExp, testRefreshExp)

	token, _, err := jwtService.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	userID, err := jwtService.ValidateRefreshToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestValidateRefreshToken_RejectsAccessToken(t *testing.T) {
	jwtService := NewJWTService(testSecret, testAccessExp, testRefreshExp)

	// An access token must not pass as a refresh token.
	token, _, err := jwtService.GenerateAccessToken("user-1", "test@example.com", nil, user.RoleEmployee)
	require.NoError(t, err)

	_, err = jwtService.ValidateRefreshToken(token)
	assert.Error(t, err)
}

func TestValidateRefreshToken_Garbage(t *testing.T) {
	jwtService := NewJWTService(testSecret, testAccessExp, testRefreshExp)

	_, err := jwtService.ValidateRefreshToken("not-a-token")
	assert.Error(t, err)
}

func TestValidateRefreshToken_WrongSecret(t *testing.T) {
	issuer := NewJWTService("other-secret", testAccessExp, testRefreshExp)
	jwtService := NewJWTService(testSecret, testAccessExp, testRefreshExp)

	token, _, err := issuer.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	_, err = jwtService.ValidateRefreshToken(token)
	assert.Error(t, err)
}

func TestRevokeToken(t *testing.T) {
	jwtService := NewJWTService(testSecret, testAccessExp, testRefreshExp)

	token, _, err := jwtService.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	assert.False(t, jwtService.IsTokenRevoked(token))

	jwtService.RevokeToken(token)
	assert.True(t, jwtService.IsTokenRevoked(token))

	_, err = jwtService.ValidateRefreshToken(token)
	assert.Error(t, err)
}

func TestRefreshTokenCookie(t *testing.T) {
	jwtService := NewJWTService(testSecret, testAccessExp, testRefreshExp)

	expiresAt := time.Now().Add(24 * time.Hour).Unix()
	cookie := jwtService.RefreshTokenCookie("some-token", expiresAt)

	assert.Equal(t, "refresh_token", cookie.Name)
	assert.Equal(t, "some-token", cookie.Value)
	assert.Equal(t, "/api/v1/auth", cookie.Path)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, time.Unix(expiresAt, 0), cookie.Expires)
}
