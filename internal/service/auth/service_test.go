package auth

import (
	"context"
	"testing"

	"github.com/corestack-app/corestack-backend-go/internal/domain/auth"
	"github.com/corestack-app/corestack-backend-go/internal/domain/user"
	"github.com/corestack-app/corestack-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogoutRevokesBothTokens(t *testing.T) {
	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", "1h", "24h")
	svc := NewAuthService(nil, nil, jwtService)

	employeeID := "0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b"
	access, _, err := jwtService.GenerateAccessToken("user-1", "test@example.com", &employeeID, user.RoleEmployee)
	require.NoError(t, err)
	refresh, _, err := jwtService.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), access, refresh))

	assert.True(t, jwtService.IsTokenRevoked(access))
	assert.True(t, jwtService.IsTokenRevoked(refresh))

	// A revoked refresh token must not mint new access tokens.
	_, err = jwtService.ValidateRefreshToken(refresh)
	assert.Error(t, err)
}

func TestLogoutWithoutRefreshToken(t *testing.T) {
	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", "1h", "24h")
	svc := NewAuthService(nil, nil, jwtService)

	access, _, err := jwtService.GenerateAccessToken("user-1", "test@example.com", nil, user.RoleAdmin)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), access, ""))
	assert.True(t, jwtService.IsTokenRevoked(access))
}

func TestLogoutEmptyAccessToken(t *testing.T) {
	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", "1h", "24h")
	svc := NewAuthService(nil, nil, jwtService)

	err := svc.Logout(context.Background(), "", "")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
