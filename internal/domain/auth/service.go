package auth

import "context"

type AuthService interface {
	// Login verifies credentials and issues an access/refresh token pair.
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)

	// Register creates a new user account (admin/hr only).
	Register(ctx context.Context, req RegisterRequest) (UserResponse, error)

	// Me returns the authenticated user with the linked employee profile.
	Me(ctx context.Context) (MeResponse, error)

	// Refresh exchanges a refresh token for a new access token.
	Refresh(ctx context.Context, refreshToken string) (TokenResponse, error)

	// ChangePassword verifies the current password and stores the new hash.
	ChangePassword(ctx context.Context, req ChangePasswordRequest) error

	// Logout revokes the presented access token and, when one is
	// presented, the refresh token.
	Logout(ctx context.Context, accessToken, refreshToken string) error
}
