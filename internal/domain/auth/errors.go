package auth

import "errors"

var (
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrInvalidToken         = errors.New("invalid or missing token")
	ErrTokenExpired         = errors.New("token expired")
	ErrInvalidRefreshToken  = errors.New("invalid refresh token")
	ErrWrongCurrentPassword = errors.New("current password is incorrect")
)
