package auth

import "errors"

var (
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrInvalidToken        = errors.New("invalid or expired token")
	ErrRefreshTokenRevoked = errors.New("refresh token has been revoked")
	ErrUnauthenticated     = errors.New("authentication credentials were not provided")
	ErrUserNotFound        = errors.New("user not found")
)
