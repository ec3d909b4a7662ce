package user

import "errors"

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrUserEmailExists       = errors.New("email already registered")
	ErrEmailRequired         = errors.New("user must have an email address")
	ErrInvalidPasswordLength = errors.New("password must be at least 8 characters")
)
