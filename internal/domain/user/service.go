package user

import "context"

type UserService interface {
	// CreateUser normalizes the email, hashes the password and stores a regular user
	CreateUser(ctx context.Context, req CreateUserRequest) (UserResponse, error)

	// CreateSuperuser stores a user with staff and superuser flags set
	CreateSuperuser(ctx context.Context, req CreateUserRequest) (UserResponse, error)

	// GetMe returns the authenticated caller's profile
	GetMe(ctx context.Context) (UserResponse, error)

	// UpdateMe changes the caller's name and/or password
	UpdateMe(ctx context.Context, req UpdateMeRequest) (UserResponse, error)
}
