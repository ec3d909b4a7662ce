package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceImpl struct {
	user.UserRepository
	hashCost int
}

func NewUserService(userRepository user.UserRepository) user.UserService {
	return &UserServiceImpl{
		UserRepository: userRepository,
		hashCost:       bcrypt.DefaultCost,
	}
}

func (s *UserServiceImpl) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (s *UserServiceImpl) create(ctx context.Context, req user.CreateUserRequest, staff bool) (user.UserResponse, error) {
	if validator.IsEmpty(req.Email) {
		return user.UserResponse{}, user.ErrEmailRequired
	}
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	hashedPassword, err := s.hashPassword(req.Password)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser := user.User{
		Email:        user.NormalizeEmail(req.Email),
		PasswordHash: hashedPassword,
		Name:         req.Name,
		IsActive:     true,
		IsStaff:      staff,
		IsSuperuser:  staff,
	}
	created, err := s.UserRepository.Create(ctx, newUser)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to create user: %w", err)
	}

	slog.Info("User created", "user_id", created.ID, "is_superuser", created.IsSuperuser)
	return user.NewUserResponse(created), nil
}

// CreateUser implements user.UserService.
func (s *UserServiceImpl) CreateUser(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	return s.create(ctx, req, false)
}

// CreateSuperuser implements user.UserService.
func (s *UserServiceImpl) CreateSuperuser(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	return s.create(ctx, req, true)
}

// GetMe implements user.UserService.
func (s *UserServiceImpl) GetMe(ctx context.Context) (user.UserResponse, error) {
	userID, err := jwt.UserIDFromContext(ctx)
	if err != nil {
		return user.UserResponse{}, err
	}

	found, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.NewUserResponse(found), nil
}

// UpdateMe implements user.UserService.
func (s *UserServiceImpl) UpdateMe(ctx context.Context, req user.UpdateMeRequest) (user.UserResponse, error) {
	userID, err := jwt.UserIDFromContext(ctx)
	if err != nil {
		return user.UserResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	var passwordHash *string
	if req.Password != nil {
		hashed, err := s.hashPassword(*req.Password)
		if err != nil {
			return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
		}
		passwordHash = &hashed
	}

	updated, err := s.UserRepository.Update(ctx, userID, req.Name, passwordHash)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.NewUserResponse(updated), nil
}
