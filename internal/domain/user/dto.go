package user

import (
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
)

const minPasswordLength = 8

// UserResponse represents user data in API responses
type UserResponse struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
	IsStaff  bool   `json:"is_staff"`
}

func NewUserResponse(u User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Email:    u.Email,
		Name:     u.Name,
		IsActive: u.IsActive,
		IsStaff:  u.IsStaff,
	}
}

// CreateUserRequest represents request to create a new user
type CreateUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

func (r *CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if len(r.Email) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must not exceed 255 characters",
		})
	} else if !validator.IsValidEmail(NormalizeEmail(r.Email)) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "invalid email format",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	} else if len(r.Password) < minPasswordLength {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}

	if len(r.Name) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 255 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateMeRequest represents a partial update of the caller's own profile
type UpdateMeRequest struct {
	Name     *string `json:"name,omitempty"`
	Password *string `json:"password,omitempty"`
}

func (r *UpdateMeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && len(*r.Name) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 255 characters",
		})
	}

	if r.Password != nil {
		if validator.IsEmpty(*r.Password) {
			errs = append(errs, validator.ValidationError{
				Field:   "password",
				Message: "password must not be empty",
			})
		} else if len(*r.Password) < minPasswordLength {
			errs = append(errs, validator.ValidationError{
				Field:   "password",
				Message: "password must be at least 8 characters",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
