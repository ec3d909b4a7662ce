package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const userColumns = `id, email, password_hash, name, is_active, is_staff, is_superuser,
		last_login, created_at, updated_at`

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.Name,
		&u.IsActive,
		&u.IsStaff,
		&u.IsSuperuser,
		&u.LastLogin,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	return u, err
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (email, password_hash, name, is_active, is_staff, is_superuser)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + userColumns

	created, err := scanUser(q.QueryRow(ctx, query,
		newUser.Email,
		newUser.PasswordHash,
		newUser.Name,
		newUser.IsActive,
		newUser.IsStaff,
		newUser.IsSuperuser,
	))
	if err != nil {
		if isPgError(err, pgUniqueViolation) {
			return user.User{}, user.ErrUserEmailExists
		}
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return created, nil
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id int64) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	found, err := scanUser(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, fmt.Errorf("user with id %d: %w", id, user.ErrUserNotFound)
		}
		return user.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return found, nil
}

// GetByEmail implements user.UserRepository.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	found, err := scanUser(q.QueryRow(ctx, query, email))
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return found, nil
}

// Update implements user.UserRepository. Nil arguments keep the stored value.
func (r *userRepositoryImpl) Update(ctx context.Context, id int64, name *string, passwordHash *string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET name = COALESCE($1, name),
			password_hash = COALESCE($2, password_hash),
			updated_at = NOW()
		WHERE id = $3
		RETURNING ` + userColumns

	updated, err := scanUser(q.QueryRow(ctx, query, name, passwordHash, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, fmt.Errorf("user with id %d: %w", id, user.ErrUserNotFound)
		}
		return user.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	return updated, nil
}

// UpdateLastLogin implements user.UserRepository.
func (r *userRepositoryImpl) UpdateLastLogin(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE users SET last_login = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user with id %d: %w", id, user.ErrUserNotFound)
	}
	return nil
}
