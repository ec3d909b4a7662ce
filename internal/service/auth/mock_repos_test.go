package auth

import (
	"context"
	"sync"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-backend-go/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	mu    sync.Mutex
	users map[int64]user.User
}

func newMockUserRepo(users ...user.User) *mockUserRepo {
	m := &mockUserRepo{users: make(map[int64]user.User)}
	for _, u := range users {
		m.users[u.ID] = u
	}
	return m
}

func (m *mockUserRepo) Create(_ context.Context, u user.User) (user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u.ID = int64(len(m.users) + 1)
	m.users[u.ID] = u
	return u, nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id int64) (user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return user.User{}, user.ErrUserNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (m *mockUserRepo) Update(_ context.Context, id int64, name *string, passwordHash *string) (user.User, error) {
	return user.User{}, nil
}

func (m *mockUserRepo) UpdateLastLogin(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return user.ErrUserNotFound
	}
	now := time.Now()
	u.LastLogin = &now
	m.users[id] = u
	return nil
}

// ── Mock JWTRepository ──

type storedToken struct {
	userID    int64
	expiresAt time.Time
	revoked   bool
}

type mockJWTRepo struct {
	mu     sync.Mutex
	tokens map[string]*storedToken
}

var _ postgresql.JWTRepository = (*mockJWTRepo)(nil)

func newMockJWTRepo() *mockJWTRepo {
	return &mockJWTRepo{tokens: make(map[string]*storedToken)}
}

func (m *mockJWTRepo) CreateRefreshToken(_ context.Context, userID int64, token string, expiresAt int64, _ auth.SessionTrackingRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokens[postgresql.HashToken(token)] = &storedToken{userID: userID, expiresAt: time.Unix(expiresAt, 0)}
	return nil
}

func (m *mockJWTRepo) IsRefreshTokenRevoked(_ context.Context, token string) (int64, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.tokens[postgresql.HashToken(token)]
	if !ok {
		return 0, false, auth.ErrInvalidToken
	}
	return stored.userID, stored.revoked || !stored.expiresAt.After(time.Now()), nil
}

func (m *mockJWTRepo) RevokeRefreshToken(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if stored, ok := m.tokens[postgresql.HashToken(token)]; ok {
		stored.revoked = true
	}
	return nil
}

func (m *mockJWTRepo) PurgeRefreshTokens(_ context.Context, before time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for hash, stored := range m.tokens {
		if stored.revoked || stored.expiresAt.Before(before) {
			delete(m.tokens, hash)
			n++
		}
	}
	return n, nil
}

func testUser(id int64, email, password string, active bool) user.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return user.User{ID: id, Email: email, PasswordHash: string(hash), IsActive: active}
}
