package user

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]user.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[int64]user.User)}
}

func (m *mockUserRepo) Create(_ context.Context, u user.User) (user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.users {
		if existing.Email == u.Email {
			return user.User{}, user.ErrUserEmailExists
		}
	}
	m.nextID++
	u.ID = m.nextID
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
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
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	if name != nil {
		u.Name = *name
	}
	if passwordHash != nil {
		u.PasswordHash = *passwordHash
	}
	u.UpdatedAt = time.Now()
	m.users[id] = u
	return u, nil
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

func newTestUserService(repo user.UserRepository) *UserServiceImpl {
	svc := NewUserService(repo).(*UserServiceImpl)
	svc.hashCost = bcrypt.MinCost
	return svc
}

var testJWT = jwt.NewJWTService("test-secret-key-for-jwt", "1h", "24h")

func authContext(t *testing.T, userID int64) context.Context {
	t.Helper()
	tokenString, _, err := testJWT.GenerateAccessToken(userID, "user@example.com", false)
	require.NoError(t, err)
	token, err := testJWT.JWTAuth().Decode(tokenString)
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}
