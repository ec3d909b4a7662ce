package http

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-backend-go/internal/repository/postgresql"
)

// ── Mock AttendanceRepository ──

type mockAttendanceRepo struct {
	mu      sync.Mutex
	nextID  int64
	records map[int64]attendance.Attendance
}

func newMockAttendanceRepo() *mockAttendanceRepo {
	return &mockAttendanceRepo{records: make(map[int64]attendance.Attendance)}
}

func (m *mockAttendanceRepo) Create(_ context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	att.ID = m.nextID
	m.records[att.ID] = att
	return att, nil
}

func (m *mockAttendanceRepo) GetByID(_ context.Context, id int64, userID int64) (attendance.Attendance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if att, ok := m.records[id]; ok && att.UserID == userID {
		return att, nil
	}
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (m *mockAttendanceRepo) ListByUser(_ context.Context, userID int64) ([]attendance.Attendance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([]attendance.Attendance, 0)
	for _, att := range m.records {
		if att.UserID == userID {
			result = append(result, att)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

func (m *mockAttendanceRepo) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.records)
}

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
	m.users[u.ID] = u
	return u, nil
}

func (m *mockUserRepo) setActive(email string, active bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, u := range m.users {
		if u.Email == email {
			u.IsActive = active
			m.users[id] = u
		}
	}
}

func (m *mockUserRepo) remove(email string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, u := range m.users {
		if u.Email == email {
			delete(m.users, id)
		}
	}
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

// ── Mock JWTRepository ──

type mockJWTRepo struct {
	mu      sync.Mutex
	owners  map[string]int64
	revoked map[string]bool
}

var _ postgresql.JWTRepository = (*mockJWTRepo)(nil)
var _ user.UserRepository = (*mockUserRepo)(nil)

func newMockJWTRepo() *mockJWTRepo {
	return &mockJWTRepo{owners: make(map[string]int64), revoked: make(map[string]bool)}
}

func (m *mockJWTRepo) CreateRefreshToken(_ context.Context, userID int64, token string, _ int64, _ auth.SessionTrackingRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.owners[postgresql.HashToken(token)] = userID
	return nil
}

func (m *mockJWTRepo) IsRefreshTokenRevoked(_ context.Context, token string) (int64, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	hash := postgresql.HashToken(token)
	owner, ok := m.owners[hash]
	if !ok {
		return 0, false, auth.ErrInvalidToken
	}
	return owner, m.revoked[hash], nil
}

func (m *mockJWTRepo) RevokeRefreshToken(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.revoked[postgresql.HashToken(token)] = true
	return nil
}

func (m *mockJWTRepo) PurgeRefreshTokens(_ context.Context, _ time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for hash := range m.revoked {
		delete(m.owners, hash)
		delete(m.revoked, hash)
		n++
	}
	return n, nil
}
