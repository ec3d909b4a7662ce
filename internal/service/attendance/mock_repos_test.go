package attendance

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/require"
)

// ── Mock AttendanceRepository ──

type mockAttendanceRepo struct {
	mu        sync.Mutex
	nextID    int64
	records   map[int64]attendance.Attendance
	createErr error
}

func newMockAttendanceRepo() *mockAttendanceRepo {
	return &mockAttendanceRepo{records: make(map[int64]attendance.Attendance)}
}

func (m *mockAttendanceRepo) Create(_ context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return attendance.Attendance{}, m.createErr
	}
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

var errStoreDown = errors.New("connection refused")

// ── Auth context helper ──

var testJWT = jwt.NewJWTService("test-secret-key-for-jwt", "1h", "24h")

func authContext(t *testing.T, userID int64) context.Context {
	t.Helper()
	tokenString, _, err := testJWT.GenerateAccessToken(userID, "user@example.com", false)
	require.NoError(t, err)
	token, err := testJWT.JWTAuth().Decode(tokenString)
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}
