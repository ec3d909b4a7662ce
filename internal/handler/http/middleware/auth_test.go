package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProtectedRouter(svc jwt.Service) http.Handler {
	r := chi.NewRouter()
	r.Use(jwtauth.Verifier(svc.JWTAuth()))
	r.Use(AuthRequired(svc.JWTAuth()))
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	return r
}

func serve(h http.Handler, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestAuthRequired(t *testing.T) {
	svc := jwt.NewJWTService("test-secret-key-for-jwt", "1h", "24h")
	h := newProtectedRouter(svc)

	access, _, err := svc.GenerateAccessToken(1, "a@b.cd", false)
	require.NoError(t, err)
	refresh, _, err := svc.GenerateRefreshToken(1)
	require.NoError(t, err)
	foreign, _, err := jwt.NewJWTService("other-secret", "1h", "24h").GenerateAccessToken(1, "a@b.cd", false)
	require.NoError(t, err)

	assert.Equal(t, http.StatusNoContent, serve(h, access).Code)

	for name, bearer := range map[string]string{
		"missing":       "",
		"garbage":       "not-a-token",
		"refresh token": refresh,
		"wrong secret":  foreign,
	} {
		t.Run(name, func(t *testing.T) {
			rec := serve(h, bearer)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)

			var body response.ErrorBody
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "UNAUTHORIZED", body.Code)
		})
	}
}

func TestAuthRequired_ExpiredToken(t *testing.T) {
	svc := jwt.NewJWTService("test-secret-key-for-jwt", "-1h", "24h")
	expired, _, err := svc.GenerateAccessToken(1, "a@b.cd", false)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, serve(newProtectedRouter(svc), expired).Code)
}

type stubUserRepo struct {
	users map[int64]user.User
	err   error
}

func (s *stubUserRepo) GetByID(_ context.Context, id int64) (user.User, error) {
	if s.err != nil {
		return user.User{}, s.err
	}
	u, ok := s.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (s *stubUserRepo) GetByEmail(context.Context, string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}

func (s *stubUserRepo) Create(context.Context, user.User) (user.User, error) {
	return user.User{}, errors.New("not implemented")
}

func (s *stubUserRepo) Update(context.Context, int64, *string, *string) (user.User, error) {
	return user.User{}, errors.New("not implemented")
}

func (s *stubUserRepo) UpdateLastLogin(context.Context, int64) error {
	return nil
}

func TestActiveUserRequired(t *testing.T) {
	svc := jwt.NewJWTService("test-secret-key-for-jwt", "1h", "24h")
	repo := &stubUserRepo{users: map[int64]user.User{
		1: {ID: 1, Email: "active@example.com", IsActive: true},
		2: {ID: 2, Email: "inactive@example.com", IsActive: false},
	}}

	r := chi.NewRouter()
	r.Use(jwtauth.Verifier(svc.JWTAuth()))
	r.Use(AuthRequired(svc.JWTAuth()))
	r.Use(ActiveUserRequired(repo))
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	tokenFor := func(id int64) string {
		token, _, err := svc.GenerateAccessToken(id, "x@example.com", false)
		require.NoError(t, err)
		return token
	}

	assert.Equal(t, http.StatusNoContent, serve(r, tokenFor(1)).Code)
	assert.Equal(t, http.StatusUnauthorized, serve(r, tokenFor(2)).Code)
	assert.Equal(t, http.StatusUnauthorized, serve(r, tokenFor(99)).Code)

	repo.err = errors.New("connection refused")
	assert.Equal(t, http.StatusInternalServerError, serve(r, tokenFor(1)).Code)
}
