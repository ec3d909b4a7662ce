package jwt

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/auth"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"

	refreshCookieName = "refresh_token"
	refreshCookiePath = "/api/v1/users"
)

type Service interface {
	GenerateAccessToken(userID int64, email string, isStaff bool) (token string, expiresAt int64, err error)
	GenerateRefreshToken(userID int64) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
	RefreshTokenCookie(token string, expiresAt int64) *http.Cookie
	ClearRefreshTokenCookie() *http.Cookie
}

type JWTService struct {
	secretKey                  string
	accessTokenExpirationTime  string
	refreshTokenExpirationTime string
	tokenAuth                  *jwtauth.JWTAuth
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime string, refreshTokenExpirationTime string) Service {
	return &JWTService{
		secretKey:                  secretKey,
		accessTokenExpirationTime:  accessTokenExpirationTime,
		refreshTokenExpirationTime: refreshTokenExpirationTime,
		tokenAuth:                  jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) GenerateAccessToken(userID int64, email string, isStaff bool) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.accessTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	claims := map[string]interface{}{
		"user_id":  strconv.FormatInt(userID, 10),
		"email":    email,
		"is_staff": isStaff,
		"type":     TokenTypeAccess,
		"jti":      uuid.NewString(),
		"exp":      expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

// GenerateRefreshToken carries a jti so that two tokens issued within the same
// second never share a stored hash.
func (j *JWTService) GenerateRefreshToken(userID int64) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.refreshTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()
	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"user_id": strconv.FormatInt(userID, 10),
		"jti":     uuid.NewString(),
		"exp":     expiresAt,
		"type":    TokenTypeRefresh,
	})
	return tokenString, expiresAt, err
}

func (j *JWTService) RefreshTokenCookie(token string, expiresAt int64) *http.Cookie {
	return &http.Cookie{
		Name:     refreshCookieName,
		Value:    token,
		Path:     refreshCookiePath,
		Expires:  time.Unix(expiresAt, 0),
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteStrictMode,
	}
}

func (j *JWTService) ClearRefreshTokenCookie() *http.Cookie {
	return &http.Cookie{
		Name:     refreshCookieName,
		Value:    "",
		Path:     refreshCookiePath,
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	}
}

// RefreshTokenFromRequest returns the refresh token cookie value, or "" when absent.
func RefreshTokenFromRequest(r *http.Request) string {
	cookie, err := r.Cookie(refreshCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// UserIDFromContext returns the user_id claim of the verified token in ctx.
func UserIDFromContext(ctx context.Context) (int64, error) {
	token, claims, err := jwtauth.FromContext(ctx)
	if err != nil || token == nil {
		return 0, auth.ErrUnauthenticated
	}

	raw, ok := claims["user_id"].(string)
	if !ok {
		return 0, auth.ErrUnauthenticated
	}
	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, auth.ErrUnauthenticated
	}
	return userID, nil
}
