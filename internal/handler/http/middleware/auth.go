package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

// AuthRequired rejects requests that do not carry a verified access token.
// It must run after jwtauth.Verifier.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())

			if errors.Is(err, jwtauth.ErrNoTokenFound) {
				response.HandleError(w, auth.ErrUnauthenticated)
				return
			}

			if err != nil || token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			tokenType, ok := claims["type"].(string)
			if tokenType != jwt.TokenTypeAccess || !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}

// ActiveUserRequired rejects tokens whose owner was deleted or deactivated
// after the token was issued. It must run after AuthRequired.
func ActiveUserRequired(users user.UserRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			userID, err := jwt.UserIDFromContext(r.Context())
			if err != nil {
				response.HandleError(w, err)
				return
			}

			u, err := users.GetByID(r.Context(), userID)
			if errors.Is(err, user.ErrUserNotFound) || (err == nil && !u.IsActive) {
				response.HandleError(w, auth.ErrUnauthenticated)
				return
			}
			if err != nil {
				slog.Error("Active user lookup error", "error", err, "user_id", userID)
				response.HandleError(w, err)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
