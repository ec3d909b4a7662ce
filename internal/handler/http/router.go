package http

import (
	"io"
	"log/slog"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

// maxRequestBodyBytes caps every request body.
const maxRequestBodyBytes = 1 << 20

type RouterConfig struct {
	Logger         *slog.Logger
	LogLevel       slog.Level
	AllowedOrigins []string
}

func NewRouter(cfg RouterConfig, JWTService jwt.Service, userRepository user.UserRepository, authHandler AuthHandler, userHandler UserHandler, attendanceHandler AttendanceHandler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(chiMiddleware.RequestID)
	r.Use(httplog.RequestLogger(cfg.Logger, &httplog.Options{
		Level:  cfg.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.RequestSize(maxRequestBodyBytes))
	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.StripSlashes)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/users", func(r chi.Router) {
			r.Post("/", userHandler.Create)
			r.Post("/token", authHandler.Login)
			r.Post("/token/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)

			// Requires authentication
			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
				r.Use(middleware.AuthRequired(JWTService.JWTAuth()))
				r.Use(middleware.ActiveUserRequired(userRepository))

				r.Get("/me", userHandler.GetMe)
				r.Patch("/me", userHandler.UpdateMe)
			})
		})

		// Requires authentication
		r.Route("/attendances", func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))
			r.Use(middleware.ActiveUserRequired(userRepository))

			r.Get("/", attendanceHandler.List)
			r.Post("/", attendanceHandler.Create)
			r.Get("/{id}", attendanceHandler.Get)
		})
	})
	return r
}

// NewLogger builds the JSON slog logger used for request logs, formatted with the ECS schema.
func NewLogger(w io.Writer, level slog.Level, env string) *slog.Logger {
	logFormat := httplog.SchemaECS.Concise(false)
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)
}
