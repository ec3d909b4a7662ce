package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	appHTTP "github.com/cmlabs-hris/attendance-backend-go/internal/handler/http"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/cron"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/cmlabs-hris/attendance-backend-go/internal/service/attendance"
	serviceAuth "github.com/cmlabs-hris/attendance-backend-go/internal/service/auth"
	userService "github.com/cmlabs-hris/attendance-backend-go/internal/service/user"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var runMigrations bool

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Starts the attendance API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		dsn := cfg.DatabaseURL()
		if runMigrations {
			if err := migrateUp(dsn); err != nil {
				return err
			}
		}

		db, err := database.NewPostgreSQLDB(dsn)
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer db.Close()

		userRepo := postgresql.NewUserRepository(db)
		JWTRepository := postgresql.NewJWTRepository(db)
		attendanceRepo := postgresql.NewAttendanceRepository(db)

		JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
		authService := serviceAuth.NewAuthService(db, userRepo, JWTService, JWTRepository)
		userSvc := userService.NewUserService(userRepo)
		attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, attendance.Geofence{
			MinLatitude:  cfg.Geofence.MinLatitude,
			MaxLatitude:  cfg.Geofence.MaxLatitude,
			MinLongitude: cfg.Geofence.MinLongitude,
			MaxLongitude: cfg.Geofence.MaxLongitude,
		})

		router := appHTTP.NewRouter(
			appHTTP.RouterConfig{
				Logger:         logger,
				LogLevel:       cfg.SlogLevel(),
				AllowedOrigins: cfg.App.AllowedOrigins,
			},
			JWTService,
			userRepo,
			appHTTP.NewAuthHandler(JWTService, authService),
			appHTTP.NewUserHandler(userSvc),
			appHTTP.NewAttendanceHandler(attendanceSvc),
		)

		srv := &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.App.Port),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		scheduler := cron.NewScheduler()
		cron.NewTokenJobs(JWTRepository, cfg.JWT.PurgeRetention).RegisterJobs(scheduler, cfg.JWT.PurgeInterval)
		scheduler.Start(ctx)
		defer scheduler.Stop()

		errCh := make(chan error, 1)
		go func() {
			slog.Info("Server running", "addr", srv.Addr, "env", cfg.App.Env)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case err := <-errCh:
			if err != nil {
				return fmt.Errorf("server error: %w", err)
			}
			return nil
		case <-ctx.Done():
		}

		slog.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
	serverCmd.Flags().BoolVar(&runMigrations, "migrate", false, "apply pending migrations before serving")
}
