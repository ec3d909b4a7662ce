package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Geofence GeofenceConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	RefreshExpiration string
	AccessExpiration  string
	PurgeInterval     time.Duration
	PurgeRetention    time.Duration
}

// AppConfig holds application configuration
type AppConfig struct {
	Port           int
	Env            string
	LogLevel       string
	AllowedOrigins []string
}

// GeofenceConfig bounds the area check-ins are accepted from (inclusive).
type GeofenceConfig struct {
	MinLatitude  decimal.Decimal
	MaxLatitude  decimal.Decimal
	MinLongitude decimal.Decimal
	MaxLongitude decimal.Decimal
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded, using process environment", "error", err)
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "attendance"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:           appPort,
		Env:            getEnv("APP_ENV", "development"),
		LogLevel:       strings.ToLower(getEnv("LOG_LEVEL", "info")),
		AllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS"),
	}
	if len(config.App.AllowedOrigins) == 0 {
		config.App.AllowedOrigins = []string{"http://localhost:3000"}
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	config.JWT.PurgeInterval, err = time.ParseDuration(getEnv("JWT_PURGE_INTERVAL", "1h"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_PURGE_INTERVAL: %w", err)
	}
	config.JWT.PurgeRetention, err = time.ParseDuration(getEnv("JWT_PURGE_RETENTION", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_PURGE_RETENTION: %w", err)
	}

	// Geofence configuration
	geofence := GeofenceConfig{}
	bounds := []struct {
		key      string
		fallback string
		dst      *decimal.Decimal
	}{
		{"GEOFENCE_MIN_LAT", "3.0", &geofence.MinLatitude},
		{"GEOFENCE_MAX_LAT", "5.0", &geofence.MaxLatitude},
		{"GEOFENCE_MIN_LON", "6.0", &geofence.MinLongitude},
		{"GEOFENCE_MAX_LON", "7.0", &geofence.MaxLongitude},
	}
	for _, b := range bounds {
		v, err := decimal.NewFromString(getEnv(b.key, b.fallback))
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", b.key, err)
		}
		*b.dst = v
	}
	config.Geofence = geofence

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.JWT.PurgeInterval <= 0 {
		return fmt.Errorf("JWT_PURGE_INTERVAL must be positive")
	}
	if c.Geofence.MinLatitude.GreaterThan(c.Geofence.MaxLatitude) {
		return fmt.Errorf("GEOFENCE_MIN_LAT must not exceed GEOFENCE_MAX_LAT")
	}
	if c.Geofence.MinLongitude.GreaterThan(c.Geofence.MaxLongitude) {
		return fmt.Errorf("GEOFENCE_MIN_LON must not exceed GEOFENCE_MAX_LON")
	}
	if !validator.IsInSlice(c.App.LogLevel, []string{"debug", "info", "warn", "error"}) {
		return fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// SlogLevel maps LOG_LEVEL onto a slog level.
func (c *Config) SlogLevel() slog.Level {
	switch c.App.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env string) []string {
	value := getEnv(env, "")
	if value == "" {
		return []string{}
	}
	var result []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}
