package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App        AppConfig
	Database   DatabaseConfig
	Store      StoreConfig
	Auth       AuthConfig
	Attendance AttendanceConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// StoreConfig selects the attendance store backend.
type StoreConfig struct {
	Driver string // "postgresql" or "memory"
}

type AuthConfig struct {
	Secret string
}

// AttendanceConfig holds the recording engine tunables. The late threshold
// and the dedup window are configuration values on purpose; the engine never
// hardcodes them.
type AttendanceConfig struct {
	LateThreshold string        // clock time, e.g. "09:00:00"
	DedupWindow   time.Duration // duplicate submissions within this window are no-ops
	LockTimeout   time.Duration // per-record write lock wait before giving up
}

func Load() (*Config, error) {
	// .env is optional; environment variables win either way.
	_ = godotenv.Load()

	config := &Config{}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:4200"),
	}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "fingerprint-attendance"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	config.Store = StoreConfig{
		Driver: getEnv("STORE_DRIVER", "postgresql"),
	}

	config.Auth = AuthConfig{
		Secret: getEnv("JWT_SECRET_KEY", ""),
	}

	dedupWindow, err := time.ParseDuration(getEnv("DEDUP_WINDOW", "2s"))
	if err != nil {
		return nil, fmt.Errorf("invalid DEDUP_WINDOW: %w", err)
	}

	lockTimeout, err := time.ParseDuration(getEnv("RECORD_LOCK_TIMEOUT", "2s"))
	if err != nil {
		return nil, fmt.Errorf("invalid RECORD_LOCK_TIMEOUT: %w", err)
	}

	config.Attendance = AttendanceConfig{
		LateThreshold: getEnv("LATE_THRESHOLD", "09:00:00"),
		DedupWindow:   dedupWindow,
		LockTimeout:   lockTimeout,
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Auth.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	switch c.Store.Driver {
	case "postgresql":
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD is required when STORE_DRIVER is postgresql")
		}
	case "memory":
		// No database settings needed.
	default:
		return fmt.Errorf("unsupported STORE_DRIVER: %s", c.Store.Driver)
	}
	if _, err := time.Parse("15:04:05", c.Attendance.LateThreshold); err != nil {
		return fmt.Errorf("invalid LATE_THRESHOLD: %w", err)
	}
	if c.Attendance.DedupWindow < 0 {
		return fmt.Errorf("DEDUP_WINDOW must not be negative")
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

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
