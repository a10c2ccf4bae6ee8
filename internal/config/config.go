package config

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/yukikurage/todo-api/internal/constants"
)

// DefaultJWTSecret is only acceptable outside release mode.
const DefaultJWTSecret = "default-secret-key-change-me"

// Supported database drivers
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	ServerPort      string
	GinMode         string
	ShutdownTimeout time.Duration

	DBDriver    string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSSLMode   string
	DatabaseURL string
	DBLogLevel  string

	JWTSecret      string
	AccessTokenTTL time.Duration
	BcryptCost     int

	CORSAllowedOrigins []string

	LogLevel  string
	LogFormat string
}

// Load reads configuration from the environment, loading a .env file first
// when one is present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Warning: failed to load .env file: %v", err)
	}

	cfg := &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		GinMode:         getEnv("GIN_MODE", "debug"),
		ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 5*time.Second),

		DBDriver:    strings.ToLower(getEnv("DB_DRIVER", DriverMySQL)),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "3306"),
		DBUser:      getEnv("DB_USER", "taskuser"),
		DBPassword:  getEnv("DB_PASSWORD", "taskpassword"),
		DBName:      getEnv("DB_NAME", "task_management"),
		DBSSLMode:   getEnv("DB_SSLMODE", "disable"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		DBLogLevel:  getEnv("DB_LOG_LEVEL", "warn"),

		JWTSecret:      getEnv("JWT_SECRET", DefaultJWTSecret),
		AccessTokenTTL: getDurationEnv("JWT_ACCESS_TTL", constants.DefaultAccessTokenTTL),
		BcryptCost:     getIntEnv("BCRYPT_COST", bcrypt.DefaultCost),

		CORSAllowedOrigins: getStringSliceEnv("CORS_ALLOWED_ORIGINS", []string{"*"}),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks values that would otherwise fail later at runtime.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case DriverMySQL, DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}

	if strings.TrimSpace(c.JWTSecret) == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.IsRelease() && c.JWTSecret == DefaultJWTSecret {
		return errors.New("JWT_SECRET must be set in release mode")
	}
	if c.AccessTokenTTL <= 0 {
		return errors.New("JWT_ACCESS_TTL must be positive")
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("BCRYPT_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}

	return nil
}

// IsRelease reports whether gin runs in release mode.
func (c *Config) IsRelease() bool {
	return c.GinMode == "release"
}

// DSN returns the connection string for the configured driver.
// DATABASE_URL wins over the individual DB_* settings.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}

	switch c.DBDriver {
	case DriverPostgres:
		u := &url.URL{
			Scheme: "postgres",
			Host:   c.DBHost + ":" + c.DBPort,
			User:   url.UserPassword(c.DBUser, c.DBPassword),
			Path:   c.DBName,
		}
		q := u.Query()
		q.Set("sslmode", c.DBSSLMode)
		u.RawQuery = q.Encode()
		return u.String()
	case DriverSQLite:
		return c.DBName
	default:
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			c.DBUser,
			c.DBPassword,
			c.DBHost,
			c.DBPort,
			c.DBName,
		)
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getStringSliceEnv(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parts := make([]string, 0)
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, part)
		}
	}
	if len(parts) == 0 {
		return defaultValue
	}
	return parts
}
