package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SERVER_PORT", "GIN_MODE", "DB_DRIVER", "JWT_SECRET", "JWT_ACCESS_TTL",
		"BCRYPT_COST", "CORS_ALLOWED_ORIGINS", "DATABASE_URL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, DriverMySQL, cfg.DBDriver)
	assert.Equal(t, time.Hour, cfg.AccessTokenTTL)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("JWT_ACCESS_TTL", "30m")
	t.Setenv("BCRYPT_COST", "5")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test,")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Equal(t, 30*time.Minute, cfg.AccessTokenTTL)
	assert.Equal(t, 5, cfg.BcryptCost)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowedOrigins)
}

func TestLoad_ReleaseRequiresSecret(t *testing.T) {
	clearEnv(t)
	t.Setenv("GIN_MODE", "release")

	_, err := Load()
	require.Error(t, err)

	t.Setenv("JWT_SECRET", "a-real-secret")
	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.IsRelease())
}

func TestValidate(t *testing.T) {
	base := func() Config {
		return Config{
			DBDriver:       DriverSQLite,
			JWTSecret:      "secret",
			AccessTokenTTL: time.Hour,
			BcryptCost:     10,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "unknown driver", mutate: func(c *Config) { c.DBDriver = "oracle" }, wantErr: true},
		{name: "blank secret", mutate: func(c *Config) { c.JWTSecret = "  " }, wantErr: true},
		{name: "non-positive ttl", mutate: func(c *Config) { c.AccessTokenTTL = 0 }, wantErr: true},
		{name: "cost too low", mutate: func(c *Config) { c.BcryptCost = 1 }, wantErr: true},
		{name: "cost too high", mutate: func(c *Config) { c.BcryptCost = 40 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDSN(t *testing.T) {
	cfg := Config{
		DBDriver:   DriverMySQL,
		DBHost:     "db",
		DBPort:     "3306",
		DBUser:     "u",
		DBPassword: "p",
		DBName:     "tasks",
		DBSSLMode:  "disable",
	}
	assert.Equal(t, "u:p@tcp(db:3306)/tasks?charset=utf8mb4&parseTime=True&loc=Local", cfg.DSN())

	cfg.DBDriver = DriverPostgres
	cfg.DBPort = "5432"
	assert.Equal(t, "postgres://u:p@db:5432/tasks?sslmode=disable", cfg.DSN())

	cfg.DBDriver = DriverSQLite
	assert.Equal(t, "tasks", cfg.DSN())

	cfg.DatabaseURL = "postgres://override"
	assert.Equal(t, "postgres://override", cfg.DSN())
}
