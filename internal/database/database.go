package database

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/yukikurage/todo-api/internal/config"
	"github.com/yukikurage/todo-api/internal/models"
)

// Connect opens a connection pool for the configured driver.
func Connect(cfg *config.Config, log *slog.Logger) (*gorm.DB, error) {
	dialector, err := Dialector(cfg.DBDriver, cfg.DSN())
	if err != nil {
		return nil, err
	}

	db, err := Open(dialector, cfg.DBLogLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Info("database connection established", "driver", cfg.DBDriver)
	return db, nil
}

// Dialector picks the GORM driver for name.
func Dialector(name, dsn string) (gorm.Dialector, error) {
	switch name {
	case config.DriverMySQL:
		return mysql.Open(dsn), nil
	case config.DriverPostgres:
		return postgres.Open(dsn), nil
	case config.DriverSQLite:
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", name)
	}
}

// Open wraps gorm.Open with the settings every caller needs. TranslateError
// turns driver specific unique violations into gorm.ErrDuplicatedKey.
func Open(dialector gorm.Dialector, logLevel string) (*gorm.DB, error) {
	return gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(gormLogLevel(logLevel)),
		TranslateError: true,
	})
}

// Migrate creates or updates the schema and the supporting indexes.
func Migrate(db *gorm.DB, log *slog.Logger) error {
	log.Info("running database migrations")
	if err := db.AutoMigrate(
		&models.User{},
		&models.Task{},
	); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := CaseSensitiveEmail(db, log); err != nil {
		return err
	}

	if err := AddIndexes(db, log); err != nil {
		return fmt.Errorf("failed to add indexes: %w", err)
	}

	log.Info("database migrations completed")
	return nil
}

// Ping checks that the database is reachable.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func gormLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}
