package database

import (
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/yukikurage/todo-api/internal/config"
)

// AddIndexes adds the indexes the owner-scoped queries rely on.
func AddIndexes(db *gorm.DB, log *slog.Logger) error {
	indexes := []struct {
		table   string
		name    string
		columns string
	}{
		// Every task query filters by owner
		{"tasks", "idx_tasks_owner_id", "owner_id"},
	}

	for _, idx := range indexes {
		if db.Migrator().HasIndex(idx.table, idx.name) {
			log.Debug("index already exists, skipping", "index", idx.name)
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}

		log.Info("created index", "index", idx.name, "table", idx.table, "columns", idx.columns)
	}

	return nil
}

// CaseSensitiveEmail gives users.email a binary collation on MySQL, whose
// default utf8mb4 collation would make both the unique index and lookups
// ignore case. PostgreSQL and SQLite already compare text exactly.
func CaseSensitiveEmail(db *gorm.DB, log *slog.Logger) error {
	if db.Dialector.Name() != config.DriverMySQL {
		return nil
	}

	if err := db.Exec("ALTER TABLE `users` MODIFY `email` varchar(120) CHARACTER SET utf8mb4 COLLATE utf8mb4_bin NOT NULL").Error; err != nil {
		return fmt.Errorf("failed to set email collation: %w", err)
	}

	log.Info("set binary collation", "table", "users", "column", "email")
	return nil
}
