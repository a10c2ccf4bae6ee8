package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yukikurage/todo-api/internal/auth"
	"github.com/yukikurage/todo-api/internal/database"
	"github.com/yukikurage/todo-api/internal/logging"
	"github.com/yukikurage/todo-api/internal/repository"
)

type serviceTestEnv struct {
	db          *gorm.DB
	tokens      *auth.TokenManager
	authService *AuthService
	taskService *TaskService
}

func setupServiceTestEnv(t *testing.T) serviceTestEnv {
	t.Helper()

	db, err := database.Open(sqlite.Open(":memory:"), "silent")
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	require.NoError(t, database.Migrate(db, logging.Discard()))

	tokens := auth.NewTokenManager("test-secret", time.Hour)

	return serviceTestEnv{
		db:          db,
		tokens:      tokens,
		authService: NewAuthService(repository.NewUserRepository(db), auth.NewBcryptHasher(bcrypt.MinCost), tokens),
		taskService: NewTaskService(repository.NewTaskRepository(db)),
	}
}
