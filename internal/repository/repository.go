package repository

import (
	"context"
	"errors"

	"github.com/yukikurage/todo-api/internal/models"
)

var (
	// ErrNotFound is returned when a record does not exist or is not visible to the caller.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateEmail is returned when a user with the same email already exists.
	ErrDuplicateEmail = errors.New("email already exists")
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create inserts a new user. Fails with ErrDuplicateEmail on collision.
	Create(ctx context.Context, user *models.User) error

	// FindByID finds a user by ID
	FindByID(ctx context.Context, id uint64) (*models.User, error)

	// FindByEmail finds a user by exact email match
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// TaskRepository defines the interface for task data access.
// Every method is scoped by owner: a task owned by someone else is reported
// as ErrNotFound, exactly like a task that does not exist.
type TaskRepository interface {
	// Create creates a new task
	Create(ctx context.Context, task *models.Task) error

	// FindByOwner finds a task by ID among the owner's tasks
	FindByOwner(ctx context.Context, ownerID, taskID uint64) (*models.Task, error)

	// ListByOwner lists the owner's tasks in insertion order
	ListByOwner(ctx context.Context, ownerID uint64) ([]models.Task, error)

	// Search lists the owner's tasks whose description contains term, ignoring case
	Search(ctx context.Context, ownerID uint64, term string) ([]models.Task, error)

	// Update saves a task previously loaded with FindByOwner
	Update(ctx context.Context, task *models.Task) error

	// DeleteByOwner soft deletes a task owned by ownerID
	DeleteByOwner(ctx context.Context, ownerID, taskID uint64) error
}
