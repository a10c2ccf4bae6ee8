package repository

import (
	"context"

	"github.com/yukikurage/todo-api/internal/database"
	"github.com/yukikurage/todo-api/internal/models"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task
func (r *GormTaskRepository) Create(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

// FindByOwner finds a task by ID among the owner's tasks
func (r *GormTaskRepository) FindByOwner(ctx context.Context, ownerID, taskID uint64) (*models.Task, error) {
	var task models.Task
	if err := r.db.WithContext(ctx).
		Scopes(database.OwnedBy(ownerID)).
		First(&task, taskID).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &task, nil
}

// ListByOwner lists the owner's tasks in insertion order
func (r *GormTaskRepository) ListByOwner(ctx context.Context, ownerID uint64) ([]models.Task, error) {
	tasks := []models.Task{}
	if err := r.db.WithContext(ctx).
		Scopes(database.OwnedBy(ownerID)).
		Order("id ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// Search lists the owner's tasks whose description contains term, ignoring case
func (r *GormTaskRepository) Search(ctx context.Context, ownerID uint64, term string) ([]models.Task, error) {
	tasks := []models.Task{}
	if err := r.db.WithContext(ctx).
		Scopes(database.OwnedBy(ownerID), database.DescriptionContains(term)).
		Order("id ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// Update updates a task. The owner column is never written and the
// statement is still filtered by owner.
func (r *GormTaskRepository) Update(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).
		Model(task).
		Scopes(database.OwnedBy(task.OwnerID)).
		Select("description", "completed", "updated_at").
		Updates(task).Error
}

// DeleteByOwner soft deletes a task in a single owner-scoped statement
func (r *GormTaskRepository) DeleteByOwner(ctx context.Context, ownerID, taskID uint64) error {
	result := r.db.WithContext(ctx).
		Scopes(database.OwnedBy(ownerID)).
		Delete(&models.Task{}, taskID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
