package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/yukikurage/todo-api/internal/constants"
	"github.com/yukikurage/todo-api/internal/models"
	"github.com/yukikurage/todo-api/internal/repository"
)

// TaskService handles task business logic. ownerID is always the verified
// caller; it is never taken from request input.
type TaskService struct {
	taskRepo repository.TaskRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
	}
}

// UpdateTaskInput represents input for updating a task. Nil fields are left unchanged.
type UpdateTaskInput struct {
	Description *string
	Completed   *bool
}

// CreateTask creates a new, incomplete task for ownerID
func (s *TaskService) CreateTask(ctx context.Context, ownerID uint64, description string) (*models.Task, error) {
	if err := validateDescription(description); err != nil {
		return nil, err
	}

	task := &models.Task{
		Description: description,
		Completed:   false,
		OwnerID:     ownerID,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// ListTasks returns every task owned by ownerID in insertion order
func (s *TaskService) ListTasks(ctx context.Context, ownerID uint64) ([]models.Task, error) {
	tasks, err := s.taskRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// UpdateTask changes the provided fields of a task owned by ownerID
func (s *TaskService) UpdateTask(ctx context.Context, ownerID, taskID uint64, input UpdateTaskInput) (*models.Task, error) {
	if input.Description != nil {
		if err := validateDescription(*input.Description); err != nil {
			return nil, err
		}
	}

	task, err := s.findOwned(ctx, ownerID, taskID)
	if err != nil {
		return nil, err
	}

	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.Completed != nil {
		task.Completed = *input.Completed
	}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return task, nil
}

// DeleteTask deletes a task owned by ownerID
func (s *TaskService) DeleteTask(ctx context.Context, ownerID, taskID uint64) error {
	if err := s.taskRepo.DeleteByOwner(ctx, ownerID, taskID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

// SearchTasks returns the owner's tasks whose description contains term, ignoring case
func (s *TaskService) SearchTasks(ctx context.Context, ownerID uint64, term string) ([]models.Task, error) {
	if strings.TrimSpace(term) == "" {
		return nil, ErrSearchTermRequired
	}

	tasks, err := s.taskRepo.Search(ctx, ownerID, term)
	if err != nil {
		return nil, fmt.Errorf("failed to search tasks: %w", err)
	}
	return tasks, nil
}

// findOwned loads a task, reporting foreign and missing tasks alike as ErrTaskNotFound
func (s *TaskService) findOwned(ctx context.Context, ownerID, taskID uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindByOwner(ctx, ownerID, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return task, nil
}

func validateDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return ErrDescriptionRequired
	}
	if utf8.RuneCountInString(description) > constants.MaxDescriptionLength {
		return ErrDescriptionTooLong
	}
	return nil
}
