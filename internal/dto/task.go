package dto

import (
	"github.com/yukikurage/todo-api/internal/models"
)

// TaskDTO represents a task in API responses
type TaskDTO struct {
	ID        uint64 `json:"id"`
	Task      string `json:"task"`
	Completed bool   `json:"completed"`
}

// CreateTaskRequest is the body of POST /tasks
type CreateTaskRequest struct {
	Task string `json:"task" binding:"required"`
}

// UpdateTaskRequest is the body of PUT /tasks/:id. Absent fields are left unchanged.
type UpdateTaskRequest struct {
	Task      *string `json:"task"`
	Completed *bool   `json:"completed"`
}

// TaskResponse wraps a single task with a status message
type TaskResponse struct {
	Message string  `json:"message"`
	Task    TaskDTO `json:"task"`
}

// TaskListResponse represents a list of tasks
type TaskListResponse struct {
	Tasks []TaskDTO `json:"tasks"`
}

// Conversion functions

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	return TaskDTO{
		ID:        task.ID,
		Task:      task.Description,
		Completed: task.Completed,
	}
}

// ToTaskListResponse converts a slice of tasks to TaskListResponse.
// An empty slice encodes as [] rather than null.
func ToTaskListResponse(tasks []models.Task) TaskListResponse {
	items := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		items[i] = ToTaskDTO(task)
	}
	return TaskListResponse{Tasks: items}
}
