package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yukikurage/todo-api/internal/constants"
	"github.com/yukikurage/todo-api/internal/dto"
	apierrors "github.com/yukikurage/todo-api/internal/errors"
	"github.com/yukikurage/todo-api/internal/middleware"
	"github.com/yukikurage/todo-api/internal/services"
)

// TaskHandler serves the caller's own tasks. The owner is always the user id
// set by middleware.RequireAuth.
type TaskHandler struct {
	taskService *services.TaskService
	log         *slog.Logger
}

func NewTaskHandler(taskService *services.TaskService, log *slog.Logger) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		log:         log,
	}
}

// CreateTask adds an incomplete task
func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), userID, req.Task)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.TaskResponse{
		Message: "Task created",
		Task:    dto.ToTaskDTO(*task),
	})
}

// ListTasks returns every task of the current user
func (h *TaskHandler) ListTasks(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	tasks, err := h.taskService.ListTasks(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskListResponse(tasks))
}

// UpdateTask changes the description and/or completion flag
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	taskID, ok := parseTaskID(c)
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), userID, taskID, services.UpdateTaskInput{
		Description: req.Task,
		Completed:   req.Completed,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TaskResponse{
		Message: "Task updated",
		Task:    dto.ToTaskDTO(*task),
	})
}

// DeleteTask removes a task
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	taskID, ok := parseTaskID(c)
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), userID, taskID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Task deleted"})
}

// SearchTasks returns the current user's tasks whose description contains ?q=
func (h *TaskHandler) SearchTasks(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	term, present := c.GetQuery(constants.SearchQueryParam)
	if !present {
		apierrors.BadRequest(c, "Search query is required")
		return
	}

	tasks, err := h.taskService.SearchTasks(c.Request.Context(), userID, term)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskListResponse(tasks))
}

func parseTaskID(c *gin.Context) (uint64, bool) {
	taskID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || taskID == 0 {
		apierrors.BadRequest(c, "Invalid task ID")
		return 0, false
	}
	return taskID, true
}

func (h *TaskHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidArgument):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrTaskNotFound):
		apierrors.NotFound(c, "Task not found")
	default:
		internalError(c, h.log, err)
	}
}
