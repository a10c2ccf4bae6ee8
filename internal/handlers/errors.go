package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	apierrors "github.com/yukikurage/todo-api/internal/errors"
	"github.com/yukikurage/todo-api/internal/middleware"
)

// internalError logs the cause and answers with a generic 500.
func internalError(c *gin.Context, log *slog.Logger, err error) {
	log.ErrorContext(c.Request.Context(), "request failed",
		"request_id", middleware.GetRequestID(c),
		"method", c.Request.Method,
		"path", c.FullPath(),
		"error", err,
	)
	apierrors.InternalError(c, "")
}
