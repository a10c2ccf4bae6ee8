package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yukikurage/todo-api/internal/database"
	apierrors "github.com/yukikurage/todo-api/internal/errors"
	"github.com/yukikurage/todo-api/internal/middleware"
)

const healthCheckTimeout = 2 * time.Second

// HealthHandler reports whether the API can reach its database.
type HealthHandler struct {
	db  *gorm.DB
	log *slog.Logger
}

func NewHealthHandler(db *gorm.DB, log *slog.Logger) *HealthHandler {
	return &HealthHandler{db: db, log: log}
}

// Check pings the database
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	if err := database.Ping(ctx, h.db); err != nil {
		h.log.WarnContext(ctx, "health check failed",
			"request_id", middleware.GetRequestID(c),
			"error", err,
		)
		apierrors.ServiceUnavailable(c, "Database unavailable")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"database": "connected",
	})
}
