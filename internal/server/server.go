package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yukikurage/todo-api/internal/auth"
	"github.com/yukikurage/todo-api/internal/config"
	"github.com/yukikurage/todo-api/internal/handlers"
	"github.com/yukikurage/todo-api/internal/middleware"
	"github.com/yukikurage/todo-api/internal/repository"
	"github.com/yukikurage/todo-api/internal/services"
)

// Server wraps the HTTP server and router.
type Server struct {
	httpServer *http.Server
	log        *slog.Logger
}

// New wires repositories, services and handlers on top of db.
func New(cfg *config.Config, db *gorm.DB, log *slog.Logger) *Server {
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTL)
	hasher := auth.NewBcryptHasher(cfg.BcryptCost)

	router := NewRouter(db, tokens, hasher, cfg.CORSAllowedOrigins, log)

	httpServer := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return &Server{
		httpServer: httpServer,
		log:        log,
	}
}

// NewRouter builds the gin engine with every route of the API.
func NewRouter(db *gorm.DB, tokens *auth.TokenManager, hasher auth.PasswordHasher, allowedOrigins []string, log *slog.Logger) *gin.Engine {
	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	authService := services.NewAuthService(userRepo, hasher, tokens)
	taskService := services.NewTaskService(taskRepo)

	authHandler := handlers.NewAuthHandler(authService, log)
	taskHandler := handlers.NewTaskHandler(taskService, log)
	healthHandler := handlers.NewHealthHandler(db, log)

	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestLogger(log),
		middleware.CORS(allowedOrigins),
	)

	// Health check endpoints
	r.GET("/", healthHandler.Check)
	r.GET("/health", healthHandler.Check)

	// Auth routes (public)
	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)
	r.GET("/me", middleware.RequireAuth(tokens), authHandler.GetCurrentUser)

	// Task routes (protected)
	tasks := r.Group("/tasks")
	tasks.Use(middleware.RequireAuth(tokens))
	{
		tasks.POST("", taskHandler.CreateTask)
		tasks.GET("", taskHandler.ListTasks)
		tasks.GET("/search", taskHandler.SearchTasks)
		tasks.PUT("/:id", taskHandler.UpdateTask)
		tasks.DELETE("/:id", taskHandler.DeleteTask)
	}

	return r
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Run serves until ctx is cancelled, then shuts down gracefully within timeout.
func (s *Server) Run(ctx context.Context, timeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server starting", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.log.Info("server shutting down", "timeout", timeout)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return <-errCh
}
