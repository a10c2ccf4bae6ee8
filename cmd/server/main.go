package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/yukikurage/todo-api/internal/config"
	"github.com/yukikurage/todo-api/internal/database"
	"github.com/yukikurage/todo-api/internal/logging"
)

// rootCmd runs the API server when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:           "todo-api",
	Short:         "Multi-user task tracking API",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// bootstrap loads configuration and opens the database shared by every command.
func bootstrap() (*config.Config, *slog.Logger, *gorm.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}

	gin.SetMode(cfg.GinMode)
	log := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)

	db, err := database.Connect(cfg, log)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return cfg, log, db, nil
}
