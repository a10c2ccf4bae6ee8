package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/yukikurage/todo-api/internal/database"
	"github.com/yukikurage/todo-api/internal/server"
)

var skipMigrate bool

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the HTTP API server",
	Long: `Starts the HTTP API server. Usage:

	todo-api serve [--skip-migrate]
`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	rootCmd.PersistentFlags().BoolVar(&skipMigrate, "skip-migrate", false, "do not apply schema migrations on startup")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, log, db, err := bootstrap()
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Warn("failed to close database", "error", err)
		}
	}()

	if !skipMigrate {
		if err := database.Migrate(db, log); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, db, log)
	if err := srv.Run(ctx, cfg.ShutdownTimeout); err != nil {
		return err
	}

	log.Info("server stopped")
	return nil
}
