package main

import (
	"github.com/spf13/cobra"

	"github.com/yukikurage/todo-api/internal/database"
)

// migrateCmd applies the schema and indexes, then exits.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, log, db, err := bootstrap()
		if err != nil {
			return err
		}
		defer database.Close(db)

		return database.Migrate(db, log)
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
