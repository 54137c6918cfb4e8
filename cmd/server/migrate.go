package main

import (
	"fmt"

	"starwars-server/internal/server"
	"starwars-server/internal/shared/config"
	"starwars-server/internal/shared/database"

	"github.com/spf13/cobra"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := database.Connect(config.GlobalConfig.Database)
			if err != nil {
				return fmt.Errorf("connecting to database: %w", err)
			}
			defer db.Close()

			if err := db.RunMigrations(server.Models()...); err != nil {
				return fmt.Errorf("running migrations: %w", err)
			}
			return nil
		},
	}
}
