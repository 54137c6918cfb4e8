package main

import (
	"fmt"
	"log/slog"

	"starwars-server/internal/server"
	"starwars-server/internal/shared/config"
	"starwars-server/internal/shared/database"
	"starwars-server/internal/shared/redis"

	"github.com/spf13/cobra"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "serve",
		Short:   "Run migrations and start the HTTP server",
		Example: `  starwars-server serve`,
		Args:    cobra.NoArgs,
		RunE:    runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg := config.GlobalConfig
	logger := slog.With("component", "main")

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer db.Close()

	if err := db.RunMigrations(server.Models()...); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	redisClient, err := redis.Connect(cfg.Redis)
	if err != nil {
		return fmt.Errorf("connecting to redis: %w", err)
	}
	defer redisClient.Close()

	routes := server.Wire(db, cfg, redisClient, slog.Default())

	logger.Info("Starting server",
		"port", cfg.Server.Port,
		"environment", cfg.Server.Environment,
		"database", db.Driver,
		"cors_origins", cfg.CORS.AllowedOrigins)

	return server.New(cfg, routes.Handler(ctx)).Run(ctx)
}
