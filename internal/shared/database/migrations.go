package database

import (
	"fmt"
	"log/slog"
)

// RunMigrations brings the schema in line with the given models.
// Tables, foreign keys and unique indexes come from the models' gorm tags;
// GORM orders the models so referenced tables are created first.
func (db *DB) RunMigrations(models ...interface{}) error {
	logger := slog.With("component", "migrations", "driver", db.Driver)

	names := make([]string, 0, len(models))
	for _, model := range models {
		names = append(names, fmt.Sprintf("%T", model))
	}
	logger.Info("Starting database migrations", "models", names)

	if err := db.AutoMigrate(models...); err != nil {
		logger.Error("Failed to run migrations", "error", err)
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("All migrations completed successfully")
	return nil
}
