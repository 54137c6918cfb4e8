package database

import (
	"context"
	"fmt"
	"log/slog"

	"starwars-server/internal/shared/config"
	applogger "starwars-server/internal/shared/logger"

	"github.com/glebarez/sqlite"
	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type DB struct {
	*gorm.DB
	Driver string
}

// Connect opens PostgreSQL when cfg.URL is set and falls back to the local SQLite file otherwise.
func Connect(cfg config.DatabaseConfig) (*DB, error) {
	logger := slog.With("component", "database", "operation", "connect")
	logger.Debug("Initializing database connection")

	if cfg.URL == "" {
		logger.Info("DATABASE_URL not set, using local SQLite database", "path", cfg.SQLitePath)
		return OpenSQLite(cfg.SQLitePath)
	}

	logger.Info("Connecting to PostgreSQL",
		"max_open_conns", cfg.MaxOpenConns,
		"max_idle_conns", cfg.MaxIdleConns,
	)

	dialector := postgres.New(postgres.Config{
		DriverName: "postgres",
		DSN:        cfg.URL,
	})

	db, err := open(dialector, DriverPostgres)
	if err != nil {
		logger.Error("Failed to open database connection", "error", err)
		return nil, err
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access connection pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	logger.Info("Database connection established successfully", "driver", DriverPostgres)
	return db, nil
}

// OpenSQLite opens a SQLite database with foreign keys enforced.
// path may be a file path or "file::memory:".
func OpenSQLite(path string) (*DB, error) {
	dsn := path + "?_pragma=foreign_keys(1)"

	db, err := open(sqlite.Open(dsn), DriverSQLite)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access connection pool: %w", err)
	}
	// SQLite serializes writers; a single connection also keeps in-memory databases alive.
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

func open(dialector gorm.Dialector, driver string) (*DB, error) {
	logger := slog.With("component", "database", "operation", "open", "driver", driver)

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		Logger:         applogger.GORM(),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db := &DB{DB: gormDB, Driver: driver}

	logger.Debug("Testing database connection with ping")
	if err := db.Ping(context.Background()); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			logger.Error("Failed to close database after ping failure", "close_error", closeErr, "ping_error", err)
		}
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

func (db *DB) Ping(ctx context.Context) error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
