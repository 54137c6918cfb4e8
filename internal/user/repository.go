package user

import (
	"context"
	"log/slog"

	"starwars-server/internal/shared/database"
	"starwars-server/internal/shared/errors"
)

type Repository struct {
	db     *database.DB
	logger *slog.Logger
}

func NewRepository(db *database.DB, logger *slog.Logger) *Repository {
	logger.Debug("Initializing user repository")

	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) GetAll(ctx context.Context) ([]User, error) {
	logger := r.logger.With("component", "user_repository", "operation", "get_all")
	logger.Debug("Retrieving all users")

	var users []User
	if err := r.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		logger.Error("Failed to query users", "error", err)
		return nil, errors.WrapInternal("failed to query users", err)
	}

	logger.Debug("Users retrieved successfully", "count", len(users))
	return users, nil
}

// FindByEmail returns nil, nil when no user has the email.
func (r *Repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	logger := r.logger.With("component", "user_repository", "operation", "find_by_email", "email", email)
	logger.Debug("Finding user by email")

	var user User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if database.IsNotFound(err) {
			logger.Debug("No user found with email")
			return nil, nil
		}
		logger.Error("Database error finding user by email", "error", err)
		return nil, errors.WrapInternal("database error", err)
	}

	return &user, nil
}

func (r *Repository) Create(ctx context.Context, user *User) error {
	logger := r.logger.With("component", "user_repository", "operation", "create", "email", user.Email)
	logger.Info("Creating new user")

	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return errors.WrapConflict("Email already in use", err)
		}
		logger.Error("Failed to create user", "error", err)
		return errors.WrapInternal("failed to create user", err)
	}

	logger.Info("User created successfully", "user_id", user.ID)
	return nil
}
