package favorite

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
	logger.Debug("Initializing favorite repository")

	return &Repository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a favorite. A second favorite for the same target is a conflict.
func (r *Repository) Create(ctx context.Context, favorite *Favorite) error {
	logger := r.logger.With("component", "favorite_repository", "operation", "create", "user_id", favorite.UserID)
	logger.Debug("Creating favorite")

	err := r.db.WithContext(ctx).Omit("User", "Person", "Planet").Create(favorite).Error
	if err != nil {
		if database.IsUniqueViolation(err) {
			return errors.WrapConflict("Favorite already exists", err)
		}
		if database.IsForeignKeyViolation(err) {
			// The service decides which side of the reference went missing.
			logger.Debug("Favorite references a missing row", "error", err)
			return errors.WrapInternal("favorite references a missing row", err)
		}
		logger.Error("Failed to create favorite", "error", err)
		return errors.WrapInternal("failed to create favorite", err)
	}

	logger.Info("Favorite created", "favorite_id", favorite.ID)
	return nil
}

// Delete removes the user's favorite for the target and reports whether one existed.
func (r *Repository) Delete(ctx context.Context, userID int, kind Kind, targetID int) (bool, error) {
	logger := r.logger.With(
		"component", "favorite_repository",
		"operation", "delete",
		"user_id", userID,
		"kind", kind,
		"target_id", targetID,
	)
	logger.Debug("Deleting favorite")

	result := r.db.WithContext(ctx).
		Where("user_id = ? AND "+kind.column()+" = ?", userID, targetID).
		Delete(&Favorite{})
	if result.Error != nil {
		logger.Error("Failed to delete favorite", "error", result.Error)
		return false, errors.WrapInternal("failed to delete favorite", result.Error)
	}

	return result.RowsAffected > 0, nil
}

func (r *Repository) GetByUserID(ctx context.Context, userID int) ([]Favorite, error) {
	logger := r.logger.With("component", "favorite_repository", "operation", "get_by_user", "user_id", userID)
	logger.Debug("Retrieving favorites")

	var favorites []Favorite
	err := r.db.WithContext(ctx).
		Preload("Planet").
		Preload("Person.Homeworld").
		Where("user_id = ?", userID).
		Order("id").
		Find(&favorites).Error
	if err != nil {
		logger.Error("Failed to query favorites", "error", err)
		return nil, errors.WrapInternal("failed to query favorites", err)
	}

	logger.Debug("Favorites retrieved", "count", len(favorites))
	return favorites, nil
}
