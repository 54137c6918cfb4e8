package planet

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
	logger.Debug("Initializing planet repository")

	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) GetAll(ctx context.Context) ([]Planet, error) {
	logger := r.logger.With("component", "planet_repository", "operation", "get_all")
	logger.Debug("Retrieving all planets")

	var planets []Planet
	if err := r.db.WithContext(ctx).Order("id").Find(&planets).Error; err != nil {
		logger.Error("Failed to query planets", "error", err)
		return nil, errors.WrapInternal("failed to query planets", err)
	}

	logger.Debug("Planets retrieved", "count", len(planets))
	return planets, nil
}

func (r *Repository) GetByID(ctx context.Context, id int) (*Planet, error) {
	logger := r.logger.With("component", "planet_repository", "operation", "get_by_id", "planet_id", id)
	logger.Debug("Getting planet by ID")

	var planet Planet
	err := r.db.WithContext(ctx).First(&planet, id).Error
	if err != nil {
		if database.IsNotFound(err) {
			return nil, errors.NotFound("Planet not found")
		}
		logger.Error("Database error getting planet", "error", err)
		return nil, errors.WrapInternal("failed to get planet", err)
	}

	return &planet, nil
}

func (r *Repository) Create(ctx context.Context, planet *Planet) error {
	logger := r.logger.With("component", "planet_repository", "operation", "create", "name", planet.Name)
	logger.Debug("Creating planet")

	if err := r.db.WithContext(ctx).Create(planet).Error; err != nil {
		logger.Error("Failed to create planet", "error", err)
		return errors.WrapInternal("failed to create planet", err)
	}

	logger.Info("Planet created successfully", "planet_id", planet.ID)
	return nil
}

func (r *Repository) Delete(ctx context.Context, id int) error {
	logger := r.logger.With("component", "planet_repository", "operation", "delete", "planet_id", id)
	logger.Debug("Deleting planet")

	result := r.db.WithContext(ctx).Delete(&Planet{}, id)
	if result.Error != nil {
		logger.Error("Failed to delete planet", "error", result.Error)
		return errors.WrapInternal("failed to delete planet", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NotFound("Planet not found")
	}

	logger.Info("Planet deleted")
	return nil
}
