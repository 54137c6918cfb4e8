package person

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
	logger.Debug("Initializing person repository")

	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) GetAll(ctx context.Context) ([]Person, error) {
	logger := r.logger.With("component", "person_repository", "operation", "get_all")
	logger.Debug("Retrieving all people")

	var people []Person
	if err := r.db.WithContext(ctx).Preload("Homeworld").Order("id").Find(&people).Error; err != nil {
		logger.Error("Failed to query people", "error", err)
		return nil, errors.WrapInternal("failed to query people", err)
	}

	logger.Debug("People retrieved", "count", len(people))
	return people, nil
}

func (r *Repository) GetByID(ctx context.Context, id int) (*Person, error) {
	logger := r.logger.With("component", "person_repository", "operation", "get_by_id", "person_id", id)
	logger.Debug("Getting person by ID")

	var person Person
	err := r.db.WithContext(ctx).Preload("Homeworld").First(&person, id).Error
	if err != nil {
		if database.IsNotFound(err) {
			return nil, errors.NotFound("Person not found")
		}
		logger.Error("Database error getting person", "error", err)
		return nil, errors.WrapInternal("failed to get person", err)
	}

	return &person, nil
}

func (r *Repository) Create(ctx context.Context, person *Person) error {
	logger := r.logger.With("component", "person_repository", "operation", "create", "name", person.Name)
	logger.Debug("Creating person")

	if err := r.db.WithContext(ctx).Omit("Homeworld").Create(person).Error; err != nil {
		if database.IsForeignKeyViolation(err) {
			return errors.WrapValidation("homeworld not found", err)
		}
		logger.Error("Failed to create person", "error", err)
		return errors.WrapInternal("failed to create person", err)
	}

	logger.Info("Person created successfully", "person_id", person.ID)
	return nil
}

func (r *Repository) Delete(ctx context.Context, id int) error {
	logger := r.logger.With("component", "person_repository", "operation", "delete", "person_id", id)
	logger.Debug("Deleting person")

	result := r.db.WithContext(ctx).Delete(&Person{}, id)
	if result.Error != nil {
		logger.Error("Failed to delete person", "error", result.Error)
		return errors.WrapInternal("failed to delete person", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NotFound("Person not found")
	}

	logger.Info("Person deleted")
	return nil
}
