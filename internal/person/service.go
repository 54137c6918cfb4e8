package person

import (
	"context"
	"log/slog"
	"strings"

	"starwars-server/internal/shared/cache"
	"starwars-server/internal/shared/errors"
)

type Service struct {
	repo   *Repository
	cache  *cache.Cache
	logger *slog.Logger
}

func NewService(repo *Repository, cache *cache.Cache, logger *slog.Logger) *Service {
	logger.Debug("Initializing person service")

	return &Service{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

func (s *Service) GetAll(ctx context.Context) ([]Response, error) {
	var people []Response
	if s.cache.GetJSON(ctx, cache.KeyPeople, &people) {
		return people, nil
	}

	records, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	people = make([]Response, 0, len(records))
	for i := range records {
		people = append(people, records[i].ToResponse())
	}

	s.cache.SetJSON(ctx, cache.KeyPeople, people)
	return people, nil
}

func (s *Service) GetByID(ctx context.Context, id int) (*Person, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (*Person, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, errors.Validation("name is required")
	}

	person := req.toPerson()
	if err := s.repo.Create(ctx, person); err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, cache.KeyPeople)
	return person, nil
}

func (s *Service) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.cache.Invalidate(ctx, cache.KeyPeople)
	s.logger.Info("Person removed", "component", "person_service", "person_id", id)
	return nil
}
