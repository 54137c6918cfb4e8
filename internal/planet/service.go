package planet

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
	logger.Debug("Initializing planet service")

	return &Service{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

func (s *Service) GetAll(ctx context.Context) ([]Planet, error) {
	var planets []Planet
	if s.cache.GetJSON(ctx, cache.KeyPlanets, &planets) {
		return planets, nil
	}

	planets, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if planets == nil {
		planets = []Planet{}
	}

	s.cache.SetJSON(ctx, cache.KeyPlanets, planets)
	return planets, nil
}

func (s *Service) GetByID(ctx context.Context, id int) (*Planet, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (*Planet, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, errors.Validation("name is required")
	}

	planet := req.toPlanet()
	if err := s.repo.Create(ctx, planet); err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, cache.KeyPlanets)
	return planet, nil
}

// Delete removes a planet. Residents keep existing with no homeworld, so the
// people listing is invalidated along with the planets listing.
func (s *Service) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.cache.Invalidate(ctx, cache.KeyPlanets, cache.KeyPeople)
	s.logger.Info("Planet removed", "component", "planet_service", "planet_id", id)
	return nil
}
