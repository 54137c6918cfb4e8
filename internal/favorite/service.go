package favorite

import (
	"context"
	"log/slog"

	"starwars-server/internal/person"
	"starwars-server/internal/planet"
	"starwars-server/internal/shared/database"
	"starwars-server/internal/shared/errors"
)

type Service struct {
	repo    *Repository
	planets *planet.Service
	people  *person.Service
	logger  *slog.Logger
}

func NewService(repo *Repository, planets *planet.Service, people *person.Service, logger *slog.Logger) *Service {
	logger.Debug("Initializing favorite service")

	return &Service{
		repo:    repo,
		planets: planets,
		people:  people,
		logger:  logger,
	}
}

// Add marks the planet or person as a favorite of the user. The target must exist.
func (s *Service) Add(ctx context.Context, userID int, kind Kind, targetID int) error {
	logger := s.logger.With("component", "favorite_service", "operation", "add", "user_id", userID, "kind", kind, "target_id", targetID)

	if err := s.checkTarget(ctx, kind, targetID); err != nil {
		return err
	}

	favorite := &Favorite{UserID: userID}
	if kind == KindPlanet {
		favorite.PlanetID = &targetID
	} else {
		favorite.PeopleID = &targetID
	}

	if err := s.repo.Create(ctx, favorite); err != nil {
		return s.createError(ctx, kind, targetID, err)
	}

	logger.Info("Favorite added")
	return nil
}

// checkTarget returns a not-found error unless the planet or person exists.
func (s *Service) checkTarget(ctx context.Context, kind Kind, targetID int) error {
	switch kind {
	case KindPlanet:
		_, err := s.planets.GetByID(ctx, targetID)
		return err
	case KindPeople:
		_, err := s.people.GetByID(ctx, targetID)
		return err
	default:
		return errors.Validationf("unknown favorite kind %q", kind)
	}
}

// createError maps a failed insert to a client error. A foreign key failure
// means either the target was deleted after checkTarget or the user was.
func (s *Service) createError(ctx context.Context, kind Kind, targetID int, err error) error {
	if errors.GetType(err) == errors.ErrorTypeConflict {
		return errors.WrapConflict(conflictMessage(kind), err)
	}
	if !database.IsForeignKeyViolation(err) {
		return err
	}
	if targetErr := s.checkTarget(ctx, kind, targetID); targetErr != nil {
		return targetErr
	}
	return errors.WrapUnauthorized("user no longer exists", err)
}

func (s *Service) Remove(ctx context.Context, userID int, kind Kind, targetID int) error {
	removed, err := s.repo.Delete(ctx, userID, kind, targetID)
	if err != nil {
		return err
	}
	if !removed {
		return errors.NotFoundf("Favorite %s not found", kind)
	}

	s.logger.Info("Favorite removed", "component", "favorite_service", "user_id", userID, "kind", kind, "target_id", targetID)
	return nil
}

// List returns the user's favorite planets and people. Favorites whose
// target no longer exists are left out.
func (s *Service) List(ctx context.Context, userID int) (*ListResponse, error) {
	favorites, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := &ListResponse{
		Planets: []planet.Planet{},
		People:  []person.Response{},
	}
	for _, f := range favorites {
		if f.Planet != nil {
			resp.Planets = append(resp.Planets, *f.Planet)
		}
		if f.Person != nil {
			resp.People = append(resp.People, f.Person.ToResponse())
		}
	}

	return resp, nil
}

func conflictMessage(kind Kind) string {
	if kind == KindPlanet {
		return "Planet already in favorites"
	}
	return "People already in favorites"
}
