package favorite

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"starwars-server/internal/person"
	"starwars-server/internal/planet"
	"starwars-server/internal/shared/cache"
	"starwars-server/internal/shared/database/databasetest"
	"starwars-server/internal/shared/errors"
	"starwars-server/internal/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	favorites *Service
	planets   *planet.Service
	people    *person.Service
	userID    int
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	db := databasetest.New(t, &planet.Planet{}, &person.Person{}, &user.User{}, &Favorite{})
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	noCache := cache.New(nil, 0, logger)

	planets := planet.NewService(planet.NewRepository(db, logger), noCache, logger)
	people := person.NewService(person.NewRepository(db, logger), noCache, logger)
	users := user.NewService(user.NewRepository(db, logger), logger)

	u := &user.User{Names: "Leia", LastName: "Organa", Age: 19, Email: "leia@rebels.org", Password: "hash"}
	require.NoError(t, users.Create(context.Background(), u))

	return fixture{
		favorites: NewService(NewRepository(db, logger), planets, people, logger),
		planets:   planets,
		people:    people,
		userID:    u.ID,
	}
}

func TestAddAndListFavorites(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	hoth, err := f.planets.Create(ctx, planet.CreateRequest{Name: "Hoth", Climate: "frozen"})
	require.NoError(t, err)
	chewie, err := f.people.Create(ctx, person.CreateRequest{Name: "Chewbacca", HomeworldID: nil})
	require.NoError(t, err)

	require.NoError(t, f.favorites.Add(ctx, f.userID, KindPlanet, hoth.ID))
	require.NoError(t, f.favorites.Add(ctx, f.userID, KindPeople, chewie.ID))

	list, err := f.favorites.List(ctx, f.userID)
	require.NoError(t, err)
	require.Len(t, list.Planets, 1)
	require.Len(t, list.People, 1)
	assert.Equal(t, "Hoth", list.Planets[0].Name)
	assert.Equal(t, "frozen", list.Planets[0].Climate)
	assert.Equal(t, "Chewbacca", list.People[0].Name)
	assert.Nil(t, list.People[0].Homeworld)
}

func TestListIsEmptyForNewUser(t *testing.T) {
	f := newFixture(t)

	list, err := f.favorites.List(context.Background(), f.userID)
	require.NoError(t, err)
	assert.NotNil(t, list.Planets)
	assert.NotNil(t, list.People)
	assert.Empty(t, list.Planets)
	assert.Empty(t, list.People)
}

func TestAddDuplicateConflicts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	naboo, err := f.planets.Create(ctx, planet.CreateRequest{Name: "Naboo"})
	require.NoError(t, err)

	require.NoError(t, f.favorites.Add(ctx, f.userID, KindPlanet, naboo.ID))
	err = f.favorites.Add(ctx, f.userID, KindPlanet, naboo.ID)
	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeConflict, errors.GetType(err))
	assert.Equal(t, "Planet already in favorites", errors.ClientMessage(err))
}

func TestAddUnknownTargetIsNotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	err := f.favorites.Add(ctx, f.userID, KindPlanet, 42)
	assert.Equal(t, errors.ErrorTypeNotFound, errors.GetType(err))

	err = f.favorites.Add(ctx, f.userID, KindPeople, 42)
	assert.Equal(t, errors.ErrorTypeNotFound, errors.GetType(err))
}

func TestRemoveFavorite(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	err := f.favorites.Remove(ctx, f.userID, KindPlanet, 1)
	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeNotFound, errors.GetType(err))
	assert.Equal(t, "Favorite planet not found", errors.ClientMessage(err))

	yoda, err := f.people.Create(ctx, person.CreateRequest{Name: "Yoda"})
	require.NoError(t, err)
	require.NoError(t, f.favorites.Add(ctx, f.userID, KindPeople, yoda.ID))

	// A planet favorite with the same id is a different favorite.
	err = f.favorites.Remove(ctx, f.userID, KindPlanet, yoda.ID)
	assert.Equal(t, errors.ErrorTypeNotFound, errors.GetType(err))

	require.NoError(t, f.favorites.Remove(ctx, f.userID, KindPeople, yoda.ID))

	list, err := f.favorites.List(ctx, f.userID)
	require.NoError(t, err)
	assert.Empty(t, list.People)
}

func TestDeletedTargetsAreSkipped(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	alderaan, err := f.planets.Create(ctx, planet.CreateRequest{Name: "Alderaan"})
	require.NoError(t, err)
	require.NoError(t, f.favorites.Add(ctx, f.userID, KindPlanet, alderaan.ID))

	require.NoError(t, f.planets.Delete(ctx, alderaan.ID))

	list, err := f.favorites.List(ctx, f.userID)
	require.NoError(t, err)
	assert.Empty(t, list.Planets)
}

func TestFavoritesArePerUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	endor, err := f.planets.Create(ctx, planet.CreateRequest{Name: "Endor"})
	require.NoError(t, err)
	require.NoError(t, f.favorites.Add(ctx, f.userID, KindPlanet, endor.ID))

	list, err := f.favorites.List(ctx, f.userID+1)
	require.NoError(t, err)
	assert.Empty(t, list.Planets)
}

func TestInsertAfterTargetDeletedIsNotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// A planet deleted between the existence check and the insert.
	gone := 404
	err := f.favorites.repo.Create(ctx, &Favorite{UserID: f.userID, PlanetID: &gone})
	require.Error(t, err)

	err = f.favorites.createError(ctx, KindPlanet, gone, err)
	assert.Equal(t, errors.ErrorTypeNotFound, errors.GetType(err))
	assert.Equal(t, "Planet not found", errors.ClientMessage(err))
}

func TestAddForDeletedUserIsUnauthorized(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	endor, err := f.planets.Create(ctx, planet.CreateRequest{Name: "Endor"})
	require.NoError(t, err)

	err = f.favorites.Add(ctx, f.userID+100, KindPlanet, endor.ID)
	assert.Equal(t, errors.ErrorTypeUnauthorized, errors.GetType(err))
	assert.Equal(t, "user no longer exists", errors.ClientMessage(err))
}
