package server

import (
	"log/slog"

	"starwars-server/internal/auth"
	"starwars-server/internal/favorite"
	"starwars-server/internal/person"
	"starwars-server/internal/planet"
	"starwars-server/internal/shared/cache"
	"starwars-server/internal/shared/config"
	"starwars-server/internal/shared/database"
	"starwars-server/internal/shared/redis"
	"starwars-server/internal/user"
)

// Models lists every persisted model, for migrations.
func Models() []interface{} {
	return []interface{}{
		&planet.Planet{},
		&person.Person{},
		&user.User{},
		&favorite.Favorite{},
	}
}

// Wire builds repositories and services on top of db and returns the routes
// serving them. redisClient may be nil, which disables the catalog cache.
func Wire(db *database.DB, cfg *config.Config, redisClient *redis.Client, logger *slog.Logger) *Routes {
	catalogCache := cache.New(redisClient, cfg.Redis.CacheTTL, logger)
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenExpiration)

	userService := user.NewService(user.NewRepository(db, logger), logger)
	planetService := planet.NewService(planet.NewRepository(db, logger), catalogCache, logger)
	personService := person.NewService(person.NewRepository(db, logger), catalogCache, logger)
	favoriteService := favorite.NewService(favorite.NewRepository(db, logger), planetService, personService, logger)
	authService := auth.NewService(userService, tokens, cfg.Auth.BcryptCost, logger)

	logger.Debug("Services initialized", "catalog_cache", catalogCache.Enabled())

	return NewRoutes(db, cfg, tokens, authService, userService, planetService, personService, favoriteService, logger)
}
