package server

import (
	"context"
	"log/slog"
	"net/http"

	"starwars-server/internal/auth"
	authHandlers "starwars-server/internal/auth/handlers"
	"starwars-server/internal/favorite"
	favoriteHandlers "starwars-server/internal/favorite/handlers"
	"starwars-server/internal/middleware"
	"starwars-server/internal/person"
	personHandlers "starwars-server/internal/person/handlers"
	"starwars-server/internal/planet"
	planetHandlers "starwars-server/internal/planet/handlers"
	serverHandlers "starwars-server/internal/server/handlers"
	"starwars-server/internal/shared/config"
	"starwars-server/internal/shared/database"
	"starwars-server/internal/user"
	userHandlers "starwars-server/internal/user/handlers"
)

type Routes struct {
	db              *database.DB
	config          *config.Config
	tokens          *auth.TokenManager
	authService     *auth.Service
	userService     *user.Service
	planetService   *planet.Service
	personService   *person.Service
	favoriteService *favorite.Service
	logger          *slog.Logger
}

func NewRoutes(
	db *database.DB,
	cfg *config.Config,
	tokens *auth.TokenManager,
	authService *auth.Service,
	userService *user.Service,
	planetService *planet.Service,
	personService *person.Service,
	favoriteService *favorite.Service,
	logger *slog.Logger,
) *Routes {
	return &Routes{
		db:              db,
		config:          cfg,
		tokens:          tokens,
		authService:     authService,
		userService:     userService,
		planetService:   planetService,
		personService:   personService,
		favoriteService: favoriteService,
		logger:          logger,
	}
}

func (r *Routes) Setup() *http.ServeMux {
	logger := r.logger.With("component", "routes", "operation", "setup")
	logger.Debug("Setting up application routes")

	mux := http.NewServeMux()
	requireAuth := middleware.JWTMiddleware(r.tokens)

	authHandler := authHandlers.NewAuthHandler(r.authService)
	usersHandler := userHandlers.NewUsersHandler(r.userService)
	planetHandler := planetHandlers.NewPlanetHandler(r.planetService)
	personHandler := personHandlers.NewPersonHandler(r.personService)
	favoriteHandler := favoriteHandlers.NewFavoriteHandler(r.favoriteService)

	var endpoints []serverHandlers.Endpoint
	handle := func(method, path string, h http.Handler, protected bool) {
		if protected {
			h = requireAuth(h)
		}
		mux.Handle(method+" "+path, h)
		endpoints = append(endpoints, serverHandlers.Endpoint{Method: method, Path: path, Protected: protected})
	}

	// Public endpoints
	handle(http.MethodGet, "/health", serverHandlers.NewHealthHandler(r.db), false)
	handle(http.MethodPost, "/register", http.HandlerFunc(authHandler.Register), false)
	handle(http.MethodPost, "/login", http.HandlerFunc(authHandler.Login), false)

	handle(http.MethodGet, "/people", http.HandlerFunc(personHandler.List), false)
	handle(http.MethodGet, "/people/{id}", http.HandlerFunc(personHandler.Get), false)
	handle(http.MethodPost, "/people", http.HandlerFunc(personHandler.Create), false)
	handle(http.MethodDelete, "/people/{id}", http.HandlerFunc(personHandler.Delete), false)

	handle(http.MethodGet, "/planets", http.HandlerFunc(planetHandler.List), false)
	handle(http.MethodGet, "/planets/{id}", http.HandlerFunc(planetHandler.Get), false)
	handle(http.MethodPost, "/planets", http.HandlerFunc(planetHandler.Create), false)
	handle(http.MethodDelete, "/planets/{id}", http.HandlerFunc(planetHandler.Delete), false)

	// Protected endpoints
	handle(http.MethodGet, "/users", usersHandler, true)
	handle(http.MethodGet, "/users/favorites", http.HandlerFunc(favoriteHandler.List), true)
	handle(http.MethodPost, "/favorite/planet/{id}", http.HandlerFunc(favoriteHandler.AddPlanet), true)
	handle(http.MethodPost, "/favorite/people/{id}", http.HandlerFunc(favoriteHandler.AddPeople), true)
	handle(http.MethodDelete, "/favorite/planet/{id}", http.HandlerFunc(favoriteHandler.RemovePlanet), true)
	handle(http.MethodDelete, "/favorite/people/{id}", http.HandlerFunc(favoriteHandler.RemovePeople), true)

	mux.Handle("GET /{$}", serverHandlers.NewSitemapHandler(endpoints))

	logger.Info("Routes configured successfully", "endpoint_count", len(endpoints))

	return mux
}

// Handler returns the routes wrapped in request logging, rate limiting and CORS.
// ctx bounds the rate limiter's background cleanup.
func (r *Routes) Handler(ctx context.Context) http.Handler {
	var handler http.Handler = r.Setup()

	handler = middleware.NewRateLimiter(ctx, r.config.RateLimit).Middleware(handler)
	handler = middleware.NewCORS(r.config.CORS).Middleware(handler)
	handler = middleware.RequestLogger(handler)

	return handler
}
