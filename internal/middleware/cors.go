package middleware

import (
	"log/slog"
	"net/http"

	"starwars-server/internal/shared/config"

	"github.com/rs/cors"
)

type CORSMiddleware struct {
	*cors.Cors
}

var corsAllowedMethods = []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions}

func NewCORS(cfg config.CORSConfig) *CORSMiddleware {
	logger := slog.With("component", "cors", "operation", "setup")
	logger.Debug("Setting up CORS middleware")

	corsConfig := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: corsAllowedMethods,
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		ExposedHeaders: []string{RequestIDHeader},
		Debug:          cfg.Debug,
	})

	logger.Info("CORS middleware configured",
		"allowed_origins", cfg.AllowedOrigins,
		"allowed_methods", corsAllowedMethods,
		"debug_mode", cfg.Debug,
	)

	return &CORSMiddleware{corsConfig}
}

func (c *CORSMiddleware) Middleware(h http.Handler) http.Handler {
	return c.Cors.Handler(h)
}
