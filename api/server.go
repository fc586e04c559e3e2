// ABOUTME: Huma API server configuration and setup
// ABOUTME: Mounts CORS, request logging and rate limiting on a chi router

package api

import (
	"net/http"

	"anifinder-api/api/middleware"
	"anifinder-api/core/interfaces"
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

const (
	Title   = "AniFinder API"
	Version = "1.0.0"
)

// APIConfig holds configuration for the API
type APIConfig struct {
	Logger interfaces.Logger

	// RateLimiter is optional; the caller owns it and must Stop it
	RateLimiter *middleware.RateLimiter
}

// NewAPI creates a Huma API with CORS only
func NewAPI() (huma.API, chi.Router) {
	return NewAPIWithMiddleware(APIConfig{})
}

// NewAPIWithMiddleware creates a new API with middleware configured
func NewAPIWithMiddleware(cfg APIConfig) (huma.API, chi.Router) {
	router := chi.NewRouter()

	// CORS goes first so preflight requests are never rate limited
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader, "X-RateLimit-Limit", "X-RateLimit-Window", "Retry-After"},
		MaxAge:         300,
	}))

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}
	if cfg.RateLimiter != nil {
		router.Use(middleware.RateLimitMiddleware(cfg.RateLimiter))
	}

	api := humachi.New(router, NewConfig())
	return api, router
}

// NewConfig returns the huma configuration shared by the server and tests.
// Response bodies carry no $schema link so error bodies stay {"error": msg}.
func NewConfig() huma.Config {
	config := huma.DefaultConfig(Title, Version)
	config.Info.Description = "Resolves anime titles to AnimeFLV watch pages and looks up AniList metadata"
	config.Transformers = nil
	config.CreateHooks = nil
	return config
}
