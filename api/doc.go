// Package api provides the HTTP API layer for AniFinder.
// It uses the Huma framework on a chi router for OpenAPI documentation,
// request validation and a clean handler interface.
//
// # Architecture
//
// - server.go: Huma API configuration and setup
// - handlers/: HTTP request handlers and the domain error mapper
// - middleware/: request IDs, request logging and per-IP rate limiting
//
// # Endpoints
//
//	GET /api/animeflv?title=...   resolve a title to an AnimeFLV watch URL
//	GET /api/anime?search=...     AniList metadata with a translated description
//	GET /health                   liveness
//
// The OpenAPI spec is served at /openapi.json and the docs UI at /docs.
//
// # Usage Example
//
//	limiter := middleware.NewRateLimiter(60, time.Minute)
//	defer limiter.Stop()
//
//	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
//	    Logger:      logger,
//	    RateLimiter: limiter,
//	})
//	handlers.NewAnimeFLVHandler(resolver, logger).RegisterRoutes(humaAPI)
//
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// Every error response has the same shape:
//
//	{"error": "El título es requerido"}
//
// Domain errors are mapped to status codes in handlers/errors.go. Lookup
// failures are logged with the request ID and answered with a generic message.
package api
