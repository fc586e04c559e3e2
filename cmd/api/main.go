// ABOUTME: Main entry point for the AniFinder API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"anifinder-api/api"
	"anifinder-api/api/handlers"
	"anifinder-api/api/middleware"
	"anifinder-api/core/anime"
	"anifinder-api/core/interfaces"
	"anifinder-api/core/resolver"
	"anifinder-api/infrastructure/cache/memory"
	"anifinder-api/infrastructure/cache/redis"
	"anifinder-api/infrastructure/cache/sqlite"
	stdhttp "anifinder-api/infrastructure/http/standard"
	logruslogger "anifinder-api/infrastructure/logger/logrus"
	"anifinder-api/infrastructure/provider/anilist"
	"anifinder-api/infrastructure/provider/animeflv"
	"anifinder-api/infrastructure/translate"
	"anifinder-api/pkg/config"
	"anifinder-api/pkg/featureflags"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Fatalf("Failed to load .env: %v", err)
	}

	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := logruslogger.New(logruslogger.Options{Level: cfg.Log.Level, Format: cfg.Log.Format})
	flags := featureflags.NewEnvManager("FEATURE_")
	ctx := context.Background()

	logger.Info("Starting AniFinder API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
		"flags":      flags.GetAllFlags(),
	})

	var cache interfaces.Cache
	if flags.IsEnabled(ctx, featureflags.CacheEnabled) {
		var closeCache func() error
		cache, closeCache = newCache(cfg, logger)
		if closeCache != nil {
			defer closeCache()
		}
	} else {
		logger.Info("Cache disabled", nil)
	}

	// AnimeFLV calls are not retried: a resolution makes at most two searches
	// and any failure aborts it.
	scrapeClient := stdhttp.NewStandardHTTPClientWithOptions(stdhttp.Options{
		Timeout:   cfg.Providers.AnimeFLVTimeout,
		Transport: &middleware.LoggingRoundTripper{Logger: logger},
	})
	apiClient := stdhttp.NewStandardHTTPClient(cfg.Providers.AniListTimeout)

	provider, err := animeflv.NewProvider(cfg.Providers.AnimeFLVBaseURL, scrapeClient, logger)
	if err != nil {
		log.Fatalf("Invalid AnimeFLV base URL: %v", err)
	}
	titleResolver := resolver.NewResolverService(provider, logger)

	var limiter *middleware.RateLimiter
	if flags.IsEnabled(ctx, featureflags.RateLimitEnabled) {
		proxies, err := cfg.RateLimit.TrustedPrefixes()
		if err != nil {
			log.Fatalf("Invalid configuration: %v", err)
		}
		limiter = middleware.NewRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window, proxies...)
		defer limiter.Stop()
	}

	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
		Logger:      logger,
		RateLimiter: limiter,
	})

	handlers.NewAnimeFLVHandler(titleResolver, logger).RegisterRoutes(humaAPI)
	handlers.RegisterHealth(humaAPI)

	if flags.IsEnabled(ctx, featureflags.MetadataEnabled) {
		deps := interfaces.Dependencies{
			Cache:      cache,
			HTTPClient: apiClient,
			Logger:     logger,
		}

		var translator interfaces.Translator
		if flags.IsEnabled(ctx, featureflags.TranslationEnabled) {
			translator = translate.NewTranslator(cfg.Providers.TranslateEndpoint, deps)
		}

		metadata := anime.NewAnimeService(deps, anilist.NewClient(cfg.Providers.AniListEndpoint, apiClient, logger), translator)
		metadata.SetCacheTTL(cfg.Providers.MetadataCacheTTL)

		handlers.NewAnimeHandler(metadata, cfg.Providers.TranslateTarget, flags, logger).RegisterRoutes(humaAPI)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 2*cfg.Providers.AnimeFLVTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	logger.Info("Server stopped", nil)
}

// newCache builds the configured backend, falling back to memory when
// Redis or SQLite cannot be opened. The returned close func may be nil.
func newCache(cfg *config.Config, logger interfaces.Logger) (interfaces.Cache, func() error) {
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err == nil {
			logger.Info("Using Redis cache", map[string]interface{}{
				"address": cfg.Cache.Redis.Address,
			})
			return redisCache, redisCache.Close
		}
		logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
			"error": err.Error(),
		})
	case "sqlite":
		sqliteCache, err := sqlite.NewSQLiteCache(cfg.Cache.SQLite.Path, logger)
		if err == nil {
			logger.Info("Using SQLite cache", map[string]interface{}{
				"path": cfg.Cache.SQLite.Path,
			})
			return sqliteCache, sqliteCache.Close
		}
		logger.Error("Failed to create SQLite cache, falling back to memory", map[string]interface{}{
			"error": err.Error(),
		})
	}

	logger.Info("Using memory cache", nil)
	return memory.NewMemoryCacheWithCleanup(cfg.Cache.Memory.CleanupInterval), nil
}

func init() {
	fmt.Println(`
    ___          _ _____ _           _
   / _ \  _ __  (_)  ___(_)_ __   __| | ___ _ __
  / /_\ \| '_ \ | | |_  | | '_ \ / _' |/ _ \ '__|
 /  _  \ | | | || |  _| | | | | | (_| |  __/ |
 \_/ \_/_| |_||_|_|   |_|_| |_|\__,_|\___|_|
	`)
}
