// ABOUTME: Default implementations for library dependencies
// ABOUTME: Provides factory functions for the client's default configuration

package anifinder

import (
	"time"

	"anifinder-api/core/anime"
	"anifinder-api/core/interfaces"
	"anifinder-api/infrastructure/cache/memory"
	"anifinder-api/infrastructure/cache/sqlite"
	stdhttp "anifinder-api/infrastructure/http/standard"
	"anifinder-api/infrastructure/provider/anilist"
	"anifinder-api/infrastructure/provider/animeflv"
	"anifinder-api/infrastructure/translate"
)

// DefaultHTTPClient creates an HTTP client without retries. A resolution
// aborts on the first failed search, so retrying would only delay it.
func DefaultHTTPClient() interfaces.HTTPClient {
	return stdhttp.NewStandardHTTPClientWithOptions(stdhttp.Options{
		Timeout: 15 * time.Second,
	})
}

// DefaultMemoryCache creates a default in-memory cache
func DefaultMemoryCache() interfaces.Cache {
	return memory.NewMemoryCache()
}

// DefaultSQLiteCache creates a SQLite cache at filePath
func DefaultSQLiteCache(filePath string, logger interfaces.Logger) (interfaces.Cache, error) {
	return sqlite.NewSQLiteCache(filePath, logger)
}

// QuietLogger creates a logger that discards all output
func QuietLogger() interfaces.Logger {
	return &quietLogger{}
}

type quietLogger struct{}

func (q *quietLogger) Debug(msg string, fields map[string]interface{}) {}
func (q *quietLogger) Info(msg string, fields map[string]interface{})  {}
func (q *quietLogger) Warn(msg string, fields map[string]interface{})  {}
func (q *quietLogger) Error(msg string, fields map[string]interface{}) {}

func defaultConfig() Config {
	return Config{
		Cache:             DefaultMemoryCache(),
		HTTPClient:        DefaultHTTPClient(),
		Logger:            QuietLogger(),
		AnimeFLVBaseURL:   animeflv.DefaultBaseURL,
		AniListEndpoint:   anilist.DefaultEndpoint,
		TranslateEndpoint: translate.DefaultEndpoint,
		Language:          "es",
		MetadataCacheTTL:  anime.DefaultCacheTTL,
	}
}
