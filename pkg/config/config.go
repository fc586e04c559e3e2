// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, cache, providers, rate limiting and logging

package config

import (
	"errors"
	"fmt"
	"net/netip"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Cache contains cache configuration
	Cache CacheConfig

	// Providers contains upstream service configuration
	Providers ProvidersConfig

	// RateLimit contains per-client rate limiting configuration
	RateLimit RateLimitConfig

	// Log contains logging configuration
	Log LogConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// ShutdownTimeout bounds graceful shutdown
	ShutdownTimeout time.Duration
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (memory/redis/sqlite)
	Type string

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// Memory contains in-memory cache configuration
	Memory MemoryConfig

	// SQLite contains SQLite-specific configuration
	SQLite SQLiteConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// MemoryConfig holds in-memory cache configuration
type MemoryConfig struct {
	// CleanupInterval is how often expired entries are purged
	CleanupInterval time.Duration
}

// SQLiteConfig holds SQLite-specific configuration
type SQLiteConfig struct {
	// Path is the database file path
	Path string
}

// ProvidersConfig holds upstream endpoints and timeouts
type ProvidersConfig struct {
	AnimeFLVBaseURL string
	AnimeFLVTimeout time.Duration

	AniListEndpoint string
	AniListTimeout  time.Duration

	TranslateEndpoint string
	// TranslateTarget is the default language for description translation
	TranslateTarget string

	// MetadataCacheTTL is how long AniList lookups stay cached
	MetadataCacheTTL time.Duration
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	// Requests is the number of requests allowed per Window
	Requests int

	Window time.Duration

	// TrustedProxies lists proxy IPs or CIDR ranges whose forwarding
	// headers are honored. Empty means clients are keyed by peer address.
	TrustedProxies []string
}

// TrustedPrefixes parses TrustedProxies. A bare IP becomes a single-host prefix.
func (c RateLimitConfig) TrustedPrefixes() ([]netip.Prefix, error) {
	prefixes := make([]netip.Prefix, 0, len(c.TrustedProxies))
	for _, entry := range c.TrustedProxies {
		if strings.Contains(entry, "/") {
			p, err := netip.ParsePrefix(entry)
			if err != nil {
				return nil, fmt.Errorf("invalid trusted proxy %q", entry)
			}
			prefixes = append(prefixes, p.Masked())
			continue
		}
		addr, err := netip.ParseAddr(entry)
		if err != nil {
			return nil, fmt.Errorf("invalid trusted proxy %q", entry)
		}
		addr = addr.Unmap()
		prefixes = append(prefixes, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return prefixes, nil
}

// LogConfig holds logging configuration
type LogConfig struct {
	// Level is one of debug, info, warn, error
	Level string

	// Format is json or text
	Format string
}

// LoadDotEnv loads variables from the given files, or .env when none are
// given. Missing files are ignored and existing variables are never overwritten.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return nil
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnvOrDefault("PORT", "8000"),
			ShutdownTimeout: getEnvAsDurationOrDefault("SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		Cache: CacheConfig{
			Type: strings.ToLower(getEnvOrDefault("CACHE_TYPE", "memory")),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			Memory: MemoryConfig{
				CleanupInterval: getEnvAsDurationOrDefault("MEMORY_CACHE_CLEANUP", 10*time.Minute),
			},
			SQLite: SQLiteConfig{
				Path: getEnvOrDefault("SQLITE_CACHE_PATH", "anifinder_cache.db"),
			},
		},
		Providers: ProvidersConfig{
			AnimeFLVBaseURL:   getEnvOrDefault("ANIMEFLV_BASE_URL", "https://www3.animeflv.net"),
			AnimeFLVTimeout:   getEnvAsDurationOrDefault("ANIMEFLV_TIMEOUT", 15*time.Second),
			AniListEndpoint:   getEnvOrDefault("ANILIST_ENDPOINT", "https://graphql.anilist.co"),
			AniListTimeout:    getEnvAsDurationOrDefault("ANILIST_TIMEOUT", 10*time.Second),
			TranslateEndpoint: getEnvOrDefault("TRANSLATE_ENDPOINT", "https://translate.googleapis.com/translate_a/single"),
			TranslateTarget:   getEnvOrDefault("TRANSLATE_TARGET", "es"),
			MetadataCacheTTL:  getEnvAsDurationOrDefault("METADATA_CACHE_TTL", 24*time.Hour),
		},
		RateLimit: RateLimitConfig{
			Requests:       getEnvAsIntOrDefault("RATE_LIMIT_REQUESTS", 60),
			Window:         getEnvAsDurationOrDefault("RATE_LIMIT_WINDOW", time.Minute),
			TrustedProxies: getEnvAsListOrDefault("TRUSTED_PROXIES", nil),
		},
		Log: LogConfig{
			Level:  strings.ToLower(getEnvOrDefault("LOG_LEVEL", "info")),
			Format: strings.ToLower(getEnvOrDefault("LOG_FORMAT", "json")),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsListOrDefault splits a comma-separated variable, dropping blank entries
func getEnvAsListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// getEnvAsDurationOrDefault accepts Go durations ("15s") or plain seconds ("15")
func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	switch c.Cache.Type {
	case "memory", "redis", "sqlite":
	default:
		return errors.New("cache type must be 'memory', 'redis' or 'sqlite'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if c.Cache.Type == "sqlite" && c.Cache.SQLite.Path == "" {
		return errors.New("sqlite path cannot be empty when using sqlite cache")
	}

	if err := validateURL("ANIMEFLV_BASE_URL", c.Providers.AnimeFLVBaseURL); err != nil {
		return err
	}
	if err := validateURL("ANILIST_ENDPOINT", c.Providers.AniListEndpoint); err != nil {
		return err
	}
	if err := validateURL("TRANSLATE_ENDPOINT", c.Providers.TranslateEndpoint); err != nil {
		return err
	}

	if c.Providers.AnimeFLVTimeout <= 0 || c.Providers.AniListTimeout <= 0 {
		return errors.New("provider timeouts must be positive")
	}

	if c.RateLimit.Requests < 1 {
		return errors.New("rate limit requests must be at least 1")
	}
	if c.RateLimit.Window <= 0 {
		return errors.New("rate limit window must be positive")
	}
	if _, err := c.RateLimit.TrustedPrefixes(); err != nil {
		return err
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.Log.Level)
	}

	if c.Log.Format != "json" && c.Log.Format != "text" {
		return fmt.Errorf("invalid log format %q", c.Log.Format)
	}

	return nil
}

func validateURL(name, raw string) error {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%s must be an absolute URL", name)
	}
	return nil
}
