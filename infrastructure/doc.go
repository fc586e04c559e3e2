// Package infrastructure provides concrete implementations of the interfaces
// defined in core/interfaces.
//
// - cache/memory: in-process cache on patrickmn/go-cache
// - cache/redis: shared cache on go-redis
// - cache/sqlite: persistent cache on mattn/go-sqlite3
// - http/standard: net/http client with retries and a cookie jar
// - logger/logrus: structured logging on sirupsen/logrus
// - provider/animeflv: AnimeFLV browse-page scraper (goquery)
// - provider/anilist: AniList GraphQL client
// - translate: Google translate_a/single client with result caching
//
// # Cache Implementations
//
//	cache := memory.NewMemoryCache()
//	err := cache.Set(ctx, "anime:media:naruto", data, 24*time.Hour)
//
//	cache, err := redis.NewRedisCache(config.RedisConfig{Address: "localhost:6379"})
//
//	cache, err := sqlite.NewSQLiteCache("anifinder_cache.db", logger)
//
// # HTTP Client
//
// AnimeFLV searches use a client without retries; a failed search ends the
// resolution. AniList and translation calls retry 5xx responses twice.
//
//	client := standard.NewStandardHTTPClientWithOptions(standard.Options{
//	    Timeout: 15 * time.Second,
//	})
package infrastructure
