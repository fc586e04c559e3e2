// ABOUTME: Configuration options for the AniFinder library client
// ABOUTME: Provides functional options pattern for flexible client configuration

package anifinder

import (
	"strings"
	"time"

	"anifinder-api/core/interfaces"
)

// Option is a functional option for configuring the client
type Option func(*Config) error

// WithCache sets a custom cache implementation. Nil disables caching.
func WithCache(cache interfaces.Cache) Option {
	return func(c *Config) error {
		c.Cache = cache
		return nil
	}
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client interfaces.HTTPClient) Option {
	return func(c *Config) error {
		if client == nil {
			return NewError(ErrorTypeConfiguration, "HTTP client cannot be nil")
		}
		c.HTTPClient = client
		return nil
	}
}

// WithLogger sets a custom logger
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Config) error {
		if logger == nil {
			return NewError(ErrorTypeConfiguration, "logger cannot be nil")
		}
		c.Logger = logger
		return nil
	}
}

// WithAnimeFLVBaseURL points the scraper at another AnimeFLV mirror
func WithAnimeFLVBaseURL(baseURL string) Option {
	return func(c *Config) error {
		c.AnimeFLVBaseURL = baseURL
		return nil
	}
}

// WithAniListEndpoint sets the AniList GraphQL endpoint
func WithAniListEndpoint(endpoint string) Option {
	return func(c *Config) error {
		c.AniListEndpoint = endpoint
		return nil
	}
}

// WithTranslateEndpoint sets the translation endpoint
func WithTranslateEndpoint(endpoint string) Option {
	return func(c *Config) error {
		c.TranslateEndpoint = endpoint
		return nil
	}
}

// WithLanguage sets the default translation target
func WithLanguage(lang string) Option {
	return func(c *Config) error {
		c.Language = strings.ToLower(strings.TrimSpace(lang))
		return nil
	}
}

// WithMetadataCacheTTL sets how long metadata lookups stay cached
func WithMetadataCacheTTL(ttl time.Duration) Option {
	return func(c *Config) error {
		if ttl <= 0 {
			return NewError(ErrorTypeValidation, "metadata cache TTL must be positive")
		}
		c.MetadataCacheTTL = ttl
		return nil
	}
}

// WithSearchProvider replaces the AnimeFLV scraper
func WithSearchProvider(provider interfaces.SearchProvider) Option {
	return func(c *Config) error {
		c.SearchProvider = provider
		return nil
	}
}

// WithMetadataProvider replaces the AniList client
func WithMetadataProvider(provider interfaces.AnimeMetadataProvider) Option {
	return func(c *Config) error {
		c.MetadataProvider = provider
		return nil
	}
}

// WithTranslator replaces the translation client
func WithTranslator(translator interfaces.Translator) Option {
	return func(c *Config) error {
		c.Translator = translator
		return nil
	}
}

// LookupOption configures a single LookupAnime call
type LookupOption func(*lookupOptions)

type lookupOptions struct {
	language string
}

// InLanguage overrides the translation target for one lookup
func InLanguage(lang string) LookupOption {
	return func(o *lookupOptions) {
		o.language = strings.ToLower(strings.TrimSpace(lang))
	}
}

// WithoutTranslation skips translation for one lookup
func WithoutTranslation() LookupOption {
	return InLanguage("none")
}
