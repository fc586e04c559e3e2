// ABOUTME: Main client for the AniFinder library providing title resolution and metadata lookup
// ABOUTME: Offers the same behaviour as the HTTP API without HTTP dependencies

package anifinder

import (
	"context"
	"fmt"
	"time"

	"anifinder-api/core/anime"
	"anifinder-api/core/domain"
	"anifinder-api/core/interfaces"
	"anifinder-api/core/resolver"
	"anifinder-api/infrastructure/provider/anilist"
	"anifinder-api/infrastructure/provider/animeflv"
	"anifinder-api/infrastructure/translate"
)

// Anime is the metadata record returned by LookupAnime
type Anime = domain.Anime

// Resolution is the result of Resolve
type Resolution struct {
	// Title is the title as given
	Title string

	// URL is the watch-page URL, empty when Found is false
	URL string

	Found bool

	// MatchedQuery is the search string that produced URL
	MatchedQuery string

	// Attempts is the number of AnimeFLV searches issued
	Attempts int
}

// Client is the main entry point for the AniFinder library
type Client struct {
	resolver interfaces.TitleResolver
	metadata interfaces.MetadataService
	config   Config
}

// Config holds the configuration for the client
type Config struct {
	Cache      interfaces.Cache
	HTTPClient interfaces.HTTPClient
	Logger     interfaces.Logger

	AnimeFLVBaseURL   string
	AniListEndpoint   string
	TranslateEndpoint string

	// Language is the default translation target; "none" disables translation
	Language string

	MetadataCacheTTL time.Duration

	// Overrides for the upstream integrations. Nil means the built-in clients.
	SearchProvider   interfaces.SearchProvider
	MetadataProvider interfaces.AnimeMetadataProvider
	Translator       interfaces.Translator
}

// NewClient creates a new AniFinder client with the given options
func NewClient(options ...Option) (*Client, error) {
	config := defaultConfig()

	for _, opt := range options {
		if err := opt(&config); err != nil {
			return nil, err
		}
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	deps := interfaces.Dependencies{
		HTTPClient: config.HTTPClient,
		Cache:      config.Cache,
		Logger:     config.Logger,
	}

	search := config.SearchProvider
	if search == nil {
		provider, err := animeflv.NewProvider(config.AnimeFLVBaseURL, config.HTTPClient, config.Logger)
		if err != nil {
			return nil, NewError(ErrorTypeConfiguration, "invalid AnimeFLV base URL").WithCause(err)
		}
		search = provider
	}

	metadataProvider := config.MetadataProvider
	if metadataProvider == nil {
		metadataProvider = anilist.NewClient(config.AniListEndpoint, config.HTTPClient, config.Logger)
	}

	translator := config.Translator
	if translator == nil {
		translator = translate.NewTranslator(config.TranslateEndpoint, deps)
	}

	metadata := anime.NewAnimeService(deps, metadataProvider, translator)
	metadata.SetCacheTTL(config.MetadataCacheTTL)

	return &Client{
		resolver: resolver.NewResolverService(search, config.Logger),
		metadata: metadata,
		config:   config,
	}, nil
}

// Resolve finds the AnimeFLV watch page for title. A title with no match is
// not an error: the returned Resolution has Found set to false.
func (c *Client) Resolve(ctx context.Context, title string) (*Resolution, error) {
	res, err := c.resolver.Resolve(ctx, title)
	if err != nil {
		return nil, wrapError(err)
	}

	return &Resolution{
		Title:        res.Title,
		URL:          res.WatchURL.OrEmpty(),
		Found:        res.Found(),
		MatchedQuery: res.MatchedQuery,
		Attempts:     res.Attempts,
	}, nil
}

// LookupAnime returns AniList metadata for search with the description
// translated into the client language unless overridden
func (c *Client) LookupAnime(ctx context.Context, search string, opts ...LookupOption) (*Anime, error) {
	options := lookupOptions{language: c.config.Language}
	for _, opt := range opts {
		opt(&options)
	}

	result, err := c.metadata.LookupAnime(ctx, search, options.language)
	if err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}

// validateConfig validates the client configuration
func validateConfig(config *Config) error {
	if config.HTTPClient == nil {
		return NewError(ErrorTypeConfiguration, "HTTP client is required")
	}

	if config.Logger == nil {
		return NewError(ErrorTypeConfiguration, "logger is required")
	}

	if config.SearchProvider == nil && config.AnimeFLVBaseURL == "" {
		return NewError(ErrorTypeConfiguration, "AnimeFLV base URL is required")
	}

	// Cache is optional; lookups simply hit AniList every time
	return nil
}

func (r *Resolution) String() string {
	if !r.Found {
		return fmt.Sprintf("%q: not found", r.Title)
	}
	return fmt.Sprintf("%q: %s", r.Title, r.URL)
}
