// ABOUTME: Contracts for external lookup providers
// ABOUTME: Search, metadata and translation capabilities backed by third-party services

package interfaces

import (
	"context"

	"anifinder-api/core/domain"
)

// SearchProvider searches a watch site for a title.
// An empty result set is not an error; failures are returned as errors.
type SearchProvider interface {
	Search(ctx context.Context, query string) (*domain.SearchResultSet, error)
}

// AnimeMetadataProvider fetches anime metadata by free-text search.
// It returns (nil, nil) when nothing matches.
type AnimeMetadataProvider interface {
	SearchMedia(ctx context.Context, search string) (*domain.Anime, error)
}

// Translator translates text into the target language
type Translator interface {
	Translate(ctx context.Context, text string, targetLang string) (string, error)
}
