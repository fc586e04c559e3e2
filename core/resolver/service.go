// ABOUTME: Title resolver finds a watch-page URL for a user-entered anime title
// ABOUTME: Searches with the simplified title first and falls back to the original title

package resolver

import (
	"context"
	"strings"

	"anifinder-api/core/domain"
	"anifinder-api/core/errors"
	"anifinder-api/core/interfaces"
	"github.com/samber/mo"
)

// ResolverService resolves titles against a single search provider
type ResolverService struct {
	provider interfaces.SearchProvider
	logger   interfaces.Logger
}

// NewResolverService creates a new resolver. logger may be nil.
func NewResolverService(provider interfaces.SearchProvider, logger interfaces.Logger) *ResolverService {
	return &ResolverService{
		provider: provider,
		logger:   logger,
	}
}

// Resolve returns the watch URL of the first candidate for the simplified title,
// or for the original title when the first search has no usable candidate.
//
// A Resolution without a URL means nothing was found. Any provider failure
// aborts immediately and is returned as *errors.LookupError; the fallback
// search is never attempted after a failure. A title that is blank after
// trimming returns *errors.ValidationError without calling the provider.
//
// The simplified title is always searched first, even when it is empty
// (a title such as ": Gate").
func (s *ResolverService) Resolve(ctx context.Context, title string) (domain.Resolution, error) {
	if strings.TrimSpace(title) == "" {
		return domain.Resolution{}, &errors.ValidationError{Field: "title", Message: "title is required"}
	}

	res := domain.Resolution{Title: title}

	simplified := domain.SimplifyTitle(title)
	url, err := s.search(ctx, simplified)
	res.Attempts++
	if err != nil {
		return domain.Resolution{}, err
	}
	if u, ok := url.Get(); ok {
		res.MatchedQuery = simplified
		res.WatchURL = mo.Some(u)
		s.debug("Resolved title", res)
		return res, nil
	}

	url, err = s.search(ctx, title)
	res.Attempts++
	if err != nil {
		return domain.Resolution{}, err
	}
	if u, ok := url.Get(); ok {
		res.MatchedQuery = title
		res.WatchURL = mo.Some(u)
	}

	s.debug("Resolved title", res)
	return res, nil
}

// search runs one provider query and extracts the first candidate's URL
func (s *ResolverService) search(ctx context.Context, query string) (mo.Option[string], error) {
	results, err := s.provider.Search(ctx, query)
	if err != nil {
		return mo.None[string](), &errors.LookupError{Query: query, Err: err}
	}
	return firstWatchURL(results), nil
}

// firstWatchURL only ever looks at the first candidate
func firstWatchURL(results *domain.SearchResultSet) mo.Option[string] {
	first, ok := results.First()
	if !ok {
		return mo.None[string]()
	}
	if u, ok := first.WatchURL(); ok {
		return mo.Some(u)
	}
	return mo.None[string]()
}

func (s *ResolverService) debug(msg string, res domain.Resolution) {
	if s.logger == nil {
		return
	}
	s.logger.Debug(msg, map[string]interface{}{
		"title":         res.Title,
		"matched_query": res.MatchedQuery,
		"found":         res.Found(),
		"attempts":      res.Attempts,
	})
}
