// ABOUTME: Anime metadata service looks up AniList records and caches them
// ABOUTME: Optionally translates the description, falling back to the original text on failure

package anime

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"anifinder-api/core/domain"
	"anifinder-api/core/errors"
	"anifinder-api/core/interfaces"
)

// DefaultCacheTTL is how long a successful lookup stays cached
const DefaultCacheTTL = 24 * time.Hour

// NoTranslation disables translation when passed as lang
const NoTranslation = "none"

// AnimeService implements interfaces.MetadataService
type AnimeService struct {
	deps       interfaces.Dependencies
	provider   interfaces.AnimeMetadataProvider
	translator interfaces.Translator
	cacheTTL   time.Duration
}

// NewAnimeService creates a metadata service. translator may be nil.
func NewAnimeService(deps interfaces.Dependencies, provider interfaces.AnimeMetadataProvider, translator interfaces.Translator) *AnimeService {
	return &AnimeService{
		deps:       deps,
		provider:   provider,
		translator: translator,
		cacheTTL:   DefaultCacheTTL,
	}
}

// SetCacheTTL overrides DefaultCacheTTL
func (s *AnimeService) SetCacheTTL(ttl time.Duration) {
	if ttl > 0 {
		s.cacheTTL = ttl
	}
}

// LookupAnime finds the best AniList match for search. When lang is set the
// returned copy carries a translated description.
func (s *AnimeService) LookupAnime(ctx context.Context, search, lang string) (*domain.Anime, error) {
	if strings.TrimSpace(search) == "" {
		return nil, &errors.ValidationError{Field: "search", Message: "search is required"}
	}

	key := cacheKey(search)

	anime := s.getCached(ctx, key)
	if anime == nil {
		if s.provider == nil {
			return nil, fmt.Errorf("metadata provider not configured")
		}

		found, err := s.provider.SearchMedia(ctx, strings.TrimSpace(search))
		if err != nil {
			return nil, err
		}
		if found == nil {
			return nil, &errors.NotFoundError{Resource: "anime", ID: search}
		}
		anime = found

		// Cache errors are not fatal
		if err := s.setCached(ctx, key, anime); err != nil {
			s.warn("Failed to cache anime metadata", map[string]interface{}{
				"search": search,
				"error":  err.Error(),
			})
		}
	}

	s.translate(ctx, anime, lang)
	return anime, nil
}

// translate fills TranslatedDescription in place, leaving it empty on failure
func (s *AnimeService) translate(ctx context.Context, anime *domain.Anime, lang string) {
	lang = strings.TrimSpace(lang)
	if s.translator == nil || lang == "" || strings.EqualFold(lang, NoTranslation) {
		return
	}
	if strings.TrimSpace(anime.Description) == "" {
		return
	}

	translated, err := s.translator.Translate(ctx, anime.Description, lang)
	if err != nil {
		s.warn("Translation failed, using original description", map[string]interface{}{
			"anime_id": anime.ID,
			"lang":     lang,
			"error":    err.Error(),
		})
		translated = anime.Description
	}

	anime.TranslatedDescription = translated
	anime.TranslationLanguage = lang
}

func (s *AnimeService) getCached(ctx context.Context, key string) *domain.Anime {
	if s.deps.Cache == nil {
		return nil
	}

	data, err := s.deps.Cache.Get(ctx, key)
	if err != nil || len(data) == 0 {
		return nil
	}

	var anime domain.Anime
	if err := json.Unmarshal(data, &anime); err != nil {
		s.warn("Ignoring corrupt cache entry", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		return nil
	}
	return &anime
}

func (s *AnimeService) setCached(ctx context.Context, key string, anime *domain.Anime) error {
	if s.deps.Cache == nil {
		return nil
	}

	data, err := json.Marshal(anime)
	if err != nil {
		return err
	}
	return s.deps.Cache.Set(ctx, key, data, s.cacheTTL)
}

func (s *AnimeService) warn(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Warn(msg, fields)
	}
}

func cacheKey(search string) string {
	return "anime:media:" + domain.NormalizeTitle(search)
}
