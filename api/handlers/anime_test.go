package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"anifinder-api/core/domain"
	coreerrors "anifinder-api/core/errors"
	"anifinder-api/pkg/featureflags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleAnime() *domain.Anime {
	return &domain.Anime{
		ID:                    16498,
		Title:                 domain.AnimeTitle{Romaji: "Shingeki no Kyojin", English: "Attack on Titan"},
		Description:           "Humanity fights titans.",
		TranslatedDescription: "La humanidad lucha contra titanes.",
		TranslationLanguage:   "es",
		Genres:                []string{"Action"},
		Characters:            []domain.Character{{ID: 40882, Name: "Eren Yeager"}},
	}
}

func TestAnimeHandler_Success(t *testing.T) {
	service := &mockMetadataService{
		lookupFunc: func(ctx context.Context, search, lang string) (*domain.Anime, error) {
			assert.Equal(t, "attack on titan", search)
			return sampleAnime(), nil
		},
	}
	api := newTestAPI(t)
	NewAnimeHandler(service, "es", nil, nil).RegisterRoutes(api)

	resp := api.Get("/api/anime?search=attack%20on%20titan")

	require.Equal(t, http.StatusOK, resp.Code)
	var got domain.Anime
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
	assert.Equal(t, 16498, got.ID)
	assert.Equal(t, "La humanidad lucha contra titanes.", got.TranslatedDescription)
	assert.Equal(t, "es", service.lastLang)
}

func TestAnimeHandler_Language(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		flags    featureflags.Manager
		wantLang string
	}{
		{name: "default language", query: "", wantLang: "es"},
		{name: "explicit language", query: "&lang=FR", wantLang: "fr"},
		{name: "none disables translation", query: "&lang=none", wantLang: ""},
		{
			name:     "feature flag disables translation",
			query:    "&lang=fr",
			flags:    featureflags.NewStaticManager(map[featureflags.FeatureFlag]bool{featureflags.TranslationEnabled: false}),
			wantLang: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &mockMetadataService{
				lookupFunc: func(ctx context.Context, search, lang string) (*domain.Anime, error) {
					return sampleAnime(), nil
				},
			}
			api := newTestAPI(t)
			NewAnimeHandler(service, "es", tt.flags, nil).RegisterRoutes(api)

			resp := api.Get("/api/anime?search=naruto" + tt.query)

			require.Equal(t, http.StatusOK, resp.Code)
			assert.Equal(t, tt.wantLang, service.lastLang)
		})
	}
}

func TestAnimeHandler_Errors(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "missing search",
			path:       "/api/anime",
			wantStatus: http.StatusBadRequest,
			wantMsg:    msgSearchRequired,
		},
		{
			name:       "blank search",
			path:       "/api/anime?search=%20",
			wantStatus: http.StatusBadRequest,
			wantMsg:    msgSearchRequired,
		},
		{
			name:       "no match",
			path:       "/api/anime?search=zzzz",
			err:        &coreerrors.NotFoundError{Resource: "anime", ID: "zzzz"},
			wantStatus: http.StatusNotFound,
			wantMsg:    msgAnimeNotFound,
		},
		{
			name:       "anilist 5xx",
			path:       "/api/anime?search=naruto",
			err:        &coreerrors.ExternalAPIError{API: "anilist", StatusCode: 502},
			wantStatus: http.StatusServiceUnavailable,
			wantMsg:    msgUpstreamDown,
		},
		{
			name:       "anilist 429",
			path:       "/api/anime?search=naruto",
			err:        &coreerrors.ExternalAPIError{API: "anilist", StatusCode: 429},
			wantStatus: http.StatusTooManyRequests,
			wantMsg:    msgUpstreamLimit,
		},
		{
			name:       "anilist transport failure",
			path:       "/api/anime?search=naruto",
			err:        fmt.Errorf("failed to query anilist: context deadline exceeded"),
			wantStatus: http.StatusBadGateway,
			wantMsg:    msgUpstreamFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &mockMetadataService{
				lookupFunc: func(ctx context.Context, search, lang string) (*domain.Anime, error) {
					return nil, tt.err
				},
			}
			api := newTestAPI(t)
			NewAnimeHandler(service, "es", nil, &mockLogger{}).RegisterRoutes(api)

			resp := api.Get(tt.path)

			assert.Equal(t, tt.wantStatus, resp.Code)
			assert.JSONEq(t, `{"error":"`+tt.wantMsg+`"}`, resp.Body.String())
		})
	}
}

func TestAnimeHandler_LangTooLongIsRejected(t *testing.T) {
	service := &mockMetadataService{}
	api := newTestAPI(t)
	NewAnimeHandler(service, "es", nil, nil).RegisterRoutes(api)

	resp := api.Get("/api/anime?search=naruto&lang=abcdefghijklmnop")

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	assert.Contains(t, resp.Body.String(), `"error"`)
	assert.Zero(t, service.calls)
}

func TestHealth(t *testing.T) {
	api := newTestAPI(t)
	RegisterHealth(api)

	resp := api.Get("/health")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"status":"ok"}`, resp.Body.String())
}
