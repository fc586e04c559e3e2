package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"anifinder-api/core/domain"
	"anifinder-api/core/interfaces"
	"anifinder-api/core/resolver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAnimeFLV(t *testing.T, provider *mockSearchProvider, logger interfaces.Logger) func(path string) (int, string) {
	t.Helper()
	api := newTestAPI(t)
	handler := NewAnimeFLVHandler(resolver.NewResolverService(provider, nil), logger)
	handler.RegisterRoutes(api)

	return func(path string) (int, string) {
		resp := api.Get(path)
		return resp.Code, resp.Body.String()
	}
}

func candidates(url string) []domain.SearchCandidate {
	return []domain.SearchCandidate{{Title: "x", URL: url}}
}

func TestAnimeFLVHandler_MissingTitle(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{name: "no title param", path: "/api/animeflv"},
		{name: "empty title", path: "/api/animeflv?title="},
		{name: "whitespace title", path: "/api/animeflv?title=%20%20%09"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &mockSearchProvider{}
			get := setupAnimeFLV(t, provider, nil)

			code, body := get(tt.path)

			assert.Equal(t, http.StatusBadRequest, code)
			assert.JSONEq(t, `{"error":"`+msgTitleRequired+`"}`, body)
			assert.Empty(t, provider.calls(), "provider must not be called")
		})
	}
}

func TestAnimeFLVHandler_SimplifiedTitleHit(t *testing.T) {
	provider := &mockSearchProvider{
		searchFunc: func(ctx context.Context, query string) (*domain.SearchResultSet, error) {
			if query == "Naruto" {
				return &domain.SearchResultSet{Query: query, Data: candidates("https://www3.animeflv.net/anime/naruto")}, nil
			}
			return &domain.SearchResultSet{Query: query}, nil
		},
	}
	get := setupAnimeFLV(t, provider, nil)

	code, body := get("/api/animeflv?title=Naruto%3A%20Shippuden")

	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"url":"https://www3.animeflv.net/anime/naruto"}`, body)
	assert.Equal(t, []string{"Naruto"}, provider.calls())
}

func TestAnimeFLVHandler_FallbackToFullTitle(t *testing.T) {
	provider := &mockSearchProvider{
		searchFunc: func(ctx context.Context, query string) (*domain.SearchResultSet, error) {
			if query == "Naruto: Shippuden" {
				return &domain.SearchResultSet{Query: query, Data: candidates("https://www3.animeflv.net/anime/naruto-shippuden-hd")}, nil
			}
			return &domain.SearchResultSet{Query: query, Data: []domain.SearchCandidate{}}, nil
		},
	}
	get := setupAnimeFLV(t, provider, nil)

	code, body := get("/api/animeflv?title=Naruto%3A%20Shippuden")

	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"url":"https://www3.animeflv.net/anime/naruto-shippuden-hd"}`, body)
	assert.Equal(t, []string{"Naruto", "Naruto: Shippuden"}, provider.calls())
}

func TestAnimeFLVHandler_NotFoundIsNullURL(t *testing.T) {
	provider := &mockSearchProvider{}
	get := setupAnimeFLV(t, provider, nil)

	code, body := get("/api/animeflv?title=Zzzzzz")

	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"url":null}`, body)
	assert.Equal(t, []string{"Zzzzzz", "Zzzzzz"}, provider.calls())
}

func TestAnimeFLVHandler_FirstCallFailureIs500(t *testing.T) {
	logger := &mockLogger{}
	provider := &mockSearchProvider{
		searchFunc: func(ctx context.Context, query string) (*domain.SearchResultSet, error) {
			return nil, errors.New("dial tcp 10.0.0.1:443: connection refused")
		},
	}
	get := setupAnimeFLV(t, provider, logger)

	code, body := get("/api/animeflv?title=Naruto%3A%20Shippuden")

	assert.Equal(t, http.StatusInternalServerError, code)
	assert.JSONEq(t, `{"error":"`+msgLookupFailed+`"}`, body)
	assert.NotContains(t, body, "connection refused")
	assert.Equal(t, []string{"Naruto"}, provider.calls(), "second search must not run")

	require.Len(t, logger.errors, 1)
	assert.Contains(t, logger.errors[0]["error"], "connection refused")
	assert.Equal(t, "Naruto: Shippuden", logger.errors[0]["title"])
}

func TestAnimeFLVHandler_SecondCallFailureIs500(t *testing.T) {
	provider := &mockSearchProvider{
		searchFunc: func(ctx context.Context, query string) (*domain.SearchResultSet, error) {
			if query == "Naruto" {
				return &domain.SearchResultSet{Query: query}, nil
			}
			return nil, errors.New("unexpected markup")
		},
	}
	get := setupAnimeFLV(t, provider, nil)

	code, body := get("/api/animeflv?title=Naruto%3A%20Shippuden")

	assert.Equal(t, http.StatusInternalServerError, code)
	assert.JSONEq(t, `{"error":"`+msgLookupFailed+`"}`, body)
	assert.Len(t, provider.calls(), 2)
}

func TestAnimeFLVHandler_RegistersOpenAPIOperation(t *testing.T) {
	api := newTestAPI(t)
	NewAnimeFLVHandler(resolver.NewResolverService(&mockSearchProvider{}, nil), nil).RegisterRoutes(api)

	path := api.OpenAPI().Paths["/api/animeflv"]
	require.NotNil(t, path)
	require.NotNil(t, path.Get)
	assert.Equal(t, "resolveAnimeFLV", path.Get.OperationID)
}
