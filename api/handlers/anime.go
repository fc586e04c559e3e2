// ABOUTME: Anime metadata handler backed by AniList
// ABOUTME: Returns the best match for a search with an optionally translated description

package handlers

import (
	"context"
	"net/http"
	"strings"

	"anifinder-api/api/middleware"
	"anifinder-api/core/domain"
	"anifinder-api/core/interfaces"
	"anifinder-api/pkg/featureflags"
	"github.com/danielgtaylor/huma/v2"
)

// AnimeHandler serves GET /api/anime
type AnimeHandler struct {
	service     interfaces.MetadataService
	defaultLang string
	flags       featureflags.Manager
	logger      interfaces.Logger
}

// NewAnimeHandler creates a new anime handler. defaultLang applies when the
// request has no lang; flags and logger may be nil.
func NewAnimeHandler(service interfaces.MetadataService, defaultLang string, flags featureflags.Manager, logger interfaces.Logger) *AnimeHandler {
	return &AnimeHandler{
		service:     service,
		defaultLang: defaultLang,
		flags:       flags,
		logger:      logger,
	}
}

// RegisterRoutes registers the anime routes
func (h *AnimeHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "lookupAnime",
		Method:      http.MethodGet,
		Path:        "/api/anime",
		Summary:     "Look up anime metadata",
		Description: "Finds the best AniList match for a search. The description is translated into lang unless lang is 'none'.",
		Tags:        []string{"Anime"},
		Errors: []int{
			http.StatusBadRequest, http.StatusNotFound, http.StatusTooManyRequests,
			http.StatusBadGateway, http.StatusServiceUnavailable,
		},
	}, h.Lookup)
}

// LookupInput defines the input for the Lookup operation
type LookupInput struct {
	Search string `query:"search" doc:"Anime title to search for" example:"Shingeki no Kyojin"`
	Lang   string `query:"lang" maxLength:"10" doc:"Target language for the description, or 'none'" example:"es"`
}

// LookupOutput defines the output for the Lookup operation
type LookupOutput struct {
	Body *domain.Anime
}

// Lookup handles GET /api/anime
func (h *AnimeHandler) Lookup(ctx context.Context, input *LookupInput) (*LookupOutput, error) {
	if strings.TrimSpace(input.Search) == "" {
		return nil, huma.Error400BadRequest(msgSearchRequired)
	}

	anime, err := h.service.LookupAnime(ctx, input.Search, h.language(ctx, input.Lang))
	if err != nil {
		if h.logger != nil {
			h.logger.Warn("Anime lookup failed", map[string]interface{}{
				"request_id": middleware.GetRequestID(ctx),
				"search":     input.Search,
				"error":      err.Error(),
			})
		}
		return nil, toHumaError(err, http.StatusBadGateway)
	}

	return &LookupOutput{Body: anime}, nil
}

// language picks the translation target for a request, "" meaning none
func (h *AnimeHandler) language(ctx context.Context, requested string) string {
	if h.flags != nil && !h.flags.IsEnabled(ctx, featureflags.TranslationEnabled) {
		return ""
	}
	lang := strings.TrimSpace(requested)
	if lang == "" {
		lang = h.defaultLang
	}
	if strings.EqualFold(lang, "none") {
		return ""
	}
	return strings.ToLower(lang)
}
