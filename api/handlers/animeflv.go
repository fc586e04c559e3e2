// ABOUTME: AnimeFLV handler resolves a title to a watch-page URL
// ABOUTME: Validates the title at the boundary and hides provider failures behind a generic 500

package handlers

import (
	"context"
	"net/http"
	"strings"

	"anifinder-api/api/middleware"
	"anifinder-api/core/interfaces"
	"github.com/danielgtaylor/huma/v2"
)

// AnimeFLVHandler serves GET /api/animeflv
type AnimeFLVHandler struct {
	resolver interfaces.TitleResolver
	logger   interfaces.Logger
}

// NewAnimeFLVHandler creates a new AnimeFLV handler. logger may be nil.
func NewAnimeFLVHandler(resolver interfaces.TitleResolver, logger interfaces.Logger) *AnimeFLVHandler {
	return &AnimeFLVHandler{
		resolver: resolver,
		logger:   logger,
	}
}

// RegisterRoutes registers the AnimeFLV routes
func (h *AnimeFLVHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "resolveAnimeFLV",
		Method:      http.MethodGet,
		Path:        "/api/animeflv",
		Summary:     "Find the AnimeFLV page for a title",
		Description: "Searches AnimeFLV with the part of the title before the first colon, then with the full title. Returns the first result's URL, or null when nothing matches.",
		Tags:        []string{"AnimeFLV"},
		Errors:      []int{http.StatusBadRequest, http.StatusInternalServerError},
	}, h.Resolve)
}

// ResolveInput defines the input for the Resolve operation.
// title is optional in the schema so a missing value yields 400 rather than 422.
type ResolveInput struct {
	Title string `query:"title" doc:"Anime title as shown to the user, e.g. 'Naruto: Shippuden'" example:"Naruto: Shippuden"`
}

// ResolveOutput defines the output for the Resolve operation
type ResolveOutput struct {
	Body struct {
		URL *string `json:"url" doc:"Absolute AnimeFLV URL, or null when not found"`
	}
}

// Resolve handles GET /api/animeflv
func (h *AnimeFLVHandler) Resolve(ctx context.Context, input *ResolveInput) (*ResolveOutput, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, huma.Error400BadRequest(msgTitleRequired)
	}

	res, err := h.resolver.Resolve(ctx, input.Title)
	if err != nil {
		h.logFailure(ctx, input.Title, err)
		return nil, toHumaError(err, http.StatusInternalServerError)
	}

	out := &ResolveOutput{}
	out.Body.URL = res.URLOrNil()
	return out, nil
}

func (h *AnimeFLVHandler) logFailure(ctx context.Context, title string, err error) {
	if h.logger == nil {
		return
	}
	h.logger.Error("AnimeFLV lookup failed", map[string]interface{}{
		"request_id": middleware.GetRequestID(ctx),
		"title":      title,
		"error":      err.Error(),
	})
}
