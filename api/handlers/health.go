// ABOUTME: Health check handler
// ABOUTME: Reports liveness for load balancers and container orchestrators

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// HealthOutput defines the output for the health check
type HealthOutput struct {
	Body struct {
		Status string `json:"status" example:"ok"`
	}
}

// RegisterHealth registers GET /health
func RegisterHealth(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Tags:        []string{"Health"},
	}, func(ctx context.Context, input *struct{}) (*HealthOutput, error) {
		out := &HealthOutput{}
		out.Body.Status = "ok"
		return out, nil
	})
}
