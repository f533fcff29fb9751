package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"leadsearch-api/api/dto/responses"
	"leadsearch-api/core/interfaces"
)

// HealthHandler reports liveness and whether searches can reach the provider
type HealthHandler struct {
	provider interfaces.PageFetcher
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(provider interfaces.PageFetcher) *HealthHandler {
	return &HealthHandler{provider: provider}
}

// RegisterRoutes registers the health route
func (h *HealthHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Tags:        []string{"Health"},
	}, h.Health)
}

// HealthOutput defines the output for the Health operation
type HealthOutput struct {
	Body responses.HealthResponse
}

// Health handles GET /health
func (h *HealthHandler) Health(ctx context.Context, _ *struct{}) (*HealthOutput, error) {
	return &HealthOutput{Body: responses.HealthResponse{
		Status:           "ok",
		SearchConfigured: h.provider != nil && h.provider.Configured(),
	}}, nil
}
