package responses

import (
	"github.com/chile-cleaner/app/models"
	"github.com/chile-cleaner/app/services"
	"github.com/chile-cleaner/cleaner"
)

// ResolveRegionResponse is the envelope for a single resolution.
type ResolveRegionResponse struct {
	Result           *models.ResolveResult `json:"result"`
	ProcessingTimeMs int64                 `json:"processing_time_ms"`
	CacheHit         bool                  `json:"cache_hit"`
}

// BatchResolveResponse is the envelope for a batch resolution.
type BatchResolveResponse struct {
	Results          []*models.ResolveResult `json:"results"`
	Total            int                     `json:"total"`
	Matched          int                     `json:"matched"`
	NotFound         int                     `json:"not_found"`
	ProcessingTimeMs int64                   `json:"processing_time_ms"`
}

// ListRegionsResponse is the full ordered table.
type ListRegionsResponse struct {
	Regions []cleaner.Result `json:"regions"`
	Total   int              `json:"total"`
}

// ValidateRegionResponse reports whether an input is a known region.
type ValidateRegionResponse struct {
	Input string `json:"input"`
	Valid bool   `json:"valid"`
}

// StatsResponse is the admin stats payload.
type StatsResponse struct {
	Stats services.ServiceStats `json:"stats"`
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// SuccessResponse acknowledges an admin action.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// HealthCheckResponse is the health probe payload.
type HealthCheckResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Regions int    `json:"regions"`
}
