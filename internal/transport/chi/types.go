package chi

import (
	"github.com/kailas-cloud/wainnrooh/internal/domain/place"
	"github.com/kailas-cloud/wainnrooh/internal/domain/suggestion"
	"github.com/kailas-cloud/wainnrooh/internal/usecase/search"
)

// ErrorResponseCode is a machine-readable error code.
type ErrorResponseCode string

// Error codes returned in ErrorResponse.
const (
	ErrorResponseCodeBadRequest        ErrorResponseCode = "bad_request"
	ErrorResponseCodeUnauthorized      ErrorResponseCode = "unauthorized"
	ErrorResponseCodeValidationFailed  ErrorResponseCode = "validation_failed"
	ErrorResponseCodePlaceNotFound     ErrorResponseCode = "place_not_found"
	ErrorResponseCodeCatalogNotLoaded  ErrorResponseCode = "catalog_not_loaded"
	ErrorResponseCodeInvalidCatalog    ErrorResponseCode = "invalid_catalog"
	ErrorResponseCodeAssistantDown     ErrorResponseCode = "assistant_unavailable"
	ErrorResponseCodeInternalError     ErrorResponseCode = "internal_error"
	ErrorResponseCodeMethodNotAllowed  ErrorResponseCode = "method_not_allowed"
	ErrorResponseCodeRouteNotFound     ErrorResponseCode = "not_found"
)

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Code    ErrorResponseCode `json:"code"`
	Message string            `json:"message"`
}

// SearchResultItem is one ranked place.
type SearchResultItem struct {
	Place place.Place `json:"place"`
	Score float64     `json:"score"`
}

// SearchResultListResponse is the GET /search body.
type SearchResultListResponse struct {
	Query string             `json:"query"`
	Sort  string             `json:"sort"`
	Items []SearchResultItem `json:"items"`
	Limit int                `json:"limit"`
	Total int                `json:"total"`
}

// SimilarListResponse is the GET /places/{id}/similar body.
type SimilarListResponse struct {
	PlaceID string             `json:"place_id"`
	Items   []SearchResultItem `json:"items"`
}

// SuggestionListResponse is the GET /suggest body.
type SuggestionListResponse struct {
	Items []suggestion.Suggestion `json:"items"`
}

// RecentListResponse is the GET /recent body.
type RecentListResponse struct {
	Items []string `json:"items"`
}

// FacetsResponse is the GET /facets body.
type FacetsResponse = search.Facets

// HealthResponse is the GET /health body.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// SearchParams are the GET /search query parameters.
type SearchParams struct {
	Q            *string  `json:"q,omitempty"`
	Category     *string  `json:"category,omitempty"`
	Neighborhood *string  `json:"neighborhood,omitempty"`
	Price        *string  `json:"price,omitempty"`
	Audience     *string  `json:"audience,omitempty"`
	PerfectFor   *string  `json:"perfect_for,omitempty"`
	Free         *bool    `json:"free,omitempty"`
	MinRating    *float64 `json:"min_rating,omitempty"`
	Sort         *string  `json:"sort,omitempty"`
	Limit        *int     `json:"limit,omitempty"`
}

// SuggestParams are the GET /suggest query parameters.
type SuggestParams struct {
	Q     string `json:"q"`
	Limit *int   `json:"limit,omitempty"`
}

// SimilarParams are the GET /places/{id}/similar query parameters.
type SimilarParams struct {
	Limit *int `json:"limit,omitempty"`
}

// AskParams are the GET /ask query parameters.
type AskParams struct {
	Q string `json:"q"`
}
