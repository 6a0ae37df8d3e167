// Package intent holds the structured form of a natural-language place request.
package intent

import "github.com/kailas-cloud/wainnrooh/internal/domain/place"

// Limits for the number of requested results.
const (
	DefaultLimit = 10
	MaxLimit     = 50
)

// Sort is the ordering the user asked for.
type Sort string

// Sort intents.
const (
	SortRatingDesc Sort = "rating_desc"
	SortPriceAsc   Sort = "price_asc"
	SortPriceDesc  Sort = "price_desc"
	SortNewest     Sort = "newest"
)

// Intent is the slot-filled reading of a query. Empty fields are unconstrained.
type Intent struct {
	Category       string           `json:"category,omitempty"`
	Cuisine        string           `json:"cuisine,omitempty"`
	Price          place.PriceLevel `json:"price,omitempty"`
	Audience       string           `json:"audience,omitempty"`
	PerfectFor     string           `json:"perfect_for,omitempty"`
	Neighborhood   string           `json:"neighborhood,omitempty"`
	FreeOnly       bool             `json:"free_only"`
	NewOnly        bool             `json:"new_only"`
	Sort           Sort             `json:"sort"`
	Limit          int              `json:"limit"`
	MatchedFilters []string         `json:"matched_filters"`
}

// Reply is the answer to a guided search: the reading, the places and a sentence.
type Reply struct {
	Intent  Intent        `json:"intent"`
	Places  []place.Place `json:"places"`
	Message string        `json:"message"`
}
