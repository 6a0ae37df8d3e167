package wainnrooh

import (
	"github.com/kailas-cloud/wainnrooh/internal/domain/intent"
	"github.com/kailas-cloud/wainnrooh/internal/domain/place"
	"github.com/kailas-cloud/wainnrooh/internal/domain/search/order"
	"github.com/kailas-cloud/wainnrooh/internal/domain/suggestion"
	"github.com/kailas-cloud/wainnrooh/internal/usecase/search"
)

// Place is one catalog record.
type Place = place.Place

// Suggestion is one autocomplete entry.
type Suggestion = suggestion.Suggestion

// Reply is the assistant's answer: parsed intent, places and message.
type Reply = intent.Reply

// Facets lists the filter values present in the catalog.
type Facets = search.Facets

// SortOrder controls result ordering.
type SortOrder = order.Key

// Sort order constants.
const (
	SortRelevance   = order.Relevance
	SortRatingDesc  = order.RatingDesc
	SortRatingAsc   = order.RatingAsc
	SortReviewsDesc = order.ReviewsDesc
	SortPriceAsc    = order.PriceAsc
	SortPriceDesc   = order.PriceDesc
	SortName        = order.Name
	SortTrending    = order.Trending
	SortBestValue   = order.BestValue
	SortRandom      = order.Random
)

// SearchQuery is a free-text query with optional structured filters.
// Scope, if set, records the query in that scope's recent-search list.
type SearchQuery struct {
	Query        string
	Category     string
	Neighborhood string
	Price        string
	Audience     string
	PerfectFor   string
	FreeOnly     bool
	MinRating    float64
	Sort         SortOrder
	Limit        int
	Scope        string
}

// SearchResult is a place with its relevance score.
type SearchResult struct {
	Place Place
	Score float64
}

// SearchPage is a truncated result list and the size of the full match set.
type SearchPage struct {
	Results []SearchResult
	Total   int
}

// CatalogStats describes the loaded snapshot.
type CatalogStats struct {
	Places   int
	LoadedAt int64 // unix millis
}

// HealthStatus represents the aggregated system health.
type HealthStatus struct {
	Status string            // "ok", "degraded", "error"
	Checks map[string]string // component → "ok"/"error"/"disabled"
}
