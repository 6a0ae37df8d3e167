// Package suggestion holds auto-suggest entries.
package suggestion

// Kind is the suggestion source.
type Kind string

// Suggestion kinds, in priority order.
const (
	KindPlace        Kind = "place"
	KindNeighborhood Kind = "neighborhood"
	KindCategory     Kind = "category"
)

// Neighborhood and fallback category icons.
const (
	NeighborhoodIcon = "🏘️"
	CategoryIcon     = "📂"
)

// Suggestion is one auto-complete candidate.
// PlaceID and Rating are set for place suggestions only.
type Suggestion struct {
	Kind     Kind     `json:"type"`
	Text     string   `json:"text"`
	Subtitle string   `json:"subtitle,omitempty"`
	Icon     string   `json:"icon"`
	PlaceID  string   `json:"place_id,omitempty"`
	Rating   *float64 `json:"rating,omitempty"`
}
