// Package place defines the catalog record and its compact wire form.
package place

// UnspecifiedNeighborhood is stored when a record carries no neighborhood.
const (
	UnspecifiedNeighborhood   = "غير محدد"
	UnspecifiedNeighborhoodEn = "unspecified"
)

// Place is a catalog record in canonical form.
// Rating and ReviewCount come from an external source and are only used as ranking signals.
type Place struct {
	ID             string     `json:"id"`
	NameAr         string     `json:"name_ar"`
	NameEn         string     `json:"name_en,omitempty"`
	Category       string     `json:"category"`
	CategoryAr     string     `json:"category_ar,omitempty"`
	CategoryEn     string     `json:"category_en,omitempty"`
	Neighborhood   string     `json:"neighborhood,omitempty"`
	NeighborhoodEn string     `json:"neighborhood_en,omitempty"`
	DescriptionAr  string     `json:"description_ar,omitempty"`
	Rating         float64    `json:"rating"`
	ReviewCount    int        `json:"review_count"`
	PriceLevel     PriceLevel `json:"price_level,omitempty"`
	Lat            *float64   `json:"lat,omitempty"`
	Lng            *float64   `json:"lng,omitempty"`
	Trending       bool       `json:"trending"`
	IsNew          bool       `json:"is_new"`
	IsFree         bool       `json:"is_free"`
	Audience       []string   `json:"audience,omitempty"`
	PerfectFor     []string   `json:"perfect_for,omitempty"`
	GoogleMapsURL  string     `json:"google_maps_url,omitempty"`
}

// CategoryLabel returns the Arabic category label, falling back to the category code.
func (p *Place) CategoryLabel() string {
	if p.CategoryAr != "" {
		return p.CategoryAr
	}
	return p.Category
}

// HasNeighborhood reports whether the record names a real neighborhood.
func (p *Place) HasNeighborhood() bool {
	return p.Neighborhood != "" && p.Neighborhood != UnspecifiedNeighborhood
}

// Free reports whether the place is free, by flag or by price tier.
func (p *Place) Free() bool {
	return p.IsFree || p.PriceLevel.IsFree()
}

// withDefaults fills the neighborhood sentinel and keeps IsFree consistent with the price.
func (p Place) withDefaults() Place {
	if p.Neighborhood == "" {
		p.Neighborhood = UnspecifiedNeighborhood
		if p.NeighborhoodEn == "" {
			p.NeighborhoodEn = UnspecifiedNeighborhoodEn
		}
	}
	if p.PriceLevel.IsFree() {
		p.IsFree = true
	}
	if p.Audience == nil {
		p.Audience = []string{}
	}
	if p.PerfectFor == nil {
		p.PerfectFor = []string{}
	}
	return p
}

// Canonical fills the same defaults Decode applies, for records built in code.
func Canonical(p Place) Place {
	return p.withDefaults()
}
