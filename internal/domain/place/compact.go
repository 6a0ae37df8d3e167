package place

import (
	"encoding/json"
	"fmt"

	"github.com/kailas-cloud/wainnrooh/internal/domain/category"
)

// Compact is the abbreviated wire form used to shrink the catalog payload.
type Compact struct {
	ID             string   `json:"id"`
	Name           string   `json:"n"`
	NameEn         string   `json:"ne"`
	Category       string   `json:"c"`
	CategoryAr     string   `json:"ca"`
	Neighborhood   string   `json:"h"`
	NeighborhoodEn string   `json:"he"`
	Description    string   `json:"d"`
	Rating         float64  `json:"r"`
	ReviewCount    int      `json:"rc"`
	Price          string   `json:"p"`
	Lat            *float64 `json:"la"`
	Lng            *float64 `json:"lo"`
	Trending       bool     `json:"tr"`
	IsNew          bool     `json:"nw"`
	IsFree         bool     `json:"fr"`
	Audience       []string `json:"au"`
	PerfectFor     []string `json:"pf"`
	MapsURL        string   `json:"gm"`
}

// Expand maps a compact record onto the canonical shape.
func Expand(c Compact) Place {
	p := Place{
		ID:             c.ID,
		NameAr:         c.Name,
		NameEn:         c.NameEn,
		Category:       c.Category,
		CategoryAr:     c.CategoryAr,
		Neighborhood:   c.Neighborhood,
		NeighborhoodEn: c.NeighborhoodEn,
		DescriptionAr:  c.Description,
		Rating:         c.Rating,
		ReviewCount:    c.ReviewCount,
		PriceLevel:     KeepPrice(c.Price),
		Lat:            c.Lat,
		Lng:            c.Lng,
		Trending:       c.Trending,
		IsNew:          c.IsNew,
		IsFree:         c.IsFree,
		Audience:       c.Audience,
		PerfectFor:     c.PerfectFor,
		GoogleMapsURL:  c.MapsURL,
	}
	if p.CategoryAr == "" && p.Category != "" {
		p.CategoryAr = category.Label(p.Category)
	}
	return p.withDefaults()
}

// Decode parses one catalog entry in either form. An object carrying the canonical
// "name_ar" key is taken as already expanded and passed through unchanged apart
// from defaults.
func Decode(raw []byte) (Place, error) {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(raw, &keys); err != nil {
		return Place{}, fmt.Errorf("decode place: %w", err)
	}

	if _, ok := keys["name_ar"]; ok {
		var p Place
		if err := json.Unmarshal(raw, &p); err != nil {
			return Place{}, fmt.Errorf("decode place: %w", err)
		}
		return p.withDefaults(), nil
	}

	var c Compact
	if err := json.Unmarshal(raw, &c); err != nil {
		return Place{}, fmt.Errorf("decode compact place: %w", err)
	}
	return Expand(c), nil
}
