package search

import (
	"cmp"
	"slices"

	"github.com/kailas-cloud/wainnrooh/internal/arabic"
	"github.com/kailas-cloud/wainnrooh/internal/domain/index"
	"github.com/kailas-cloud/wainnrooh/internal/domain/place"
)

// MaxNeighborhoodFacets caps the neighborhood facet list.
const MaxNeighborhoodFacets = 30

// FacetValue is one selectable filter value and how many places carry it.
type FacetValue struct {
	Value string `json:"value"`
	Label string `json:"label,omitempty"`
	Count int    `json:"count"`
}

// Facets lists the filter values present in a catalog.
type Facets struct {
	Categories    []FacetValue       `json:"categories"`
	Neighborhoods []FacetValue       `json:"neighborhoods"`
	Audiences     []FacetValue       `json:"audiences"`
	PerfectFor    []FacetValue       `json:"perfect_for"`
	PriceLevels   []place.PriceLevel `json:"price_levels"`
}

// BuildFacets counts filter values across the index. Lists are ordered by
// descending count, ties in first-seen order. Values that normalize equal
// are counted together under their first spelling.
func BuildFacets(idx *index.Index) Facets {
	cats := newCounter()
	areas := newCounter()
	auds := newCounter()
	occasions := newCounter()
	prices := make(map[place.PriceLevel]bool)

	for _, e := range idx.Entries() {
		p := e.Place()
		if p.Category != "" {
			cats.add(p.Category, p.CategoryLabel())
		}
		if p.HasNeighborhood() {
			areas.add(p.Neighborhood, "")
		}
		for _, a := range p.Audience {
			auds.add(a, "")
		}
		for _, o := range p.PerfectFor {
			occasions.add(o, "")
		}
		if p.PriceLevel.IsValid() {
			prices[p.PriceLevel] = true
		}
	}

	f := Facets{
		Categories:    cats.sorted(0),
		Neighborhoods: areas.sorted(MaxNeighborhoodFacets),
		Audiences:     auds.sorted(0),
		PerfectFor:    occasions.sorted(0),
		PriceLevels:   []place.PriceLevel{},
	}
	for _, l := range place.Levels {
		if prices[l] {
			f.PriceLevels = append(f.PriceLevels, l)
		}
	}
	return f
}

type counter struct {
	pos    map[string]int
	values []FacetValue
}

func newCounter() *counter {
	return &counter{pos: make(map[string]int)}
}

func (c *counter) add(value, label string) {
	key := arabic.Normalize(value)
	if key == "" {
		return
	}
	if i, ok := c.pos[key]; ok {
		c.values[i].Count++
		return
	}
	c.pos[key] = len(c.values)
	c.values = append(c.values, FacetValue{Value: value, Label: label, Count: 1})
}

// sorted returns values by count desc; limit <= 0 means no cap.
func (c *counter) sorted(limit int) []FacetValue {
	out := slices.Clone(c.values)
	if out == nil {
		out = []FacetValue{}
	}
	slices.SortStableFunc(out, func(a, b FacetValue) int {
		return cmp.Compare(b.Count, a.Count)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
