package intent

import (
	"cmp"
	"slices"
	"strings"

	"github.com/kailas-cloud/wainnrooh/internal/arabic"
	"github.com/kailas-cloud/wainnrooh/internal/domain/intent"
	"github.com/kailas-cloud/wainnrooh/internal/domain/place"
)

// Apply filters places by every set slot, sorts by the requested order and
// truncates to the limit. The input slice is not modified.
func Apply(places []place.Place, in intent.Intent) []place.Place {
	out := make([]place.Place, 0, len(places))
	for i := range places {
		if matches(&places[i], in) {
			out = append(out, places[i])
		}
	}

	switch in.Sort {
	case intent.SortPriceAsc:
		slices.SortStableFunc(out, func(a, b place.Place) int {
			return cmp.Compare(a.PriceLevel.Rank(), b.PriceLevel.Rank())
		})
	case intent.SortPriceDesc:
		slices.SortStableFunc(out, func(a, b place.Place) int {
			return cmp.Compare(b.PriceLevel.Rank(), a.PriceLevel.Rank())
		})
	case intent.SortNewest:
		// new places first, catalog order within each group
		slices.SortStableFunc(out, func(a, b place.Place) int {
			switch {
			case a.IsNew == b.IsNew:
				return 0
			case a.IsNew:
				return -1
			}
			return 1
		})
	default:
		slices.SortStableFunc(out, func(a, b place.Place) int {
			if c := cmp.Compare(b.Rating, a.Rating); c != 0 {
				return c
			}
			return cmp.Compare(b.ReviewCount, a.ReviewCount)
		})
	}

	limit := in.Limit
	if limit <= 0 {
		limit = intent.DefaultLimit
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func matches(p *place.Place, in intent.Intent) bool {
	if in.Category != "" &&
		!arabic.Equal(p.Category, in.Category) && !arabic.Equal(p.CategoryAr, in.Category) {
		return false
	}
	if in.Cuisine != "" {
		text := arabic.Normalize(p.DescriptionAr + " " + p.NameEn + " " + p.NameAr)
		if !containsAny(text, cuisineWords(in.Cuisine)) {
			return false
		}
	}
	if in.Price != place.PriceUnknown && p.PriceLevel != in.Price {
		return false
	}
	if in.Audience != "" && !anyTagContains(p.Audience, in.Audience) && !anyTagContains(p.PerfectFor, in.Audience) {
		return false
	}
	if in.PerfectFor != "" && !anyTagContains(p.PerfectFor, in.PerfectFor) {
		return false
	}
	if in.Neighborhood != "" {
		area := arabic.Normalize(p.Neighborhood + " " + p.NeighborhoodEn)
		words := aliases(in.Neighborhood)
		if len(words) == 0 {
			words = []string{arabic.Normalize(in.Neighborhood)}
		}
		if !containsAny(area, words) {
			return false
		}
	}
	if in.FreeOnly && !p.Free() {
		return false
	}
	if in.NewOnly && !p.IsNew {
		return false
	}
	return true
}

func anyTagContains(tags []string, value string) bool {
	v := arabic.Normalize(value)
	for _, t := range tags {
		if strings.Contains(arabic.Normalize(t), v) {
			return true
		}
	}
	return false
}
