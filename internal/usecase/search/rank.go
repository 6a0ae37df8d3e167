package search

import (
	"cmp"
	"math/rand/v2"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/kailas-cloud/wainnrooh/internal/domain/place"
	"github.com/kailas-cloud/wainnrooh/internal/domain/search/order"
	"github.com/kailas-cloud/wainnrooh/internal/domain/search/result"
)

// minValueDivisor keeps the free tier finite in the value score.
const minValueDivisor = 0.5

// ValueScore is the rating divided by the price rank. Free places divide by
// minValueDivisor; unpriced ones use the middle of the scale.
func ValueScore(p *place.Place) float64 {
	return p.Rating / max(p.PriceLevel.Rank(), minValueDivisor)
}

// Sort returns a reordered copy of results. The input is not modified and
// exact ties keep their input order. order.Random is a uniform shuffle and
// is not reproducible. Unknown keys return the input order.
func Sort(results []result.Result, key order.Key) []result.Result {
	out := slices.Clone(results)
	if len(out) < 2 {
		return out
	}

	switch key {
	case order.Relevance:
		slices.SortStableFunc(out, func(a, b result.Result) int {
			return cmp.Compare(b.Score(), a.Score())
		})
	case order.RatingDesc:
		slices.SortStableFunc(out, func(a, b result.Result) int {
			if c := cmp.Compare(b.Place().Rating, a.Place().Rating); c != 0 {
				return c
			}
			return cmp.Compare(b.Place().ReviewCount, a.Place().ReviewCount)
		})
	case order.RatingAsc:
		slices.SortStableFunc(out, func(a, b result.Result) int {
			return cmp.Compare(a.Place().Rating, b.Place().Rating)
		})
	case order.ReviewsDesc:
		slices.SortStableFunc(out, func(a, b result.Result) int {
			return cmp.Compare(b.Place().ReviewCount, a.Place().ReviewCount)
		})
	case order.PriceAsc:
		slices.SortStableFunc(out, func(a, b result.Result) int {
			return cmp.Compare(a.Place().PriceLevel.Rank(), b.Place().PriceLevel.Rank())
		})
	case order.PriceDesc:
		slices.SortStableFunc(out, func(a, b result.Result) int {
			return cmp.Compare(b.Place().PriceLevel.Rank(), a.Place().PriceLevel.Rank())
		})
	case order.Name:
		// A Collator keeps scratch buffers and is not safe for concurrent use.
		c := collate.New(language.Arabic)
		slices.SortStableFunc(out, func(a, b result.Result) int {
			return c.CompareString(a.Place().NameAr, b.Place().NameAr)
		})
	case order.Trending:
		slices.SortStableFunc(out, func(a, b result.Result) int {
			if a.Place().Trending != b.Place().Trending {
				if a.Place().Trending {
					return -1
				}
				return 1
			}
			return cmp.Compare(b.Place().Rating, a.Place().Rating)
		})
	case order.BestValue:
		slices.SortStableFunc(out, func(a, b result.Result) int {
			if c := cmp.Compare(ValueScore(b.Place()), ValueScore(a.Place())); c != 0 {
				return c
			}
			return cmp.Compare(b.Place().Rating, a.Place().Rating)
		})
	case order.Random:
		rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	}
	return out
}
