package search

import (
	"cmp"
	"slices"

	"github.com/kailas-cloud/wainnrooh/internal/domain/index"
	"github.com/kailas-cloud/wainnrooh/internal/domain/search/result"
)

// DefaultSimilarLimit applies when a caller passes no positive limit.
const DefaultSimilarLimit = 10

// Affinity awards added to the candidate's rating.
const (
	sameCategory     = 2
	sameNeighborhood = 1
)

// Similar returns records sharing the category or the neighborhood of the
// record id, the record itself excluded. Candidates are ranked by affinity
// plus rating, then by review count. ok is false when id is not indexed.
func Similar(idx *index.Index, id string, limit int) (similar []result.Result, ok bool) {
	var self *index.Entry
	entries := idx.Entries()
	for i := range entries {
		if entries[i].Place().ID == id {
			self = &entries[i]
			break
		}
	}
	if self == nil {
		return nil, false
	}
	if limit <= 0 {
		limit = DefaultSimilarLimit
	}

	out := make([]result.Result, 0)
	for i := range entries {
		e := &entries[i]
		if e.Place().ID == id {
			continue
		}
		var affinity float64
		if self.Category() != "" && e.Category() == self.Category() {
			affinity += sameCategory
		}
		if self.Neighborhood() != "" && e.Neighborhood() == self.Neighborhood() {
			affinity += sameNeighborhood
		}
		if affinity == 0 {
			continue
		}
		out = append(out, result.New(e.Place(), affinity+e.Place().Rating))
	}

	slices.SortStableFunc(out, func(a, b result.Result) int {
		if c := cmp.Compare(b.Score(), a.Score()); c != 0 {
			return c
		}
		return cmp.Compare(b.Place().ReviewCount, a.Place().ReviewCount)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, true
}
