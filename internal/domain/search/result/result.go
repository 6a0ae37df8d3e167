package result

import "github.com/kailas-cloud/wainnrooh/internal/domain/place"

// Result is a single search hit: a record and its relevance score.
type Result struct {
	place *place.Place
	score float64
}

// New creates a search result.
func New(p *place.Place, score float64) Result {
	return Result{place: p, score: score}
}

// Place returns the matched record.
func (r *Result) Place() *place.Place { return r.place }

// ID returns the record identifier.
func (r *Result) ID() string { return r.place.ID }

// Score returns the relevance score.
func (r *Result) Score() float64 { return r.score }

// Places unwraps results into their records, preserving order.
func Places(results []Result) []place.Place {
	out := make([]place.Place, len(results))
	for i := range results {
		out[i] = *results[i].place
	}
	return out
}
