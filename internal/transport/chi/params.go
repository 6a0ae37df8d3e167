package chi

import (
	"fmt"
	"net/http"

	"github.com/oapi-codegen/runtime"
)

// bindSearchParams binds the optional GET /search parameters.
func bindSearchParams(r *http.Request) (SearchParams, error) {
	var p SearchParams
	q := r.URL.Query()

	binds := []struct {
		name string
		dest any
	}{
		{"q", &p.Q},
		{"category", &p.Category},
		{"neighborhood", &p.Neighborhood},
		{"price", &p.Price},
		{"audience", &p.Audience},
		{"perfect_for", &p.PerfectFor},
		{"free", &p.Free},
		{"min_rating", &p.MinRating},
		{"sort", &p.Sort},
		{"limit", &p.Limit},
	}
	for _, b := range binds {
		if err := runtime.BindQueryParameter("form", true, false, b.name, q, b.dest); err != nil {
			return SearchParams{}, fmt.Errorf("invalid format for parameter %s: %w", b.name, err)
		}
	}
	return p, nil
}

// bindSuggestParams binds GET /suggest parameters. q is required.
func bindSuggestParams(r *http.Request) (SuggestParams, error) {
	var p SuggestParams
	q := r.URL.Query()

	if err := runtime.BindQueryParameter("form", true, true, "q", q, &p.Q); err != nil {
		return SuggestParams{}, fmt.Errorf("invalid format for parameter q: %w", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "limit", q, &p.Limit); err != nil {
		return SuggestParams{}, fmt.Errorf("invalid format for parameter limit: %w", err)
	}
	return p, nil
}

// bindAskParams binds GET /ask parameters. q is required.
func bindAskParams(r *http.Request) (AskParams, error) {
	var p AskParams
	if err := runtime.BindQueryParameter("form", true, true, "q", r.URL.Query(), &p.Q); err != nil {
		return AskParams{}, fmt.Errorf("invalid format for parameter q: %w", err)
	}
	return p, nil
}

// bindSimilarParams binds the optional GET /places/{id}/similar limit.
func bindSimilarParams(r *http.Request) (SimilarParams, error) {
	var p SimilarParams
	if err := runtime.BindQueryParameter("form", true, false, "limit", r.URL.Query(), &p.Limit); err != nil {
		return SimilarParams{}, fmt.Errorf("invalid format for parameter limit: %w", err)
	}
	return p, nil
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
