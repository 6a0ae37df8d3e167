package search

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/wainnrooh/internal/domain"
	"github.com/kailas-cloud/wainnrooh/internal/domain/search/request"
	"github.com/kailas-cloud/wainnrooh/internal/domain/search/result"
	"github.com/kailas-cloud/wainnrooh/internal/domain/suggestion"
	"github.com/kailas-cloud/wainnrooh/internal/logger"
	"github.com/kailas-cloud/wainnrooh/internal/metrics"
)

// Operation labels.
const (
	opSearch  = "search"
	opSuggest = "suggest"
	opFacets  = "facets"
	opSimilar = "similar"
)

// Page is a ranked, truncated result list with the size of the full match set.
type Page struct {
	Results []result.Result
	Total   int
}

// Service runs the engine against the current catalog snapshot.
type Service struct {
	catalog Catalog
	recent  RecentRecorder
}

// New creates a search service. recent may be nil.
func New(catalog Catalog, recent RecentRecorder) *Service {
	return &Service{catalog: catalog, recent: recent}
}

// Search scores, ranks and truncates. A non-blank query is remembered under scope.
func (s *Service) Search(ctx context.Context, req *request.Request, scope string) (Page, error) {
	defer observe(opSearch, time.Now())
	ctx = logger.WithQuery(ctx, req.Query())

	idx, err := s.catalog.Index(ctx)
	if err != nil {
		return Page{}, fmt.Errorf("catalog index: %w", err)
	}

	filters := req.Filters()
	matched := Search(idx, req.Query(), &filters)
	ranked := Sort(matched, req.Order())
	if len(ranked) > req.Limit() {
		ranked = ranked[:req.Limit()]
	}
	metrics.SearchResults.WithLabelValues(opSearch).Observe(float64(len(ranked)))

	if s.recent != nil && strings.TrimSpace(req.Query()) != "" {
		s.recent.Add(ctx, scope, strings.TrimSpace(req.Query()))
	}

	logger.FromContext(ctx).Debug("search executed",
		zap.String("order", string(req.Order())),
		zap.Int("matched", len(matched)),
		zap.Int("returned", len(ranked)),
	)
	return Page{Results: ranked, Total: len(matched)}, nil
}

// Suggest returns typed completions for a partial query.
func (s *Service) Suggest(ctx context.Context, partial string, limit int) ([]suggestion.Suggestion, error) {
	defer observe(opSuggest, time.Now())

	idx, err := s.catalog.Index(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog index: %w", err)
	}
	out := Suggest(idx, partial, limit)
	metrics.SearchResults.WithLabelValues(opSuggest).Observe(float64(len(out)))
	return out, nil
}

// Similar returns places like the record id, best first.
func (s *Service) Similar(ctx context.Context, id string, limit int) ([]result.Result, error) {
	defer observe(opSimilar, time.Now())

	idx, err := s.catalog.Index(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog index: %w", err)
	}
	out, ok := Similar(idx, id, limit)
	if !ok {
		return nil, fmt.Errorf("place %q: %w", id, domain.ErrNotFound)
	}
	metrics.SearchResults.WithLabelValues(opSimilar).Observe(float64(len(out)))
	return out, nil
}

// Facets returns the filter values present in the catalog.
func (s *Service) Facets(ctx context.Context) (Facets, error) {
	defer observe(opFacets, time.Now())

	idx, err := s.catalog.Index(ctx)
	if err != nil {
		return Facets{}, fmt.Errorf("catalog index: %w", err)
	}
	return BuildFacets(idx), nil
}

func observe(op string, start time.Time) {
	metrics.SearchRequestsTotal.WithLabelValues(op).Inc()
	metrics.SearchDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}
