package intent

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/wainnrooh/internal/domain/intent"
	"github.com/kailas-cloud/wainnrooh/internal/domain/place"
	"github.com/kailas-cloud/wainnrooh/internal/logger"
	"github.com/kailas-cloud/wainnrooh/internal/metrics"
)

const opAsk = "ask"

// Service answers guided natural-language requests.
type Service struct {
	catalog Catalog
	phraser Phraser
}

// New creates an intent service. phraser may be nil; the rule-based reply is then final.
func New(catalog Catalog, phraser Phraser) *Service {
	return &Service{catalog: catalog, phraser: phraser}
}

// Ask parses query, runs the attribute search and builds the reply. A query
// that fills no slot falls back to relevance search over its words.
// A failing phraser never fails the request.
func (s *Service) Ask(ctx context.Context, query string) (intent.Reply, error) {
	start := time.Now()
	defer func() {
		metrics.SearchRequestsTotal.WithLabelValues(opAsk).Inc()
		metrics.SearchDuration.WithLabelValues(opAsk).Observe(time.Since(start).Seconds())
	}()

	ctx = logger.WithQuery(ctx, query)

	idx, err := s.catalog.Index(ctx)
	if err != nil {
		return intent.Reply{}, fmt.Errorf("catalog index: %w", err)
	}

	in := Parse(query)
	var (
		places       []place.Place
		freeTextUsed bool
	)
	if len(in.MatchedFilters) == 0 {
		places, freeTextUsed = freeText(idx, query, in)
	}
	if !freeTextUsed {
		places = Apply(idx.Places(), in)
	}
	reply := intent.Reply{Intent: in, Places: places, Message: Respond(in, places)}
	metrics.SearchResults.WithLabelValues(opAsk).Observe(float64(len(places)))

	log := logger.FromContext(ctx)
	if s.phraser != nil && len(places) > 0 {
		msg, perr := s.phraser.Phrase(ctx, query, reply)
		switch {
		case perr != nil:
			log.Warn("reply phrasing failed, using rule-based reply", zap.Error(perr))
		case strings.TrimSpace(msg) != "":
			reply.Message = strings.TrimSpace(msg)
		}
	}

	log.Debug("ask executed",
		zap.Strings("matched_filters", in.MatchedFilters),
		zap.Bool("free_text", freeTextUsed),
		zap.Int("returned", len(places)),
	)
	return reply, nil
}
