// Package catalog owns the immutable catalog snapshot shared by every query.
package catalog

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/wainnrooh/internal/domain"
	"github.com/kailas-cloud/wainnrooh/internal/domain/index"
	"github.com/kailas-cloud/wainnrooh/internal/domain/place"
	"github.com/kailas-cloud/wainnrooh/internal/logger"
	"github.com/kailas-cloud/wainnrooh/internal/metrics"
)

// Snapshot is one loaded catalog version. It is never modified after creation.
type Snapshot struct {
	Index    *index.Index
	LoadedAt time.Time
}

// Stats describes the current snapshot.
type Stats struct {
	Loaded   bool      `json:"loaded"`
	Places   int       `json:"places"`
	LoadedAt time.Time `json:"loaded_at,omitzero"`
}

// Service holds the current snapshot. Reads are lock-free; a reload builds a
// new index and swaps it in whole, so in-flight queries keep the old one.
type Service struct {
	loader  Loader
	current atomic.Pointer[Snapshot]
	// serializes reloads
	reloadMu sync.Mutex
	now      func() time.Time
}

// New creates a catalog service. No snapshot exists until Reload succeeds.
func New(loader Loader) *Service {
	return &Service{loader: loader, now: time.Now}
}

// Reload loads every record, rebuilds the index and publishes it.
// On failure the previous snapshot stays in place.
func (s *Service) Reload(ctx context.Context) (Stats, error) {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	records, err := s.loader.Load(ctx)
	if err != nil {
		metrics.CatalogReloadsTotal.WithLabelValues("error").Inc()
		return s.Stats(), fmt.Errorf("load catalog: %w", err)
	}

	snap := &Snapshot{Index: index.Build(records), LoadedAt: s.now()}
	s.current.Store(snap)

	metrics.CatalogReloadsTotal.WithLabelValues("ok").Inc()
	metrics.CatalogPlaces.Set(float64(snap.Index.Len()))
	logger.FromContext(ctx).Info("catalog loaded", zap.Int("places", snap.Index.Len()))
	return s.Stats(), nil
}

// Index returns the current index or domain.ErrCatalogNotLoaded.
func (s *Service) Index(_ context.Context) (*index.Index, error) {
	snap := s.current.Load()
	if snap == nil {
		return nil, domain.ErrCatalogNotLoaded
	}
	return snap.Index, nil
}

// Place returns one record by id.
func (s *Service) Place(ctx context.Context, id string) (place.Place, error) {
	idx, err := s.Index(ctx)
	if err != nil {
		return place.Place{}, err
	}
	p, ok := idx.Place(id)
	if !ok {
		return place.Place{}, fmt.Errorf("place %q: %w", id, domain.ErrNotFound)
	}
	return p, nil
}

// Stats reports the current snapshot size.
func (s *Service) Stats() Stats {
	snap := s.current.Load()
	if snap == nil {
		return Stats{}
	}
	return Stats{Loaded: true, Places: snap.Index.Len(), LoadedAt: snap.LoadedAt}
}

// Loaded reports whether a snapshot is available.
func (s *Service) Loaded() bool {
	return s.current.Load() != nil
}
