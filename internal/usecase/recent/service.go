// Package recent keeps a short most-recent-first list of executed queries.
package recent

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/kailas-cloud/wainnrooh/internal/logger"
	"github.com/kailas-cloud/wainnrooh/internal/metrics"
)

// DefaultCapacity is the number of queries kept per scope.
const DefaultCapacity = 8

// baseKey is the fixed storage key; a non-empty scope is appended after a colon.
const baseKey = "recent_searches"

// Store operations, used as metric labels.
const (
	opLoad  = "load"
	opSave  = "save"
	opClear = "clear"
)

// Service is a capped, de-duplicated recent-search list. De-duplication and
// the cap are applied by the store in one step, so several server instances
// may share a list.
// Storage failures are logged and counted, never returned: remembering a query is best effort.
type Service struct {
	lists    Lists
	prefix   string
	capacity int
}

// New creates a recent-search service. capacity <= 0 uses DefaultCapacity.
func New(lists Lists, keyPrefix string, capacity int) *Service {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Service{lists: lists, prefix: keyPrefix, capacity: capacity}
}

// Add moves query to the front, dropping an older duplicate and anything past capacity.
// Blank queries are ignored.
func (s *Service) Add(ctx context.Context, scope, query string) {
	query = strings.TrimSpace(query)
	if query == "" {
		return
	}
	if err := s.lists.PushUnique(ctx, s.key(scope), query, s.capacity); err != nil {
		s.fail(ctx, opSave, err)
	}
}

// List returns the stored queries, most recent first. Failures yield an empty list.
func (s *Service) List(ctx context.Context, scope string) []string {
	list, err := s.lists.Range(ctx, s.key(scope), s.capacity)
	if err != nil {
		s.fail(ctx, opLoad, err)
		return []string{}
	}
	if list == nil {
		list = []string{}
	}
	return list
}

// Clear removes every stored query for scope.
func (s *Service) Clear(ctx context.Context, scope string) {
	if err := s.lists.Del(ctx, s.key(scope)); err != nil {
		s.fail(ctx, opClear, err)
	}
}

func (s *Service) key(scope string) string {
	if scope == "" {
		return s.prefix + baseKey
	}
	return s.prefix + baseKey + ":" + scope
}

func (s *Service) fail(ctx context.Context, op string, err error) {
	metrics.RecentStoreErrorsTotal.WithLabelValues(op).Inc()
	logger.FromContext(ctx).Warn("recent searches unavailable",
		zap.String("op", op), zap.Error(err))
}
