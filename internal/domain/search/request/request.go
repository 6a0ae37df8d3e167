package request

import (
	"fmt"
	"unicode/utf8"

	"github.com/kailas-cloud/wainnrooh/internal/domain/search/filter"
	"github.com/kailas-cloud/wainnrooh/internal/domain/search/order"
)

// Search parameter limits.
const (
	// MaxQueryLength is the maximum allowed search query length in runes.
	MaxQueryLength = 256
	DefaultLimit   = 20
	MaxLimit       = 100
)

// Limits bounds a request. Zero fields fall back to the package defaults.
type Limits struct {
	DefaultLimit   int
	MaxLimit       int
	MaxQueryLength int
}

func (l Limits) withDefaults() Limits {
	if l.DefaultLimit <= 0 {
		l.DefaultLimit = DefaultLimit
	}
	if l.MaxLimit <= 0 {
		l.MaxLimit = MaxLimit
	}
	if l.DefaultLimit > l.MaxLimit {
		l.DefaultLimit = l.MaxLimit
	}
	if l.MaxQueryLength <= 0 {
		l.MaxQueryLength = MaxQueryLength
	}
	return l
}

// Request is a validated search query. An empty query is allowed and lists the catalog.
type Request struct {
	query   string
	filters filter.Set
	order   order.Key
	limit   int
}

// New validates and normalizes search parameters.
// Defaults: order=relevance, limit=lim.DefaultLimit. Limit is clamped to lim.MaxLimit.
func New(query string, filters filter.Set, key order.Key, limit int, lim Limits) (Request, error) {
	lim = lim.withDefaults()
	if utf8.RuneCountInString(query) > lim.MaxQueryLength {
		return Request{}, fmt.Errorf("query too long (max %d chars)", lim.MaxQueryLength)
	}
	if key == "" {
		key = order.Relevance
	}
	if !key.IsValid() {
		return Request{}, fmt.Errorf("invalid sort order: %q", key)
	}
	if limit < 0 {
		return Request{}, fmt.Errorf("limit must not be negative")
	}
	if limit == 0 {
		limit = lim.DefaultLimit
	}
	if limit > lim.MaxLimit {
		limit = lim.MaxLimit
	}

	return Request{query: query, filters: filters, order: key, limit: limit}, nil
}

// Query returns the raw search text.
func (r *Request) Query() string { return r.query }

// Filters returns the structured filter set.
func (r *Request) Filters() filter.Set { return r.filters }

// Order returns the sort key.
func (r *Request) Order() order.Key { return r.order }

// Limit returns the maximum results to return.
func (r *Request) Limit() int { return r.limit }
