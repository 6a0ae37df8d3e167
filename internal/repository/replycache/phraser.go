// Package replycache caches phrased assistant replies in a key-value store.
package replycache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kailas-cloud/wainnrooh/internal/db"
	"github.com/kailas-cloud/wainnrooh/internal/domain/intent"
)

const keySpace = "reply_cache:"

// DefaultTTL bounds how long a phrased reply is reused.
const DefaultTTL = 24 * time.Hour

// Phraser is the decorated reply phrasing contract.
type Phraser interface {
	Phrase(ctx context.Context, query string, reply intent.Reply) (string, error)
}

// store is the consumer interface for the reply cache (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// CachedPhraser reuses phrased replies for identical query and result pairs.
type CachedPhraser struct {
	inner      Phraser
	store      store
	prefix     string
	ttl        time.Duration
	cacheTotal *prometheus.CounterVec
	logger     *zap.Logger
}

// New creates a caching decorator.
// cacheTotal is a counter vec with label "result" ("hit"/"miss"), passed explicitly; may be nil.
func New(
	inner Phraser,
	s store,
	keyPrefix string,
	ttl time.Duration,
	cacheTotal *prometheus.CounterVec,
	logger *zap.Logger,
) *CachedPhraser {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &CachedPhraser{
		inner:      inner,
		store:      s,
		prefix:     keyPrefix + keySpace,
		ttl:        ttl,
		cacheTotal: cacheTotal,
		logger:     logger,
	}
}

// Phrase returns a cached sentence or calls the inner phraser.
// Cache failures degrade to a pass-through call.
func (c *CachedPhraser) Phrase(ctx context.Context, query string, reply intent.Reply) (string, error) {
	key := c.cacheKey(query, reply)

	if msg, ok := c.getFromCache(ctx, key); ok {
		c.incCache("hit")
		return msg, nil
	}
	c.incCache("miss")

	msg, err := c.inner.Phrase(ctx, query, reply)
	if err != nil {
		return "", fmt.Errorf("phrase reply: %w", err)
	}

	if msg != "" {
		c.putToCache(ctx, key, msg)
	}
	return msg, nil
}

func (c *CachedPhraser) incCache(result string) {
	if c.cacheTotal != nil {
		c.cacheTotal.WithLabelValues(result).Inc()
	}
}

// cacheKey covers the query and every input the sentence is built from.
func (c *CachedPhraser) cacheKey(query string, reply intent.Reply) string {
	h := sha256.New()
	h.Write([]byte(query))
	h.Write([]byte{0})
	h.Write([]byte(reply.Message))
	for i := range reply.Places {
		h.Write([]byte{0})
		h.Write([]byte(reply.Places[i].ID))
	}
	return c.prefix + hex.EncodeToString(h.Sum(nil))
}

func (c *CachedPhraser) getFromCache(ctx context.Context, key string) (string, bool) {
	data, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, db.ErrKeyNotFound) {
			c.logger.Warn("Failed to get cached reply", zap.String("key", key), zap.Error(err))
		}
		return "", false
	}
	if len(data) == 0 {
		return "", false
	}
	return string(data), true
}

func (c *CachedPhraser) putToCache(ctx context.Context, key, msg string) {
	if err := c.store.SetWithTTL(ctx, key, []byte(msg), c.ttl); err != nil {
		c.logger.Warn("Failed to cache reply", zap.String("key", key), zap.Error(err))
	}
}
