package wainnrooh

import (
	"context"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// Phraser rewrites the assistant's rule-based message, e.g. with a language model.
type Phraser interface {
	Phrase(ctx context.Context, query string, reply Reply) (string, error)
}

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	catalogPath string
	places      []Place

	driver    string // "memory", "valkey" or "redis"
	addrs     []string
	password  string
	keyPrefix string

	recentCapacity int
	phraser        Phraser

	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

// WithCatalogFile loads the catalog from a JSON file. Reload re-reads it.
func WithCatalogFile(path string) Option {
	return optionFunc(func(c *clientConfig) {
		c.catalogPath = path
	})
}

// WithPlaces serves a fixed in-memory catalog.
func WithPlaces(places []Place) Option {
	return optionFunc(func(c *clientConfig) {
		c.places = places
	})
}

// WithValkey stores recent searches in a Valkey instance.
func WithValkey(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = "valkey"
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithRedis stores recent searches in a Redis instance.
func WithRedis(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = "redis"
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithKeyPrefix namespaces every stored key. Default: "wainnrooh:".
func WithKeyPrefix(prefix string) Option {
	return optionFunc(func(c *clientConfig) {
		c.keyPrefix = prefix
	})
}

// WithRecentCapacity caps each recent-search list. Default: 8.
func WithRecentCapacity(n int) Option {
	return optionFunc(func(c *clientConfig) {
		c.recentCapacity = n
	})
}

// WithPhraser enables reply rewriting for Ask. Failures fall back to the
// rule-based message.
func WithPhraser(p Phraser) Option {
	return optionFunc(func(c *clientConfig) {
		c.phraser = p
	})
}

// WithLogger enables structured logging for SDK operations.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers SDK metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
