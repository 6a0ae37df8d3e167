package metrics

import "github.com/prometheus/client_golang/prometheus"

// Search engine Prometheus metrics.
var (
	SearchRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wainnrooh",
			Name:      "search_requests_total",
			Help:      "Total number of engine operations",
		},
		[]string{"operation"}, // search / suggest / ask / facets
	)

	SearchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "wainnrooh",
			Name:      "search_duration_seconds",
			Help:      "Engine operation duration in seconds",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		},
		[]string{"operation"},
	)

	SearchResults = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "wainnrooh",
			Name:      "search_results",
			Help:      "Number of results returned per operation",
			Buckets:   []float64{0, 1, 5, 10, 20, 50, 100},
		},
		[]string{"operation"},
	)

	CatalogPlaces = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "wainnrooh",
			Name:      "catalog_places",
			Help:      "Number of places in the loaded catalog",
		},
	)

	CatalogReloadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wainnrooh",
			Name:      "catalog_reloads_total",
			Help:      "Catalog load attempts",
		},
		[]string{"status"}, // "ok" / "error"
	)

	RecentStoreErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wainnrooh",
			Name:      "recent_store_errors_total",
			Help:      "Swallowed recent-search storage failures",
		},
		[]string{"op"},
	)

	AssistantRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wainnrooh",
			Name:      "assistant_requests_total",
			Help:      "Reply phrasing requests to the language model",
		},
		[]string{"model", "status"},
	)

	AssistantCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wainnrooh",
			Name:      "assistant_cache_total",
			Help:      "Phrased reply cache hits and misses",
		},
		[]string{"result"}, // "hit" / "miss"
	)

	AssistantBudgetExceededTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wainnrooh",
			Name:      "assistant_budget_exceeded_total",
			Help:      "Phrasing calls refused because the call budget was spent",
		},
		[]string{"period"}, // "daily" / "monthly"
	)
)

var searchMetricsRegistered bool

// RegisterSearchMetrics registers engine, catalog and assistant metrics. Must be called once from main.
func RegisterSearchMetrics() {
	if searchMetricsRegistered {
		return
	}
	prometheus.MustRegister(SearchRequestsTotal)
	prometheus.MustRegister(SearchDuration)
	prometheus.MustRegister(SearchResults)
	prometheus.MustRegister(CatalogPlaces)
	prometheus.MustRegister(CatalogReloadsTotal)
	prometheus.MustRegister(RecentStoreErrorsTotal)
	prometheus.MustRegister(AssistantRequestsTotal)
	prometheus.MustRegister(AssistantCacheTotal)
	prometheus.MustRegister(AssistantBudgetExceededTotal)
	searchMetricsRegistered = true
}
