package wainnrooh

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/kailas-cloud/wainnrooh/internal/domain"
)

// Values of the status label. A listing that succeeds with nothing in it is
// "empty", so dashboards can tell dead queries from failures.
const (
	statusOK        = "ok"
	statusEmpty     = "empty"
	statusNotFound  = "not_found"
	statusNotLoaded = "catalog_not_loaded"
	statusInvalid   = "invalid_request"
	statusError     = "error"
)

// notListing marks operations that return a single value, not a result list.
const notListing = -1

// sdkMetrics holds prometheus metrics registered for the SDK.
type sdkMetrics struct {
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	results    *prometheus.HistogramVec
}

func newSDKMetrics(reg prometheus.Registerer) (*sdkMetrics, error) {
	m := &sdkMetrics{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wainnrooh",
			Subsystem: "sdk",
			Name:      "operations_total",
			Help:      "SDK operations by type and outcome.",
		}, []string{"operation", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "wainnrooh",
			Subsystem: "sdk",
			Name:      "operation_duration_seconds",
			Help:      "SDK operation duration in seconds.",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}, []string{"operation"}),
		results: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "wainnrooh",
			Subsystem: "sdk",
			Name:      "results_returned",
			Help:      "Places or suggestions returned per search, suggest, ask or similar call.",
			Buckets:   []float64{0, 1, 3, 5, 10, 20, 50},
		}, []string{"operation"}),
	}
	if err := registerOrReuse(reg, &m.operations); err != nil {
		return nil, err
	}
	if err := registerOrReuse(reg, &m.duration); err != nil {
		return nil, err
	}
	if err := registerOrReuse(reg, &m.results); err != nil {
		return nil, err
	}
	return m, nil
}

// registerOrReuse registers a collector or reuses an existing one.
func registerOrReuse[T prometheus.Collector](reg prometheus.Registerer, c *T) error {
	if err := reg.Register(*c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			existing, ok := are.ExistingCollector.(T)
			if !ok {
				return fmt.Errorf("wainnrooh: metric already registered with incompatible type: %T", are.ExistingCollector)
			}
			*c = existing
			return nil
		}
		return fmt.Errorf("wainnrooh: register metric: %w", err)
	}
	return nil
}

// outcome classifies a finished operation for the status label.
func outcome(err error, results int) string {
	switch {
	case err == nil && results == 0:
		return statusEmpty
	case err == nil:
		return statusOK
	case errors.Is(err, domain.ErrNotFound):
		return statusNotFound
	case errors.Is(err, domain.ErrCatalogNotLoaded):
		return statusNotLoaded
	case errors.Is(err, domain.ErrInvalidRequest):
		return statusInvalid
	}
	return statusError
}

// observer logs and counts SDK operations.
type observer struct {
	logger  *slog.Logger
	metrics *sdkMetrics
}

func newObserver(logger *slog.Logger, reg prometheus.Registerer) (*observer, error) {
	var m *sdkMetrics
	if reg != nil {
		var err error
		m, err = newSDKMetrics(reg)
		if err != nil {
			return nil, err
		}
	}
	return &observer{logger: logger, metrics: m}, nil
}

func (o *observer) observe(op string, start time.Time, err error) {
	o.observeList(op, start, notListing, err)
}

// observeList also records how many results a listing operation returned.
func (o *observer) observeList(op string, start time.Time, results int, err error) {
	if o == nil {
		return
	}
	dur := time.Since(start)
	status := outcome(err, results)

	if o.metrics != nil {
		o.metrics.operations.WithLabelValues(op, status).Inc()
		o.metrics.duration.WithLabelValues(op).Observe(dur.Seconds())
		if results != notListing && err == nil {
			o.metrics.results.WithLabelValues(op).Observe(float64(results))
		}
	}

	if o.logger == nil {
		return
	}
	attrs := []any{"op", op, "status", status, "duration", dur}
	if results != notListing {
		attrs = append(attrs, "results", results)
	}
	switch {
	case err != nil:
		o.logger.Warn("operation failed", append(attrs, "error", err)...)
	case status == statusEmpty:
		o.logger.Info("operation returned nothing", attrs...)
	default:
		o.logger.Debug("operation completed", attrs...)
	}
}
