package observability

import (
	"errors"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	vo "bodygraph/domain/core/valueobjects"
	pkgerrors "bodygraph/pkg/errors"
)

// Collector holds all Prometheus metrics for the chart engine. Each
// collector owns its registry so tests can create as many as they need.
type Collector struct {
	registry *prometheus.Registry

	// Calculation metrics
	Calculations        *prometheus.CounterVec
	CalculationDuration *prometheus.HistogramVec
	SampleFailures      *prometheus.CounterVec

	// Query bus metrics
	Queries       *prometheus.CounterVec
	QueryDuration *prometheus.HistogramVec

	// Cache metrics
	CacheHits   prometheus.Counter
	CacheMisses prometheus.Counter
}

// NewCollector creates a new metrics collector with the given namespace
func NewCollector(namespace string) *Collector {
	registry := prometheus.NewRegistry()

	calculations := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calculations_total",
			Help:      "Total number of chart calculations",
		},
		[]string{"accuracy", "outcome"},
	)

	calculationDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "calculation_duration_seconds",
			Help:      "Chart calculation duration in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"accuracy"},
	)

	sampleFailures := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sample_failures_total",
			Help:      "Hourly samples skipped during unknown-time calculations",
		},
		[]string{"hour"},
	)

	queries := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "queries_total",
			Help:      "Total number of queries by type and result",
		},
		[]string{"metric", "query"},
	)

	queryDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "query_duration_seconds",
			Help:      "Query handling duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"query"},
	)

	cacheHits := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_hits_total",
			Help:      "Total number of chart cache hits",
		},
	)

	cacheMisses := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_misses_total",
			Help:      "Total number of chart cache misses",
		},
	)

	registry.MustRegister(
		calculations,
		calculationDuration,
		sampleFailures,
		queries,
		queryDuration,
		cacheHits,
		cacheMisses,
	)

	return &Collector{
		registry:            registry,
		Calculations:        calculations,
		CalculationDuration: calculationDuration,
		SampleFailures:      sampleFailures,
		Queries:             queries,
		QueryDuration:       queryDuration,
		CacheHits:           cacheHits,
		CacheMisses:         cacheMisses,
	}
}

// Registry returns the registry the metrics are registered with
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// ObserveCalculation records one finished calculation
func (c *Collector) ObserveCalculation(accuracy vo.Accuracy, duration time.Duration, err error) {
	c.Calculations.WithLabelValues(string(accuracy), outcome(err)).Inc()
	c.CalculationDuration.WithLabelValues(string(accuracy)).Observe(duration.Seconds())
}

// ObserveSampleFailure records a skipped hourly sample
func (c *Collector) ObserveSampleFailure(hour int) {
	c.SampleFailures.WithLabelValues(strconv.Itoa(hour)).Inc()
}

// RecordCacheHit counts a cache lookup
func (c *Collector) RecordCacheHit(hit bool) {
	if hit {
		c.CacheHits.Inc()
		return
	}
	c.CacheMisses.Inc()
}

// Increment increments a query counter
func (c *Collector) Increment(metric, label string) {
	c.Queries.WithLabelValues(metric, label).Inc()
}

// StartTimer starts a duration measurement for a query
func (c *Collector) StartTimer(metric, label string) *Timer {
	return &Timer{
		start:    time.Now(),
		observer: c.QueryDuration.WithLabelValues(label),
	}
}

// Timer measures one duration
type Timer struct {
	start    time.Time
	observer prometheus.Observer
}

// Stop records the elapsed time
func (t *Timer) Stop() {
	t.observer.Observe(time.Since(t.start).Seconds())
}

// outcome labels an error by its domain kind
func outcome(err error) string {
	if err == nil {
		return "success"
	}
	var domainErr *pkgerrors.DomainError
	if errors.As(err, &domainErr) {
		return string(domainErr.Type)
	}
	if pkgerrors.IsValidation(err) {
		return string(pkgerrors.DomainValidationError)
	}
	return "internal"
}
