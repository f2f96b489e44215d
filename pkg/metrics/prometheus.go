// Package metrics provides Prometheus metrics for the dashboard's
// polling and rendering pipeline.
package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HTTP server timeouts for the optional metrics listener.
const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// Manager manages the Prometheus metrics for the dashboard.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         *prometheus.Registry

	pollCycles        prometheus.Counter
	pollFailures      prometheus.Counter
	fetchErrors       *prometheus.CounterVec
	fetchLatency      *prometheus.HistogramVec
	rasterizeDuration prometheus.Histogram
	alertsSent        prometheus.Counter
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "nbacli",
		subsystem:        "dashboard",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		registry:         prometheus.NewRegistry(),
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.pollCycles = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "poll_cycles_total",
		Help:      "Total number of completed poll cycles",
	})

	m.pollFailures = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "poll_failures_total",
		Help:      "Total number of poll cycles that skipped a redraw after a fetch failure",
	})

	m.fetchErrors = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "fetch_errors_total",
			Help:      "Total number of upstream fetch errors by endpoint",
		},
		[]string{"endpoint"},
	)

	m.fetchLatency = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "fetch_latency_seconds",
			Help:      "Histogram of upstream fetch latency by endpoint",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint"},
	)

	m.rasterizeDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rasterize_duration_seconds",
		Help:      "Histogram of reconstruct+rasterize duration per refresh",
		Buckets:   m.histogramBuckets,
	})

	m.alertsSent = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "alerts_sent_total",
		Help:      "Total number of desktop score alerts dispatched",
	})
}

// RecordPollCycle counts one completed poll cycle.
func (m *Manager) RecordPollCycle() {
	if m.enabled {
		m.pollCycles.Inc()
	}
}

// RecordPollFailure counts one poll cycle that kept the stale view.
func (m *Manager) RecordPollFailure() {
	if m.enabled {
		m.pollFailures.Inc()
	}
}

// RecordFetchError counts an upstream error for the given endpoint.
func (m *Manager) RecordFetchError(endpoint string) {
	if m.enabled {
		m.fetchErrors.WithLabelValues(endpoint).Inc()
	}
}

// ObserveFetchLatency records one fetch duration for the given endpoint.
func (m *Manager) ObserveFetchLatency(endpoint string, d time.Duration) {
	if m.enabled {
		m.fetchLatency.WithLabelValues(endpoint).Observe(d.Seconds())
	}
}

// ObserveRasterizeDuration records one reconstruct+rasterize duration.
func (m *Manager) ObserveRasterizeDuration(d time.Duration) {
	if m.enabled {
		m.rasterizeDuration.Observe(d.Seconds())
	}
}

// RecordAlertSent counts one dispatched desktop alert.
func (m *Manager) RecordAlertSent() {
	if m.enabled {
		m.alertsSent.Inc()
	}
}

// Serve exposes /metrics on addr until ctx is cancelled. Addr may be
// empty, in which case the listener is disabled and Serve returns nil
// immediately.
func (m *Manager) Serve(ctx context.Context, addr string) error {
	if addr == "" {
		return nil
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	}
}

// Package-level helpers against the global manager.

// RecordPollCycle counts one completed poll cycle.
func RecordPollCycle() { globalManager.RecordPollCycle() }

// RecordPollFailure counts one poll cycle that kept the stale view.
func RecordPollFailure() { globalManager.RecordPollFailure() }

// RecordFetchError counts an upstream error for the given endpoint.
func RecordFetchError(endpoint string) { globalManager.RecordFetchError(endpoint) }

// ObserveFetchLatency records one fetch duration for the given endpoint.
func ObserveFetchLatency(endpoint string, d time.Duration) {
	globalManager.ObserveFetchLatency(endpoint, d)
}

// ObserveRasterizeDuration records one reconstruct+rasterize duration.
func ObserveRasterizeDuration(d time.Duration) { globalManager.ObserveRasterizeDuration(d) }

// RecordAlertSent counts one dispatched desktop alert.
func RecordAlertSent() { globalManager.RecordAlertSent() }

// Serve exposes the global manager's /metrics on addr until ctx ends.
func Serve(ctx context.Context, addr string) error { return globalManager.Serve(ctx, addr) }
