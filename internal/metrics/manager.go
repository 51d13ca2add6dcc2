// Package metrics holds the Prometheus instruments of the repsense server.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Manager struct {
	// counters
	CounterRequests     *prometheus.CounterVec
	CounterSessionStats prometheus.Counter
	CounterSuggestions  *prometheus.CounterVec
	CounterSetsIngested prometheus.Counter
	CounterPanics       prometheus.Counter

	// gauges
	GaugeRequests prometheus.Gauge

	// histograms
	HistRequestDuration prometheus.Histogram

	gatherer prometheus.Gatherer
}

// NewTestManager returns a manager on a private registry.
func NewTestManager() *Manager {
	m, _ := NewTestManagerAndRegistry()
	return m
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("repsense", "test_server", reg), reg
}

// NewRegistry returns a registry with the build info, Go runtime and process
// collectors plus any extra ones (the pgx pool collector when a database is
// configured).
func NewRegistry(extra ...prometheus.Collector) *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewBuildInfoCollector(),
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	reg.MustRegister(extra...)
	return reg
}

func NewManager(namespace, subsystem string, reg *prometheus.Registry) *Manager {
	factory := promauto.With(reg)

	counterRequests := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request",
		Help:      "The total number of incoming requests",
	}, []string{"method", "status"})
	counterSessionStats := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "session_stats",
		Help:      "The total number of computed session summaries",
	})
	counterSuggestions := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "suggestions",
		Help:      "The total number of progression suggestions by type",
	}, []string{"type"})
	counterSetsIngested := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "sets_ingested",
		Help:      "The total number of workout sets inserted by imports",
	})

	counterPanics := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request_panic",
		Help:      "The total number of recovered handler panics",
	})

	gaugeRequests := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "current_requests",
		Help:      "Current number of requests served",
	})

	histReqDuration := factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Buckets:   []float64{0.0001, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 30},
		Name:      "request_duration_seconds",
		Help:      "Total duration of requests in seconds",
	})

	return &Manager{
		CounterRequests:     counterRequests,
		CounterSessionStats: counterSessionStats,
		CounterSuggestions:  counterSuggestions,
		CounterSetsIngested: counterSetsIngested,
		CounterPanics:       counterPanics,
		GaugeRequests:       gaugeRequests,
		HistRequestDuration: histReqDuration,
		gatherer:            reg,
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
