package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics is the global metrics container for the routing kernel.
type Metrics struct {
	// Engine metrics (C5 operations).
	OptimizeTotal        *prometheus.CounterVec
	OptimizeDuration      *prometheus.HistogramVec
	ParetoPointsEvaluated prometheus.Histogram
	ParetoDuration        prometheus.Histogram
	RerouteTotal          *prometheus.CounterVec

	// Network store gauges.
	StoreNodes prometheus.Gauge
	StoreEdges prometheus.Gauge

	// System metrics.
	MemoryUsage *prometheus.GaugeVec
	Goroutines  prometheus.Gauge

	// Service info.
	ServiceInfo *prometheus.GaugeVec
}

var defaultMetrics *Metrics

// InitMetrics registers and returns the kernel's metric set under the
// given namespace/subsystem.
func InitMetrics(namespace, subsystem string) *Metrics {
	m := &Metrics{
		OptimizeTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "optimize_total",
				Help:      "Total number of single-route optimize calls",
			},
			[]string{"algorithm", "status"},
		),

		OptimizeDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "optimize_duration_seconds",
				Help:      "Duration of single-route optimize calls",
				Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
			},
			[]string{"algorithm"},
		),

		ParetoPointsEvaluated: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "pareto_points_evaluated",
				Help:      "Number of weight-vector candidates evaluated per Pareto call",
				Buckets:   []float64{1, 5, 10, 28, 56},
			},
		),

		ParetoDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "pareto_duration_seconds",
				Help:      "Duration of Pareto frontier calls",
				Buckets:   []float64{.01, .05, .1, .5, 1, 2.5, 5, 10, 30},
			},
		),

		RerouteTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "reroute_total",
				Help:      "Total number of disruption re-route calls",
			},
			[]string{"status"},
		),

		StoreNodes: promauto.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "store_nodes",
				Help:      "Current number of nodes in the network store",
			},
		),

		StoreEdges: promauto.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "store_edges",
				Help:      "Current number of edges in the network store",
			},
		),

		MemoryUsage: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "memory_usage_bytes",
				Help:      "Current memory usage",
			},
			[]string{"type"},
		),

		Goroutines: promauto.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "goroutines",
				Help:      "Current number of goroutines",
			},
		),

		ServiceInfo: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "service_info",
				Help:      "Service information",
			},
			[]string{"version", "environment"},
		),
	}

	defaultMetrics = m
	return m
}

// Get returns the global metrics instance, lazily initializing it with
// defaults if InitMetrics was never called.
func Get() *Metrics {
	if defaultMetrics == nil {
		return InitMetrics("routekernel", "")
	}
	return defaultMetrics
}

// RecordOptimize records an optimize call's algorithm, outcome, and
// elapsed time.
func (m *Metrics) RecordOptimize(algorithm string, success bool, duration time.Duration) {
	status := "success"
	if !success {
		status = "error"
	}
	m.OptimizeTotal.WithLabelValues(algorithm, status).Inc()
	m.OptimizeDuration.WithLabelValues(algorithm).Observe(duration.Seconds())
}

// RecordPareto records how many candidates a Pareto call evaluated and
// how long it took.
func (m *Metrics) RecordPareto(pointsEvaluated int, duration time.Duration) {
	m.ParetoPointsEvaluated.Observe(float64(pointsEvaluated))
	m.ParetoDuration.Observe(duration.Seconds())
}

// RecordReroute records a disruption re-route call's outcome.
func (m *Metrics) RecordReroute(success bool) {
	status := "success"
	if !success {
		status = "no_route"
	}
	m.RerouteTotal.WithLabelValues(status).Inc()
}

// RecordStoreSize sets the current node/edge count gauges.
func (m *Metrics) RecordStoreSize(nodes, edges int) {
	m.StoreNodes.Set(float64(nodes))
	m.StoreEdges.Set(float64(edges))
}

// SetServiceInfo sets the service_info gauge to 1 for the given labels.
func (m *Metrics) SetServiceInfo(version, environment string) {
	m.ServiceInfo.WithLabelValues(version, environment).Set(1)
}

// Handler returns the HTTP handler for /metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}

// StartMetricsServer starts a blocking HTTP server exposing /metrics and
// /health on port.
func StartMetricsServer(port int) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	server := &http.Server{
		Addr:         ":" + strconv.Itoa(port),
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	return server.ListenAndServe()
}
