// Package observability provides Prometheus metrics for monitoring.
package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	// Generation metrics
	SeriesGenerated    *prometheus.CounterVec
	GenerationDuration *prometheus.HistogramVec

	// Session metrics
	ActiveSessions prometheus.Gauge

	// Chart metrics
	ChartsRendered *prometheus.CounterVec
	ChartCacheHits prometheus.Counter
	ChartCacheMiss prometheus.Counter

	// Reporting metrics
	ReportsGenerated prometheus.Counter

	// Dashboard metrics
	WSClients          prometheus.Gauge
	WSMessagesPushed   prometheus.Counter
	HTTPRequestLatency *prometheus.HistogramVec
}

// NewMetrics creates a new Metrics instance with all metrics registered.
func NewMetrics(namespace string) *Metrics {
	if namespace == "" {
		namespace = "crypto_volatility_lab"
	}

	return &Metrics{
		SeriesGenerated: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "generator",
			Name:      "series_generated_total",
			Help:      "Total number of series generated by pattern",
		}, []string{"pattern"}),
		GenerationDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "generator",
			Name:      "duration_seconds",
			Help:      "Series generation duration in seconds",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}, []string{"pattern"}),

		ActiveSessions: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "session",
			Name:      "active",
			Help:      "Current number of active dashboard sessions",
		}),

		ChartsRendered: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "charts",
			Name:      "rendered_total",
			Help:      "Total number of chart images rendered by kind",
		}, []string{"kind"}),
		ChartCacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "charts",
			Name:      "cache_hits_total",
			Help:      "Total number of chart cache hits",
		}),
		ChartCacheMiss: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "charts",
			Name:      "cache_misses_total",
			Help:      "Total number of chart cache misses",
		}),

		ReportsGenerated: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "reporting",
			Name:      "reports_generated_total",
			Help:      "Total number of reports generated",
		}),

		WSClients: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "dashboard",
			Name:      "ws_clients",
			Help:      "Current number of connected WebSocket clients",
		}),
		WSMessagesPushed: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "dashboard",
			Name:      "ws_messages_pushed_total",
			Help:      "Total number of series updates pushed over WebSocket",
		}),
		HTTPRequestLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "dashboard",
			Name:      "http_request_latency_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
	}
}

// Handler returns an HTTP handler for the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

// DefaultMetrics is the default metrics instance.
var DefaultMetrics = NewMetrics("")

// RecordSeriesGenerated records one generation run.
func RecordSeriesGenerated(pattern string, durationSeconds float64) {
	DefaultMetrics.SeriesGenerated.WithLabelValues(pattern).Inc()
	DefaultMetrics.GenerationDuration.WithLabelValues(pattern).Observe(durationSeconds)
}

// RecordSessionCreated increments the active session gauge.
func RecordSessionCreated() {
	DefaultMetrics.ActiveSessions.Inc()
}

// RecordSessionDeleted decrements the active session gauge.
func RecordSessionDeleted() {
	DefaultMetrics.ActiveSessions.Dec()
}

// RecordChartRendered increments the rendered counter for a chart kind.
func RecordChartRendered(kind string) {
	DefaultMetrics.ChartsRendered.WithLabelValues(kind).Inc()
}

// RecordChartCacheHit increments the chart cache hit counter.
func RecordChartCacheHit() {
	DefaultMetrics.ChartCacheHits.Inc()
}

// RecordChartCacheMiss increments the chart cache miss counter.
func RecordChartCacheMiss() {
	DefaultMetrics.ChartCacheMiss.Inc()
}

// RecordReportGenerated increments the report counter.
func RecordReportGenerated() {
	DefaultMetrics.ReportsGenerated.Inc()
}

// RecordWSConnect increments the connected client gauge.
func RecordWSConnect() {
	DefaultMetrics.WSClients.Inc()
}

// RecordWSDisconnect decrements the connected client gauge.
func RecordWSDisconnect() {
	DefaultMetrics.WSClients.Dec()
}

// RecordWSPush increments the pushed message counter.
func RecordWSPush() {
	DefaultMetrics.WSMessagesPushed.Inc()
}

// RecordHTTPRequest records HTTP request latency for a route.
func RecordHTTPRequest(route string, seconds float64) {
	DefaultMetrics.HTTPRequestLatency.WithLabelValues(route).Observe(seconds)
}
