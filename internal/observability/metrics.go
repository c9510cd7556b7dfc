package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// dashboard service.
type Metrics struct {
	DatasetLoads        *prometheus.CounterVec // labels: dataset, outcome={success,error}
	DatasetLoadDuration prometheus.Histogram
	RecordsLoaded       *prometheus.CounterVec // labels: dataset
	DatasetCache        *prometheus.CounterVec // labels: result={hit,miss}

	HeatmapRenders        prometheus.Counter
	HeatmapRenderDuration prometheus.Histogram
	ExportsTotal          *prometheus.CounterVec // labels: dataset

	HTTPRequests *prometheus.CounterVec // labels: route, code
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.DatasetLoads,
		m.DatasetLoadDuration,
		m.RecordsLoaded,
		m.DatasetCache,
		m.HeatmapRenders,
		m.HeatmapRenderDuration,
		m.ExportsTotal,
		m.HTTPRequests,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		DatasetLoads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sds_dashboard",
			Name:      "dataset_loads_total",
			Help:      "Dataset spreadsheet loads by dataset and outcome.",
		}, []string{"dataset", "outcome"}),
		DatasetLoadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "sds_dashboard",
			Name:      "dataset_load_duration_seconds",
			Help:      "Duration of a full XLSX load and normalization pass.",
			Buckets:   []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60},
		}),
		RecordsLoaded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sds_dashboard",
			Name:      "records_loaded_total",
			Help:      "Canonical records produced by dataset loads.",
		}, []string{"dataset"}),
		DatasetCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sds_dashboard",
			Name:      "dataset_cache_total",
			Help:      "Dataset cache lookups by result.",
		}, []string{"result"}),
		HeatmapRenders: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sds_dashboard",
			Name:      "heatmap_renders_total",
			Help:      "Heat-map scenes rendered.",
		}),
		HeatmapRenderDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "sds_dashboard",
			Name:      "heatmap_render_duration_seconds",
			Help:      "Duration of heat-map aggregation and scene assembly.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}),
		ExportsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sds_dashboard",
			Name:      "exports_total",
			Help:      "CSV exports served by dataset.",
		}, []string{"dataset"}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sds_dashboard",
			Name:      "http_requests_total",
			Help:      "API requests by route pattern and status code.",
		}, []string{"route", "code"}),
	}
}
