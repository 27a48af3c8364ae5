package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// extraction service.
type Metrics struct {
	RunsTotal         *prometheus.CounterVec // labels: outcome={success,partial,error}
	SectionsExtracted *prometheus.CounterVec // labels: dataset
	SectionsSkipped   *prometheus.CounterVec // labels: dataset, reason={missing_columns,missing_anchor,fetch_error}
	RowsDropped       *prometheus.CounterVec // labels: section
	CellParseFailures prometheus.Counter
	DatasetsWritten   prometheus.Counter
	DatasetsPublished prometheus.Counter

	RunDuration   prometheus.Histogram
	FetchDuration *prometheus.HistogramVec // labels: worksheet

	LastRunUnixtime prometheus.Gauge
	Ready           prometheus.Gauge
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.RunsTotal,
		m.SectionsExtracted,
		m.SectionsSkipped,
		m.RowsDropped,
		m.CellParseFailures,
		m.DatasetsWritten,
		m.DatasetsPublished,
		m.RunDuration,
		m.FetchDuration,
		m.LastRunUnixtime,
		m.Ready,
	)
	return m
}

// NewMetricsForTesting creates Metrics without touching the default registry,
// avoiding "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		RunsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dashboard_etl",
			Name:      "runs_total",
			Help:      "Extraction runs by outcome.",
		}, []string{"outcome"}),
		SectionsExtracted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dashboard_etl",
			Name:      "sections_extracted_total",
			Help:      "Sections successfully extracted, by dataset.",
		}, []string{"dataset"}),
		SectionsSkipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dashboard_etl",
			Name:      "sections_skipped_total",
			Help:      "Sections omitted from output, by dataset and reason.",
		}, []string{"dataset", "reason"}),
		RowsDropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dashboard_etl",
			Name:      "rows_dropped_total",
			Help:      "Chart rows excluded because their date cell did not parse.",
		}, []string{"section"}),
		CellParseFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "dashboard_etl",
			Name:      "cell_parse_failures_total",
			Help:      "Non-empty data cells that failed numeric parsing and became null.",
		}),
		DatasetsWritten: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "dashboard_etl",
			Name:      "datasets_written_total",
			Help:      "Dataset JSON documents written to the output directory.",
		}),
		DatasetsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "dashboard_etl",
			Name:      "datasets_published_total",
			Help:      "Dataset documents republished to Kafka.",
		}),
		RunDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "dashboard_etl",
			Name:      "run_duration_seconds",
			Help:      "Duration of a complete fetch-extract-write run.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		}),
		FetchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "dashboard_etl",
			Name:      "fetch_duration_seconds",
			Help:      "Worksheet fetch duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"worksheet"}),
		LastRunUnixtime: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "dashboard_etl",
			Name:      "last_run_timestamp_seconds",
			Help:      "Unix time of the most recent completed run.",
		}),
		Ready: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "dashboard_etl",
			Name:      "ready",
			Help:      "1 after the first successful run, 0 before.",
		}),
	}
}
