package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// ingest pipeline.
type Metrics struct {
	ReportsConsumed prometheus.Counter
	ZonesProduced   prometheus.Counter
	ZonesSkipped    prometheus.Counter
	ParseErrors     prometheus.Counter
	PipelineRunning prometheus.Gauge

	// Batch processing metrics.
	BatchSize               prometheus.Histogram
	BatchProcessingDuration prometheus.Histogram

	// Assessment metrics.
	ActionsRecommended *prometheus.CounterVec // label: action
	ZoneDoseMSv        prometheus.Histogram
}

// NewMetrics creates and registers all pipeline metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.ReportsConsumed,
		m.ZonesProduced,
		m.ZonesSkipped,
		m.ParseErrors,
		m.PipelineRunning,
		m.BatchSize,
		m.BatchProcessingDuration,
		m.ActionsRecommended,
		m.ZoneDoseMSv,
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
		ReportsConsumed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "rascal_ingest",
			Name:      "reports_consumed_total",
			Help:      "Total report files read from the source topic.",
		}),
		ZonesProduced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "rascal_ingest",
			Name:      "zones_produced_total",
			Help:      "Total assessed zone records written to the sink topic.",
		}),
		ZonesSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "rascal_ingest",
			Name:      "zones_skipped_total",
			Help:      "Total malformed zone records dropped during decoding.",
		}),
		ParseErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "rascal_ingest",
			Name:      "parse_errors_total",
			Help:      "Total reports discarded because of a structural parse failure.",
		}),
		PipelineRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "rascal_ingest",
			Name:      "pipeline_running",
			Help:      "1 when the pipeline is active, 0 when shut down.",
		}),
		BatchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "rascal_ingest",
			Name:      "batch_size",
			Help:      "Number of report messages per batch extracted from Kafka.",
			Buckets:   []float64{1, 5, 10, 20, 30, 40, 50, 75, 100},
		}),
		BatchProcessingDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "rascal_ingest",
			Name:      "batch_processing_duration_seconds",
			Help:      "Duration of a complete batch extract-transform-load cycle.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		}),
		ActionsRecommended: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rascal_ingest",
			Name:      "actions_recommended_total",
			Help:      "Assessed zones by recommended protective action.",
		}, []string{"action"}),
		ZoneDoseMSv: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "rascal_ingest",
			Name:      "zone_dose_msv",
			Help:      "Distribution of projected zone doses, bucketed on the action ladder.",
			Buckets:   []float64{0.5, 1, 2.5, 5, 10, 25, 50, 100},
		}),
	}
}
