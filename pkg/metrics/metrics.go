// Package metrics provides Prometheus metrics for the ingestion pipeline.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager holds the Prometheus instruments for one pipeline run.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Extraction metrics
	neosExtracted       prometheus.Counter
	approachesExtracted prometheus.Counter

	// Linking metrics - matched vs dangling designations
	approachesLinked   prometheus.Counter
	approachesUnlinked prometheus.Counter

	// Output metrics
	rowsWritten prometheus.Counter

	// Stage durations
	extractDuration prometheus.Histogram
	linkDuration    prometheus.Histogram
	writeDuration   prometheus.Histogram
}

// NewManager creates a metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "neoscout",
		subsystem:        "pipeline",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.NewRegistry(),
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus instruments.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.neosExtracted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "neos_extracted_total",
		Help:      "Total number of near-Earth objects extracted from the catalog",
	})

	m.approachesExtracted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "approaches_extracted_total",
		Help:      "Total number of close approaches extracted from the data file",
	})

	m.approachesLinked = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "approaches_linked_total",
		Help:      "Close approaches whose designation matched a known NEO",
	})

	m.approachesUnlinked = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "approaches_unlinked_total",
		Help:      "Close approaches with no matching NEO (data-quality indicator)",
	})

	m.rowsWritten = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rows_written_total",
		Help:      "Result records written to the destination file",
	})

	m.extractDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "extract_duration_seconds",
		Help:      "Wall time of the extraction stage",
		Buckets:   m.histogramBuckets,
	})

	m.linkDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "link_duration_seconds",
		Help:      "Wall time of the linking stage",
		Buckets:   m.histogramBuckets,
	})

	m.writeDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "write_duration_seconds",
		Help:      "Wall time of the serialization stage",
		Buckets:   m.histogramBuckets,
	})
}

// RecordNEOsExtracted adds n to the NEO extraction counter.
func (m *Manager) RecordNEOsExtracted(n int) {
	m.neosExtracted.Add(float64(n))
}

// RecordApproachesExtracted adds n to the close-approach extraction counter.
func (m *Manager) RecordApproachesExtracted(n int) {
	m.approachesExtracted.Add(float64(n))
}

// RecordLinkOutcome records how many approaches resolved to a NEO and how
// many were left dangling.
func (m *Manager) RecordLinkOutcome(linked, unlinked int) {
	m.approachesLinked.Add(float64(linked))
	m.approachesUnlinked.Add(float64(unlinked))
}

// RecordRowsWritten adds n to the output row counter.
func (m *Manager) RecordRowsWritten(n int) {
	m.rowsWritten.Add(float64(n))
}

// ObserveExtractDuration records the wall time of an extraction stage.
func (m *Manager) ObserveExtractDuration(d time.Duration) {
	m.extractDuration.Observe(d.Seconds())
}

// ObserveLinkDuration records the wall time of the linking stage.
func (m *Manager) ObserveLinkDuration(d time.Duration) {
	m.linkDuration.Observe(d.Seconds())
}

// ObserveWriteDuration records the wall time of a serialization stage.
func (m *Manager) ObserveWriteDuration(d time.Duration) {
	m.writeDuration.Observe(d.Seconds())
}
