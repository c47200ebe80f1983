package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	ledgerOperations     *prometheus.CounterVec
	ledgerDuration       *prometheus.HistogramVec
	ledgerTransactions   prometheus.Gauge
	ledgerHistoryDepth   prometheus.Gauge
	persistenceFailures  *prometheus.CounterVec
	corruptStateLoads    *prometheus.CounterVec
	eventPublishFailures *prometheus.CounterVec
	dashboardDuration    prometheus.Histogram
	themeToggles         *prometheus.CounterVec
}

// NewPrometheusMetrics registers the ledger collectors with the given registerer.
// A nil registerer uses the default prometheus registry.
func NewPrometheusMetrics(registerer prometheus.Registerer) MetricsRecorderInterface {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registerer)

	return &PrometheusMetrics{
		ledgerOperations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_operations_total",
				Help: "Total number of ledger operations by outcome",
			},
			[]string{"operation", "status"},
		),
		ledgerDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ledger_operation_duration_milliseconds",
				Help:    "Ledger operation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(0.5, 2, 12),
			},
			[]string{"operation"},
		),
		ledgerTransactions: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "ledger_transactions",
				Help: "Current number of transactions in the store",
			},
		),
		ledgerHistoryDepth: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "ledger_history_depth",
				Help: "Current number of undo snapshots",
			},
		),
		persistenceFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_persistence_failures_total",
				Help: "Total number of failed writes to the key-value store",
			},
			[]string{"key"},
		),
		corruptStateLoads: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_corrupt_state_total",
				Help: "Total number of stored values discarded as unreadable",
			},
			[]string{"key"},
		),
		eventPublishFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_event_publish_failures_total",
				Help: "Total number of ledger change notifications that failed to publish",
			},
			[]string{"action"},
		),
		dashboardDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "dashboard_refresh_duration_milliseconds",
				Help:    "Dashboard refresh duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(0.5, 2, 12),
			},
		),
		themeToggles: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "theme_toggles_total",
				Help: "Total number of theme toggles by resulting theme",
			},
			[]string{"theme"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "ledger.operation":
		m.ledgerOperations.WithLabelValues(tags["operation"], tags["status"]).Inc()
	case "ledger.persistence.failed":
		m.persistenceFailures.WithLabelValues(tags["key"]).Inc()
	case "ledger.state.corrupt":
		m.corruptStateLoads.WithLabelValues(tags["key"]).Inc()
	case "ledger.event.publish_failed":
		m.eventPublishFailures.WithLabelValues(tags["action"]).Inc()
	case "preference.theme_toggled":
		m.themeToggles.WithLabelValues(tags["theme"]).Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	milliseconds := float64(duration.Microseconds()) / 1000
	switch name {
	case "ledger.operation.load":
		m.ledgerDuration.WithLabelValues("load").Observe(milliseconds)
	case "ledger.operation.add":
		m.ledgerDuration.WithLabelValues("add").Observe(milliseconds)
	case "ledger.operation.undo":
		m.ledgerDuration.WithLabelValues("undo").Observe(milliseconds)
	case "ledger.operation.reset":
		m.ledgerDuration.WithLabelValues("reset").Observe(milliseconds)
	case "dashboard.refresh":
		m.dashboardDuration.Observe(milliseconds)
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "ledger.transactions":
		m.ledgerTransactions.Set(value)
	case "ledger.history_depth":
		m.ledgerHistoryDepth.Set(value)
	}
}
