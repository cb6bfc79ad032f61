package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "hotwallet"

// Metrics holds the collectors shared by the wallet jobs
type Metrics struct {
	registry *prometheus.Registry

	SyncedHeight     prometheus.Gauge
	ChainHeight      prometheus.Gauge
	DepositsIngested prometheus.Counter
	ScanFailures     prometheus.Counter
	Notifications    *prometheus.CounterVec
	Dispatches       *prometheus.CounterVec
	SelfTransfers    *prometheus.CounterVec
	JobDuration      *prometheus.HistogramVec
	UnlockedProjects prometheus.Gauge
}

// New creates the collectors on a dedicated registry
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		SyncedHeight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "scanner",
			Name:      "synced_height",
			Help:      "Exclusive upper bound of ingested blocks.",
		}),
		ChainHeight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "scanner",
			Name:      "chain_height",
			Help:      "Current block height reported by the node.",
		}),
		DepositsIngested: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scanner",
			Name:      "deposits_ingested_total",
			Help:      "Deposit transactions written to the ledger.",
		}),
		ScanFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scanner",
			Name:      "batch_failures_total",
			Help:      "Scan batches rolled back.",
		}),
		Notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "notifier",
			Name:      "deliveries_total",
			Help:      "Deposit callback attempts by outcome.",
		}, []string{"outcome"}),
		Dispatches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "dispatcher",
			Name:      "dispatches_total",
			Help:      "Outbound transfer requests by outcome.",
		}, []string{"outcome"}),
		SelfTransfers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sweeper",
			Name:      "transfers_total",
			Help:      "Collection and render transfers by type and outcome.",
		}, []string{"type", "outcome"}),
		JobDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "jobs",
			Name:      "run_duration_seconds",
			Help:      "Duration of a periodic job run.",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 12),
		}, []string{"job", "result"}),
		UnlockedProjects: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "vault",
			Name:      "unlocked_projects",
			Help:      "Projects holding at least one unlocked coin.",
		}),
	}

	m.registry.MustRegister(
		m.SyncedHeight,
		m.ChainHeight,
		m.DepositsIngested,
		m.ScanFailures,
		m.Notifications,
		m.Dispatches,
		m.SelfTransfers,
		m.JobDuration,
		m.UnlockedProjects,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Registry returns the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
