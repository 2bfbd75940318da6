package metrics

import (
	"database/sql"
	"net/http"

	coreport "github.com/amirhossein-jamali/cardbank/internal/domain/port/core"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "cardbank"

// Prometheus implements the domain Metrics port and exposes HTTP request metrics.
// Each instance owns its registry so tests can create as many as they like.
type Prometheus struct {
	registry *prometheus.Registry

	transfers         *prometheus.HistogramVec
	transferRetries   prometheus.Counter
	cardStatusChanges *prometheus.CounterVec
	httpRequests      *prometheus.CounterVec
	httpLatency       *prometheus.HistogramVec
}

// NewPrometheus creates the collectors and registers them with a fresh registry
func NewPrometheus() *Prometheus {
	p := &Prometheus{
		registry: prometheus.NewRegistry(),
		transfers: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "transfers_seconds",
				Help:      "Duration of transfer requests by outcome.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"outcome"},
		),
		transferRetries: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "transfer_retries_total",
				Help:      "Transfer attempts retried after a store conflict.",
			},
		),
		cardStatusChanges: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "card_status_changes_total",
				Help:      "Persisted card status transitions.",
			},
			[]string{"from", "to"},
		),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total HTTP requests.",
			},
			[]string{"route", "method", "status"},
		),
		httpLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Latency of HTTP requests.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"route", "method"},
		),
	}

	p.registry.MustRegister(
		p.transfers,
		p.transferRetries,
		p.cardStatusChanges,
		p.httpRequests,
		p.httpLatency,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return p
}

var _ coreport.Metrics = (*Prometheus)(nil)

func (p *Prometheus) ObserveTransfer(outcome string, seconds float64) {
	p.transfers.WithLabelValues(outcome).Observe(seconds)
}

func (p *Prometheus) IncTransferRetry() {
	p.transferRetries.Inc()
}

func (p *Prometheus) IncCardStatusChange(from, to string) {
	p.cardStatusChanges.WithLabelValues(from, to).Inc()
}

// ObserveHTTP records one served request
func (p *Prometheus) ObserveHTTP(route, method, status string, seconds float64) {
	p.httpRequests.WithLabelValues(route, method, status).Inc()
	p.httpLatency.WithLabelValues(route, method).Observe(seconds)
}

// RegisterDBStats exports connection pool statistics of db
func (p *Prometheus) RegisterDBStats(db *sql.DB, name string) error {
	return p.registry.Register(collectors.NewDBStatsCollector(db, name))
}

// Handler serves the registry in the Prometheus exposition format
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{Registry: p.registry})
}

// Registry exposes the underlying registry
func (p *Prometheus) Registry() *prometheus.Registry {
	return p.registry
}
