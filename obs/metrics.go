package obs

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	SearchesTotal       prometheus.Counter
	EmptyResultsTotal   prometheus.Counter
	ReservationsTotal   prometheus.Counter
	MessagesSentTotal   prometheus.Counter
	CatalogRefreshTotal *prometheus.CounterVec
	CatalogSize         prometheus.Gauge

	HTTPRequestDuration *prometheus.HistogramVec
	HTTPRequestsTotal   *prometheus.CounterVec
	Registry            *prometheus.Registry
}

// Create Prometheus collectors and register them
func NewMetrics(p *prometheus.Registry) *Metrics {
	m := &Metrics{
		SearchesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rental_searches_total",
			Help: "Total number of listing searches",
		}),
		EmptyResultsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rental_search_empty_results_total",
			Help: "Searches that matched no listing",
		}),
		ReservationsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rental_reservation_requests_total",
			Help: "Accepted reservation requests",
		}),
		MessagesSentTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rental_inbox_messages_sent_total",
			Help: "Messages sent from the inbox",
		}),
		CatalogRefreshTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rental_catalog_refresh_total",
			Help: "Catalog refresh attempts by outcome",
		}, []string{"outcome"},
		),
		CatalogSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "rental_catalog_listings",
			Help: "Number of listings in the current catalog",
		}),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latencies",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		Registry: p,
	}

	p.MustRegister(
		m.SearchesTotal,
		m.EmptyResultsTotal,
		m.ReservationsTotal,
		m.MessagesSentTotal,
		m.CatalogRefreshTotal,
		m.CatalogSize,
		m.HTTPRequestDuration,
		m.HTTPRequestsTotal,
	)

	return m
}

// NewTestMetrics registers collectors on a fresh registry.
func NewTestMetrics() *Metrics {
	return NewMetrics(prometheus.NewRegistry())
}

func (m *Metrics) IncSearches()     { m.SearchesTotal.Inc() }
func (m *Metrics) IncEmptyResults() { m.EmptyResultsTotal.Inc() }
func (m *Metrics) IncReservations() { m.ReservationsTotal.Inc() }
func (m *Metrics) IncMessagesSent() { m.MessagesSentTotal.Inc() }

func (m *Metrics) ObserveCatalogRefresh(outcome string, listings int) {
	m.CatalogRefreshTotal.WithLabelValues(outcome).Inc()
	if outcome == "ok" {
		m.CatalogSize.Set(float64(listings))
	}
}

func (m *Metrics) ObserveHTTPRequestDuration(method string, path string, status string, seconds float64) {
	m.HTTPRequestDuration.WithLabelValues(method, path, status).Observe(seconds)
}

func (m *Metrics) IncHTTPRequestsTotal(method string, path string, status string) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
