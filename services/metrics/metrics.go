// Package metrics holds the Prometheus collectors for HTTP traffic and
// occupancy/billing events.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns its registry so several instances can coexist in tests.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry         *prometheus.Registry
	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	requestsInFlight prometheus.Gauge
	occupancyEvents  *prometheus.CounterVec
	paymentsRecorded *prometheus.CounterVec
	paidAmount       prometheus.Counter
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		requestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rentdesk_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "rentdesk_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"method", "path"},
		),
		requestsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "rentdesk_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
		),
		occupancyEvents: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rentdesk_occupancy_events_total",
				Help: "Room occupancy transitions by kind",
			},
			[]string{"event"},
		),
		paymentsRecorded: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rentdesk_payments_recorded_total",
				Help: "Payments created or amended, by resulting status",
			},
			[]string{"op", "status"},
		),
		paidAmount: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "rentdesk_payments_created_amount_total",
				Help: "Sum of paid amounts on newly created payments",
			},
		),
	}
}

func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) RecordHTTPRequest(method, path string, statusCode int, duration time.Duration) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(method, path, strconv.Itoa(statusCode)).Inc()
	m.requestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

func (m *Metrics) IncRequestsInFlight() {
	if m != nil {
		m.requestsInFlight.Inc()
	}
}

func (m *Metrics) DecRequestsInFlight() {
	if m != nil {
		m.requestsInFlight.Dec()
	}
}

// RecordOccupancy counts assign, release and maintenance transitions.
func (m *Metrics) RecordOccupancy(event string) {
	if m != nil {
		m.occupancyEvents.WithLabelValues(event).Inc()
	}
}

// RecordPayment counts a created or updated payment by its derived status.
func (m *Metrics) RecordPayment(op, status string, paid int64) {
	if m == nil {
		return
	}
	m.paymentsRecorded.WithLabelValues(op, status).Inc()
	if op == "create" && paid > 0 {
		m.paidAmount.Add(float64(paid))
	}
}
