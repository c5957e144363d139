// Package metrics provides Prometheus instrumentation for the HTTP surface
// and the login flow. Every collector lives on a private registry exposed at
// GET /metrics.
package metrics

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"github.com/thenextech/shoploc-back-end/internal/domain/entity"
	"github.com/thenextech/shoploc-back-end/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

const namespace = "shoploc"

// Metrics owns the registry and the collectors recorded by the application.
type Metrics struct {
	registry *prometheus.Registry

	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	requestInFlight prometheus.Gauge

	logins        *prometheus.CounterVec
	verifications *prometheus.CounterVec
	registrations *prometheus.CounterVec
	events        *prometheus.CounterVec
}

var _ service.AuthMetrics = (*Metrics)(nil)

// New builds a Metrics on a fresh registry, including Go runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
		requestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"method", "path", "status"}),
		requestInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being served.",
		}),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "auth",
			Name:      "login_attempts_total",
			Help:      "Password login attempts by role and result.",
		}, []string{"role", "result"}),
		verifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "auth",
			Name:      "verification_attempts_total",
			Help:      "Verification code submissions by role and result.",
		}, []string{"role", "result"}),
		registrations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "auth",
			Name:      "registrations_total",
			Help:      "Account registrations by role and result.",
		}, []string{"role", "result"}),
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "events",
			Name:      "published_total",
			Help:      "Domain events handed to the publisher by type and result.",
		}, []string{"type", "result"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requestDuration,
		m.requestTotal,
		m.requestInFlight,
		m.logins,
		m.verifications,
		m.registrations,
		m.events,
	)

	return m
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// WatchDB exports the pool statistics of db as go_sql_* series labelled db_name="shoploc".
func (m *Metrics) WatchDB(db *sql.DB) error {
	if err := m.registry.Register(collectors.NewDBStatsCollector(db, namespace)); err != nil {
		return errors.Wrap(err, "register db stats collector")
	}

	return nil
}

// Handler serves the registry in the Prometheus text and OpenMetrics formats.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

// RequestStarted increments the in-flight gauge and returns the func that
// records the finished request.
func (m *Metrics) RequestStarted() func(method, path string, status int) {
	start := time.Now()
	m.requestInFlight.Inc()

	return func(method, path string, status int) {
		m.requestInFlight.Dec()

		code := strconv.Itoa(status)
		m.requestDuration.WithLabelValues(method, path, code).Observe(time.Since(start).Seconds())
		m.requestTotal.WithLabelValues(method, path, code).Inc()
	}
}

func (m *Metrics) LoginAttempt(role entity.Role, success bool) {
	m.logins.WithLabelValues(string(role), result(success)).Inc()
}

func (m *Metrics) VerificationAttempt(role entity.Role, success bool) {
	m.verifications.WithLabelValues(string(role), result(success)).Inc()
}

func (m *Metrics) Registration(role entity.Role, success bool) {
	m.registrations.WithLabelValues(string(role), result(success)).Inc()
}

// EventPublished records the outcome of one publish call.
func (m *Metrics) EventPublished(eventType string, success bool) {
	m.events.WithLabelValues(eventType, result(success)).Inc()
}

func result(success bool) string {
	if success {
		return "success"
	}

	return "failure"
}

// Module provides the metrics FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		New,
		func(m *Metrics) service.AuthMetrics { return m },
	),
)
