// Package metrics defines the Prometheus collectors of the agreement server.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "agreements"

// Metrics holds every collector. A nil *Metrics is valid and records nothing.
type Metrics struct {
	created        prometheus.Counter
	signed         prometheus.Counter
	codeCollisions prometheus.Counter
	verifications  *prometheus.CounterVec
	checkFailures  *prometheus.CounterVec
	archive        *prometheus.CounterVec
	assistant      *prometheus.CounterVec
	httpRequests   *prometheus.CounterVec
	httpDuration   *prometheus.HistogramVec
}

// New registers the collectors with registry.
func New(registry prometheus.Registerer) *Metrics {
	factory := promauto.With(registry)

	return &Metrics{
		created: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "created_total",
			Help:      "Total number of agreements created",
		}),
		signed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "signed_total",
			Help:      "Total number of agreements signed",
		}),
		codeCollisions: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "verification_code_collisions_total",
			Help:      "Total number of verification code collisions retried on create",
		}),
		verifications: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "verifications_total",
			Help:      "Total number of verification requests by result",
		}, []string{"result"}),
		checkFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "verification_check_failures_total",
			Help:      "Total number of failed verification sub-checks",
		}, []string{"check"}),
		archive: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "archive_lookups_total",
			Help:      "Total number of document archive lookups by result",
		}, []string{"result"}),
		assistant: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "assistant_requests_total",
			Help:      "Total number of assistant requests by operation and result",
		}, []string{"operation", "result"}),
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "route", "status"}),
		httpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

func (m *Metrics) AgreementCreated() {
	if m == nil {
		return
	}
	m.created.Inc()
}

func (m *Metrics) AgreementSigned() {
	if m == nil {
		return
	}
	m.signed.Inc()
}

func (m *Metrics) CodeCollision() {
	if m == nil {
		return
	}
	m.codeCollisions.Inc()
}

// Verification records the outcome of one verification. result is one of
// valid, invalid or not_found; failedChecks names the sub-checks that failed.
func (m *Metrics) Verification(result string, failedChecks ...string) {
	if m == nil {
		return
	}
	m.verifications.WithLabelValues(result).Inc()
	for _, check := range failedChecks {
		m.checkFailures.WithLabelValues(check).Inc()
	}
}

// ArchiveLookup records hit, miss or error.
func (m *Metrics) ArchiveLookup(result string) {
	if m == nil {
		return
	}
	m.archive.WithLabelValues(result).Inc()
}

func (m *Metrics) AssistantRequest(operation string, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.assistant.WithLabelValues(operation, result).Inc()
}

func (m *Metrics) HTTPRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
