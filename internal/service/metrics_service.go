package service

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates Prometheus instrumentation for the portal.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	submissionTotal *prometheus.CounterVec
	transitionTotal *prometheus.CounterVec
	mailSent        prometheus.Counter
	mailFailed      prometheus.Counter
}

// NewMetricsService registers the portal's Prometheus collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	submissionTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "portal_submissions_total",
		Help: "Citizen request submissions by record kind",
	}, []string{"kind"})

	transitionTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "portal_status_transitions_total",
		Help: "Admin status transitions by record kind",
	}, []string{"kind"})

	mailSent := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "portal_notification_emails_sent_total",
		Help: "Notification emails transmitted successfully",
	})

	mailFailed := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "portal_notification_emails_failed_total",
		Help: "Notification emails that failed to send",
	})

	registry.MustRegister(requestDuration, requestTotal, submissionTotal, transitionTotal, mailSent, mailFailed)

	return &MetricsService{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		submissionTotal: submissionTotal,
		transitionTotal: transitionTotal,
		mailSent:        mailSent,
		mailFailed:      mailFailed,
	}
}

// Handler exposes the /metrics endpoint handler.
func (m *MetricsService) Handler() http.Handler {
	return m.handler
}

// ObserveHTTPRequest records a completed HTTP request.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	labels := []string{method, path, fmt.Sprintf("%d", status)}
	m.requestDuration.WithLabelValues(labels...).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(labels...).Inc()
}

// RecordSubmission counts a successful citizen submission.
func (m *MetricsService) RecordSubmission(kind string) {
	if m == nil {
		return
	}
	m.submissionTotal.WithLabelValues(kind).Inc()
}

// RecordTransition counts a successful admin status transition.
func (m *MetricsService) RecordTransition(kind string) {
	if m == nil {
		return
	}
	m.transitionTotal.WithLabelValues(kind).Inc()
}

// MailSent counts a delivered notification email.
func (m *MetricsService) MailSent() {
	if m == nil {
		return
	}
	m.mailSent.Inc()
}

// MailFailed counts a failed notification email.
func (m *MetricsService) MailFailed() {
	if m == nil {
		return
	}
	m.mailFailed.Inc()
}
