// Package metrics holds the Prometheus collectors exposed on the metrics endpoint.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Mail outcome labels.
const (
	MailStatusSent   = "sent"
	MailStatusFailed = "failed"
)

// HTTPRequests counts handled requests by route template, method and status code.
var HTTPRequests = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "contactbook_http_requests_total",
		Help: "Total number of HTTP requests handled",
	},
	[]string{"method", "route", "status"},
)

// HTTPDuration observes request latency by route template.
var HTTPDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "contactbook_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"method", "route"},
)

// MailDispatches counts outgoing mail by kind and outcome.
var MailDispatches = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "contactbook_mail_dispatches_total",
		Help: "Total number of mail messages handed to the mail sender",
	},
	[]string{"kind", "status"},
)

// RegisterMetrics registers the package collectors with reg. Panics on duplicate registration.
func RegisterMetrics(reg prometheus.Registerer) {
	reg.MustRegister(HTTPRequests)
	reg.MustRegister(HTTPDuration)
	reg.MustRegister(MailDispatches)
}

// NewRegistry returns a registry with the package collectors plus Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	RegisterMetrics(reg)

	return reg
}

// Handler serves reg in the Prometheus exposition format.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
}

// RecordHTTPRequest records one handled request.
func RecordHTTPRequest(method, route, status string, duration time.Duration) {
	HTTPRequests.WithLabelValues(method, route, status).Inc()
	HTTPDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordMailDispatch records the outcome of one send.
func RecordMailDispatch(kind, status string) {
	MailDispatches.WithLabelValues(kind, status).Inc()
}
