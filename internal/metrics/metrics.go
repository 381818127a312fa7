// Package metrics exposes Prometheus counters for the storefront API.
package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	authFailures    *prometheus.CounterVec
	loginsTotal     *prometheus.CounterVec
)

// Init registers all metrics with the given registry. Call once at startup;
// the record helpers are no-ops until then.
func Init(reg prometheus.Registerer) error {
	requestsTotalVec := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "christshop",
			Subsystem: "api",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)
	if err := reg.Register(requestsTotalVec); err != nil {
		return fmt.Errorf("register requests_total: %w", err)
	}

	requestDurationVec := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "christshop",
			Subsystem: "api",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
	if err := reg.Register(requestDurationVec); err != nil {
		return fmt.Errorf("register request_duration_seconds: %w", err)
	}

	authFailuresVec := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "christshop",
			Subsystem: "api",
			Name:      "auth_failures_total",
			Help:      "Total number of failed admin authentications",
		},
		[]string{"reason"},
	)
	if err := reg.Register(authFailuresVec); err != nil {
		return fmt.Errorf("register auth_failures_total: %w", err)
	}

	loginsTotalVec := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "christshop",
			Subsystem: "api",
			Name:      "logins_total",
			Help:      "Total number of admin login attempts",
		},
		[]string{"outcome"},
	)
	if err := reg.Register(loginsTotalVec); err != nil {
		return fmt.Errorf("register logins_total: %w", err)
	}

	requestsTotal = requestsTotalVec
	requestDuration = requestDurationVec
	authFailures = authFailuresVec
	loginsTotal = loginsTotalVec

	return nil
}

// RecordRequest increments the request counter. The path should be the
// route pattern ("/api/products/{id}"), not the raw URL.
func RecordRequest(method, path, status string) {
	if requestsTotal != nil {
		requestsTotal.WithLabelValues(method, path, status).Inc()
	}
}

func RecordRequestDuration(method, path string, seconds float64) {
	if requestDuration != nil {
		requestDuration.WithLabelValues(method, path).Observe(seconds)
	}
}

// RecordAuthFailure counts a failed verification. Reasons are the server
// side error codes, e.g. "INVALID_TOKEN" or "SESSION_EXPIRED".
func RecordAuthFailure(reason string) {
	if authFailures != nil {
		authFailures.WithLabelValues(reason).Inc()
	}
}

// RecordLogin counts a login attempt with outcome "success" or "failure".
func RecordLogin(outcome string) {
	if loginsTotal != nil {
		loginsTotal.WithLabelValues(outcome).Inc()
	}
}

// Handler serves the metrics in Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
