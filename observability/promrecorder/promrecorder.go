// Package promrecorder adapts Prometheus to the observability.MetricsRecorder
// interface.
package promrecorder

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/lexfrei/go-unifi-access/observability"
)

// Recorder is an observability.MetricsRecorder backed by Prometheus
// collectors. Paths recorded against it are already normalized by the
// client's observability middleware, so label cardinality stays bounded by
// the developer API endpoint set.
type Recorder struct {
	requests      *prometheus.CounterVec
	duration      *prometheus.HistogramVec
	retries       *prometheus.CounterVec
	rateLimitWait *prometheus.HistogramVec
	errors        *prometheus.CounterVec
}

// Compile-time check to ensure Recorder implements the MetricsRecorder interface.
var _ observability.MetricsRecorder = (*Recorder)(nil)

// New creates a Recorder and registers its collectors with reg.
// Pass prometheus.DefaultRegisterer to use the default registry:
//
//	recorder := promrecorder.New(prometheus.DefaultRegisterer)
//	client, err := unifiaccess.NewWithConfig(&unifiaccess.ClientConfig{
//		Host:    host,
//		Token:   token,
//		Metrics: recorder,
//	})
func New(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "unifi_access_http_requests_total",
			Help: "HTTP requests made to the Access controller.",
		}, []string{"method", "path", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "unifi_access_http_request_duration_seconds",
			Help:    "HTTP request latency against the Access controller.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
		retries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "unifi_access_http_retries_total",
			Help: "Retry attempts per endpoint.",
		}, []string{"endpoint"}),
		rateLimitWait: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "unifi_access_rate_limit_wait_seconds",
			Help:    "Time spent waiting on the client-side rate limiter.",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "unifi_access_errors_total",
			Help: "Errors by operation and type.",
		}, []string{"operation", "type"}),
	}

	reg.MustRegister(r.requests, r.duration, r.retries, r.rateLimitWait, r.errors)

	return r
}

// RecordHTTPRequest records an HTTP request with method, path, status code, and duration.
func (r *Recorder) RecordHTTPRequest(method, path string, statusCode int, duration time.Duration) {
	r.requests.WithLabelValues(method, path, strconv.Itoa(statusCode)).Inc()
	r.duration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordRetry records a retry attempt for an endpoint.
func (r *Recorder) RecordRetry(_ int, endpoint string) {
	r.retries.WithLabelValues(endpoint).Inc()
}

// RecordRateLimit records a rate limit wait event.
func (r *Recorder) RecordRateLimit(endpoint string, wait time.Duration) {
	r.rateLimitWait.WithLabelValues(endpoint).Observe(wait.Seconds())
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(operation, errorType string) {
	r.errors.WithLabelValues(operation, errorType).Inc()
}
