// Package metrics holds the Prometheus collectors for the intake service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// UnmatchedRoute is the route label for requests outside the known routes.
const UnmatchedRoute = "unmatched"

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests by method, route and status code",
		},
		[]string{"method", "route", "status_code"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by method and route",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	responseBytes = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_response_size_bytes",
			Help:    "HTTP response body size by route",
			Buckets: prometheus.ExponentialBuckets(64, 4, 7),
		},
		[]string{"route"},
	)

	dbOpenConnections = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "db_connections",
			Help: "Database pool connections by state",
		},
		[]string{"state"}, // in_use, idle
	)

	dbQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "db_queries_total",
			Help: "Database statements by operation and outcome",
		},
		[]string{"operation", "status"},
	)

	dbQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database statement latency by operation",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
		[]string{"operation"},
	)

	// InquirySubmissions counts inserts per form. Status is success or error.
	InquirySubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inquiry_submissions_total",
			Help: "Form submissions by form and outcome",
		},
		[]string{"form", "status"},
	)

	// NotificationEmails counts notification attempts. Status is sent,
	// failed or skipped.
	NotificationEmails = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notification_emails_total",
			Help: "Inquiry notification emails by form and outcome",
		},
		[]string{"form", "status"},
	)
)

// PrometheusMiddleware records request count, latency and response size.
// Requests are labelled with their path when it is one of routes and with
// UnmatchedRoute otherwise, so unknown paths share a single series.
func PrometheusMiddleware(routes ...string) func(http.Handler) http.Handler {
	known := make(map[string]struct{}, len(routes))
	for _, route := range routes {
		known[route] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route := r.URL.Path
			if _, ok := known[route]; !ok {
				route = UnmatchedRoute
			}

			rec := &recordingWriter{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()
			next.ServeHTTP(rec, r)
			elapsed := time.Since(start).Seconds()

			requestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(rec.status)).Inc()
			requestDuration.WithLabelValues(r.Method, route).Observe(elapsed)
			responseBytes.WithLabelValues(route).Observe(float64(rec.written))
		})
	}
}

type recordingWriter struct {
	http.ResponseWriter
	status  int
	written int
}

func (w *recordingWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *recordingWriter) Write(b []byte) (int, error) {
	n, err := w.ResponseWriter.Write(b)
	w.written += n
	return n, err
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

// RecordSubmission counts one form submission.
func RecordSubmission(form string, err error) {
	InquirySubmissions.WithLabelValues(form, outcome(err)).Inc()
}

// RecordNotification counts one notification attempt.
func RecordNotification(form, status string) {
	NotificationEmails.WithLabelValues(form, status).Inc()
}

// RecordDBQuery counts one database statement and observes its latency.
func RecordDBQuery(operation string, duration time.Duration, err error) {
	dbQueriesTotal.WithLabelValues(operation, outcome(err)).Inc()
	dbQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// UpdateDBConnections publishes the pool's in-use and idle connection counts.
func UpdateDBConnections(inUse, idle int) {
	dbOpenConnections.WithLabelValues("in_use").Set(float64(inUse))
	dbOpenConnections.WithLabelValues("idle").Set(float64(idle))
}
