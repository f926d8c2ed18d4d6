package prometheus

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Counter metrics
var (
	// Login counter
	LoginCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "leasing_login_total",
			Help: "Total number of login attempts",
		},
	)

	// Owner registration counter
	OwnerRegisterCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "leasing_owner_register_total",
			Help: "Total number of owner registrations",
		},
	)

	// Lessee registration counter
	LesseeRegisterCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "leasing_lessee_register_total",
			Help: "Total number of lessee registrations",
		},
	)

	// Domain operation counter
	OperationCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "leasing_operations_total",
			Help: "Total number of domain operations",
		},
		[]string{"entity", "operation"}, // entity: owner, lessee, property, contract, image
	)

	// HTTP request counter by endpoint and status
	HTTPRequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "leasing_http_requests_total",
			Help: "Total number of HTTP requests by endpoint and status",
		},
		[]string{"endpoint", "method", "status"},
	)

	// Error counters
	OperationErrorCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "leasing_errors_total",
			Help: "Total number of operation errors",
		},
		[]string{"type"}, // type: not_found, reference_not_found, duplicate_email, has_dependents, db_error
	)
)

// Histogram metrics
var (
	// Request duration
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "leasing_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint", "method", "status"},
	)

	// Database operation duration
	DBOperationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "leasing_db_operation_duration_seconds",
			Help:    "Duration of database operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"}, // operation can be "query", "insert", "update", "delete"
	)
)

func init() {
	prometheus.MustRegister(LoginCounter)
	prometheus.MustRegister(OwnerRegisterCounter)
	prometheus.MustRegister(LesseeRegisterCounter)
	prometheus.MustRegister(OperationCounter)
	prometheus.MustRegister(HTTPRequestCounter)
	prometheus.MustRegister(OperationErrorCounter)

	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(DBOperationDuration)
}

// RecordOperation increments the domain operation counter.
func RecordOperation(entity, operation string) {
	OperationCounter.With(prometheus.Labels{
		"entity":    entity,
		"operation": operation,
	}).Inc()
}

// RecordOperationError increments the error counter for the given type.
func RecordOperationError(errorType string) {
	OperationErrorCounter.With(prometheus.Labels{
		"type": errorType,
	}).Inc()
}

// TrackDBOperation measures database operation durations
func TrackDBOperation(operation string) func(time.Time) {
	startTime := time.Now()
	return func(endTime time.Time) {
		duration := time.Since(startTime).Seconds()
		DBOperationDuration.With(prometheus.Labels{
			"operation": operation,
		}).Observe(duration)
	}
}

// MetricsMiddleware creates a middleware function that captures metrics for each request
func MetricsMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			duration := time.Since(start).Seconds()
			status := strconv.Itoa(c.Response().Status)
			endpoint := c.Path()
			method := c.Request().Method

			HTTPRequestCounter.With(prometheus.Labels{
				"endpoint": endpoint,
				"method":   method,
				"status":   status,
			}).Inc()

			RequestDuration.With(prometheus.Labels{
				"endpoint": endpoint,
				"method":   method,
				"status":   status,
			}).Observe(duration)

			return err
		}
	}
}

// GetPrometheusHandler returns an HTTP handler for the Prometheus metrics
func GetPrometheusHandler() http.Handler {
	return promhttp.Handler()
}
