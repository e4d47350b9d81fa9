// Package metrics provides Prometheus metrics collection for the shipping service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// EstimatesTotal tracks shipping estimates by terminal outcome.
	EstimatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shipping_estimates_total",
			Help: "Total number of shipping estimates by outcome",
		},
		[]string{"outcome"},
	)

	// EstimateDuration tracks end-to-end estimate resolution duration.
	EstimateDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "shipping_estimate_duration_seconds",
			Help:    "Shipping estimate resolution duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0, 30.0},
		},
	)

	// CarrierQuotesTotal tracks outbound carrier quote calls by carrier and result.
	CarrierQuotesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "carrier_quote_requests_total",
			Help: "Total number of carrier quote requests",
		},
		[]string{"carrier", "result"},
	)

	// CarrierQuoteDuration tracks outbound carrier quote call duration by carrier.
	CarrierQuoteDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "carrier_quote_duration_seconds",
			Help:    "Carrier quote request duration in seconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0, 30.0},
		},
		[]string{"carrier"},
	)

	// CacheOperationsTotal tracks estimate cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"operation", "result"},
	)

	// CacheSize tracks current cache size.
	CacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Current cache size",
		},
	)

	// CacheCapacity tracks cache capacity.
	CacheCapacity = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_capacity",
			Help: "Cache capacity",
		},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordEstimate records metrics for a resolved shipping estimate.
func RecordEstimate(duration time.Duration, outcome string) {
	EstimateDuration.Observe(duration.Seconds())
	EstimatesTotal.WithLabelValues(outcome).Inc()
}

// RecordCarrierQuote records metrics for one outbound carrier quote call.
func RecordCarrierQuote(carrier string, duration time.Duration, result string) {
	CarrierQuoteDuration.WithLabelValues(carrier).Observe(duration.Seconds())
	CarrierQuotesTotal.WithLabelValues(carrier, result).Inc()
}

// RecordCacheOperation records metrics for a cache operation.
func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}

// UpdateCacheMetrics updates cache size and capacity metrics.
func UpdateCacheMetrics(size, capacity int) {
	CacheSize.Set(float64(size))
	CacheCapacity.Set(float64(capacity))
}
