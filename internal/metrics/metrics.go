// Package metrics exposes the service's Prometheus collectors.
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

	// RecipeScalesTotal counts recipe scaling requests by outcome.
	RecipeScalesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipe_scales_total",
			Help: "Total number of recipe scaling requests",
		},
		[]string{"status"},
	)

	// ShoppingListGenerationsTotal counts shopping lists generated from meal plans by outcome.
	ShoppingListGenerationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shopping_list_generations_total",
			Help: "Total number of shopping lists generated from meal plans",
		},
		[]string{"status"},
	)

	// ShoppingListGenerationDuration tracks how long generation takes, database time included.
	ShoppingListGenerationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "shopping_list_generation_duration_seconds",
			Help:    "Shopping list generation duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
	)

	// ShoppingListItems tracks the number of aggregated items per generated list.
	ShoppingListItems = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "shopping_list_generated_items",
			Help:    "Number of items in generated shopping lists",
			Buckets: []float64{0, 5, 10, 20, 40, 80, 160},
		},
	)

	// CacheOperationsTotal tracks cache operations per cache.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"cache", "operation", "result"},
	)

	// CacheSize tracks current cache size.
	CacheSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Current cache size",
		},
		[]string{"cache"},
	)

	// CacheCapacity tracks cache capacity.
	CacheCapacity = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_capacity",
			Help: "Cache capacity",
		},
		[]string{"cache"},
	)

	// LogEntriesTotal counts request and audit log entries by outcome:
	// enqueued, dropped (buffer full), written or failed.
	LogEntriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "log_entries_total",
			Help: "Request and audit log entries by outcome",
		},
		[]string{"result"},
	)

	// RateLimitedTotal counts requests rejected by a rate limiter, by key kind.
	RateLimitedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rate_limited_requests_total",
			Help: "Requests rejected with 429, by limiter key kind (ip or user)",
		},
		[]string{"kind"},
	)

	// CircuitBreakerState reports 0 (closed), 1 (open) or 2 (half-open) per breaker.
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0 closed, 1 open, 2 half-open)",
		},
		[]string{"name"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordRecipeScale records the outcome of a recipe scaling request.
func RecordRecipeScale(status string) {
	RecipeScalesTotal.WithLabelValues(status).Inc()
}

// RecordShoppingListGeneration records a shopping list generation.
// items is ignored unless status is "success".
func RecordShoppingListGeneration(duration time.Duration, items int, status string) {
	ShoppingListGenerationDuration.Observe(duration.Seconds())
	ShoppingListGenerationsTotal.WithLabelValues(status).Inc()
	if status == "success" {
		ShoppingListItems.Observe(float64(items))
	}
}

// RecordCacheOperation records metrics for a cache operation.
func RecordCacheOperation(cache, operation, result string) {
	CacheOperationsTotal.WithLabelValues(cache, operation, result).Inc()
}

// UpdateCacheMetrics updates cache size and capacity metrics.
func UpdateCacheMetrics(cache string, size, capacity int) {
	CacheSize.WithLabelValues(cache).Set(float64(size))
	CacheCapacity.WithLabelValues(cache).Set(float64(capacity))
}

// SetCircuitBreakerState publishes a breaker's state as reported by its State value.
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}

// RecordLogEntry counts one log entry outcome.
func RecordLogEntry(result string) {
	LogEntriesTotal.WithLabelValues(result).Inc()
}

// RecordRateLimited counts one rejected request.
func RecordRateLimited(kind string) {
	RateLimitedTotal.WithLabelValues(kind).Inc()
}
